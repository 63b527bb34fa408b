package inference

import (
	"testing"

	"github.com/medscanlabs/oncoserve/internal/artifact"
)

func benchmarkBundle() (*artifact.StandardScaler, *artifact.Forest) {
	mean := make([]float64, 30)
	scale := make([]float64, 30)
	for i := range scale {
		scale[i] = 1
	}

	forest := &artifact.Forest{
		NClasses: 2,
		Trees: []artifact.Tree{{
			Nodes: []artifact.TreeNode{
				{FeatureIdx: 0, Threshold: 15.0, LeftChild: 1, RightChild: 2},
				{IsLeaf: true, ClassCounts: []float64{1, 9}},
				{IsLeaf: true, ClassCounts: []float64{9, 1}},
			},
		}},
	}
	return &artifact.StandardScaler{Mean: mean, Scale: scale}, forest
}

// BenchmarkInfer measures one scale-predict-format cycle, the work done per
// request once validation has passed.
func BenchmarkInfer(b *testing.B) {
	scaler, forest := benchmarkBundle()

	vector := make([]float64, 30)
	vector[0] = 17.99

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		prediction, err := Infer(scaler, forest, vector)
		if err != nil {
			b.Fatalf("Inference failed: %v", err)
		}
		if prediction.Class != artifact.ClassMalignant {
			b.Errorf("Invalid class: %d", prediction.Class)
		}
	}
}

// BenchmarkValidateFeatures measures schema validation of a decoded request
// body, which runs before every inference.
func BenchmarkValidateFeatures(b *testing.B) {
	raw := make([]interface{}, 30)
	for i := range raw {
		raw[i] = 0.5
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vector, err := ValidateFeatures(raw, 30)
		if err != nil {
			b.Fatalf("Validation failed: %v", err)
		}
		if len(vector) != 30 {
			b.Errorf("Invalid vector length: %d", len(vector))
		}
	}
}
