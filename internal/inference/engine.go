package inference

import (
	"fmt"
	"math"

	apperrors "github.com/medscanlabs/oncoserve/internal/errors"
)

// Scaler standardizes a raw feature vector.
type Scaler interface {
	Apply(vector []float64) ([]float64, error)
}

// Classifier predicts a class label and the per-class probability
// distribution for a scaled vector.
type Classifier interface {
	Predict(vector []float64) (int, []float64, error)
}

// Diagnosis strings are fixed by the label mapping of the training data.
const (
	DiagnosisMalignant = "Maligno"
	DiagnosisBenign    = "Benigno"
)

// Probabilities is the per-class breakdown of one prediction, expressed as
// percentages.
type Probabilities struct {
	Malignant float64 `json:"malignant"`
	Benign    float64 `json:"benign"`
}

// Prediction is the formatted outcome of one inference.
type Prediction struct {
	Class         int           `json:"class"`
	Diagnosis     string        `json:"diagnosis"`
	Confidence    float64       `json:"confidence"`
	Probabilities Probabilities `json:"probabilities"`
}

// Infer scales the validated vector, runs the classifier and formats the
// result. It performs no I/O and never mutates its inputs, so it is safe
// to call concurrently against a shared read-only bundle. Failures inside
// the scaler or classifier surface as internal errors with a generic
// client message.
func Infer(scaler Scaler, classifier Classifier, vector []float64) (Prediction, error) {
	scaled, err := scaler.Apply(vector)
	if err != nil {
		return Prediction{}, apperrors.NewInferenceError(err)
	}

	label, probs, err := classifier.Predict(scaled)
	if err != nil {
		return Prediction{}, apperrors.NewInferenceError(err)
	}
	if len(probs) != 2 {
		return Prediction{}, apperrors.NewInferenceError(
			fmt.Errorf("classifier returned %d probabilities, want 2", len(probs)))
	}
	if label < 0 || label >= len(probs) {
		return Prediction{}, apperrors.NewInferenceError(
			fmt.Errorf("classifier returned label %d outside the probability range", label))
	}

	diagnosis := DiagnosisMalignant
	if label == 1 {
		diagnosis = DiagnosisBenign
	}

	return Prediction{
		Class:      label,
		Diagnosis:  diagnosis,
		Confidence: roundPct(probs[label]),
		Probabilities: Probabilities{
			Malignant: roundPct(probs[0]),
			Benign:    roundPct(probs[1]),
		},
	}, nil
}

// roundPct converts a probability to a percentage with two decimals.
// Halves round away from zero.
func roundPct(p float64) float64 {
	return math.Round(p*100*100) / 100
}
