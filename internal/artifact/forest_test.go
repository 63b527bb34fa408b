package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForestPredictSingleTree(t *testing.T) {
	forest := &Forest{
		NClasses: 2,
		Trees: []Tree{
			twoLeafTree(0, 15.0, []float64{1, 9}, []float64{9, 1}),
		},
	}
	require.NoError(t, forest.Validate(30))

	vector := make([]float64, 30)
	vector[0] = 17.99

	label, probs, err := forest.Predict(vector)
	require.NoError(t, err)

	assert.Equal(t, ClassMalignant, label)
	require.Len(t, probs, 2)
	assert.InDelta(t, 0.9, probs[0], 1e-9)
	assert.InDelta(t, 0.1, probs[1], 1e-9)
}

func TestForestPredictAveragesTrees(t *testing.T) {
	forest := &Forest{
		NClasses: 2,
		Trees: []Tree{
			twoLeafTree(0, 15.0, []float64{1, 9}, []float64{9, 1}),
			twoLeafTree(20, 16.0, []float64{2, 8}, []float64{8, 2}),
		},
	}
	require.NoError(t, forest.Validate(30))

	vector := make([]float64, 30)
	vector[0] = 17.99
	vector[20] = 25.38

	label, probs, err := forest.Predict(vector)
	require.NoError(t, err)

	assert.Equal(t, ClassMalignant, label)
	assert.InDelta(t, 0.85, probs[0], 1e-9)
	assert.InDelta(t, 0.15, probs[1], 1e-9)
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
}

func TestForestPredictBenignSide(t *testing.T) {
	forest := &Forest{
		NClasses: 2,
		Trees: []Tree{
			twoLeafTree(0, 15.0, []float64{1, 9}, []float64{9, 1}),
		},
	}

	vector := make([]float64, 30)
	vector[0] = 11.42

	label, probs, err := forest.Predict(vector)
	require.NoError(t, err)

	assert.Equal(t, ClassBenign, label)
	assert.InDelta(t, 0.1, probs[0], 1e-9)
	assert.InDelta(t, 0.9, probs[1], 1e-9)
}

func TestForestPredictTieGoesToMalignant(t *testing.T) {
	// Both leaves split evenly, so the averaged distribution is exactly
	// 50/50 and the first maximum must win.
	forest := &Forest{
		NClasses: 2,
		Trees: []Tree{
			twoLeafTree(0, 15.0, []float64{5, 5}, []float64{5, 5}),
		},
	}

	label, probs, err := forest.Predict(make([]float64, 30))
	require.NoError(t, err)

	assert.Equal(t, ClassMalignant, label)
	assert.InDelta(t, 0.5, probs[0], 1e-9)
	assert.InDelta(t, 0.5, probs[1], 1e-9)
}

func TestForestPredictDeterministic(t *testing.T) {
	forest := &Forest{
		NClasses: 2,
		Trees: []Tree{
			twoLeafTree(0, 15.0, []float64{3, 7}, []float64{7, 3}),
			twoLeafTree(3, 700.0, []float64{1, 4}, []float64{4, 1}),
		},
	}

	vector := make([]float64, 30)
	vector[0] = 20.57
	vector[3] = 1326.0

	firstLabel, firstProbs, err := forest.Predict(vector)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		label, probs, err := forest.Predict(vector)
		require.NoError(t, err)
		assert.Equal(t, firstLabel, label)
		assert.Equal(t, firstProbs, probs)
	}
}

func TestForestPredictEmpty(t *testing.T) {
	forest := &Forest{NClasses: 2}

	_, _, err := forest.Predict(make([]float64, 30))

	assert.Error(t, err)
}

func TestForestPredictCorruptTree(t *testing.T) {
	// Bypasses Validate on purpose: a non-leaf pointing outside the node
	// array must surface as an error, not a panic.
	forest := &Forest{
		NClasses: 2,
		Trees: []Tree{
			{Nodes: []TreeNode{
				{FeatureIdx: 0, Threshold: 1.0, LeftChild: 7, RightChild: 9},
			}},
		},
	}

	_, _, err := forest.Predict(make([]float64, 30))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestForestValidateRejectsCycles(t *testing.T) {
	forest := &Forest{
		NClasses: 2,
		Trees: []Tree{
			{Nodes: []TreeNode{
				{FeatureIdx: 0, Threshold: 1.0, LeftChild: 1, RightChild: 2},
				{FeatureIdx: 1, Threshold: 2.0, LeftChild: 0, RightChild: 2},
				{FeatureIdx: -1, LeftChild: -1, RightChild: -1, ClassCounts: []float64{1, 1}, IsLeaf: true},
			}},
		},
	}

	err := forest.Validate(30)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "left child")
}
