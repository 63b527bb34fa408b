package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalerApply(t *testing.T) {
	scaler := &StandardScaler{
		Mean:  []float64{10, 20, 30},
		Scale: []float64{2, 5, 10},
	}

	out, err := scaler.Apply([]float64{14, 10, 30})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, out[0], 1e-9)
	assert.InDelta(t, -2.0, out[1], 1e-9)
	assert.InDelta(t, 0.0, out[2], 1e-9)
}

func TestScalerApplyDoesNotMutateInput(t *testing.T) {
	scaler := &StandardScaler{
		Mean:  []float64{1, 1},
		Scale: []float64{2, 2},
	}

	in := []float64{3, 5}
	_, err := scaler.Apply(in)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 5}, in)
}

func TestScalerApplyZeroScale(t *testing.T) {
	// Constant features are stored with scale 0 by some exporters; dividing
	// by one keeps the value centered instead of producing Inf.
	scaler := &StandardScaler{
		Mean:  []float64{5},
		Scale: []float64{0},
	}

	out, err := scaler.Apply([]float64{8})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, out[0], 1e-9)
}

func TestScalerApplyWidthMismatch(t *testing.T) {
	scaler := identityScaler(30)

	_, err := scaler.Apply([]float64{1, 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 30 features")
}

func TestScalerValidate(t *testing.T) {
	tests := []struct {
		name    string
		scaler  *StandardScaler
		width   int
		wantErr bool
	}{
		{"valid", identityScaler(30), 30, false},
		{"empty", &StandardScaler{}, 30, true},
		{"width mismatch", identityScaler(12), 30, true},
		{"uneven mean and scale", &StandardScaler{Mean: []float64{0, 0}, Scale: []float64{1}}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scaler.validate(tt.width)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
