package artifact

import (
	"errors"
	"fmt"
)

// StandardScaler centers and scales a feature vector using the per-feature
// mean and standard deviation recorded at training time.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Apply returns a standardized copy of vector. The input slice is never
// modified. A zero scale entry divides by one instead, matching how the
// training library handles constant features.
func (s *StandardScaler) Apply(vector []float64) ([]float64, error) {
	if len(vector) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(vector))
	}

	out := make([]float64, len(vector))
	for i, v := range vector {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}

func (s *StandardScaler) validate(featureCount int) error {
	if len(s.Mean) == 0 {
		return errors.New("scaler mean is empty")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler mean has %d entries but scale has %d", len(s.Mean), len(s.Scale))
	}
	if len(s.Mean) != featureCount {
		return fmt.Errorf("scaler width %d does not match feature count %d", len(s.Mean), featureCount)
	}
	return nil
}
