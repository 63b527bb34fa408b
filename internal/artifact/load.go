package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// artifactFile is the on-disk layout of the serialized bundle. The three
// top-level sections are all required.
type artifactFile struct {
	Model    *Forest         `json:"model"`
	Scaler   *StandardScaler `json:"scaler"`
	Metadata *Metadata       `json:"metadata"`
}

// Load reads the artifact at path and returns a validated Bundle. Any
// missing file, decode failure or shape mismatch comes back as an error;
// nothing past this boundary panics on a bad artifact.
func Load(path string) (*Bundle, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var file artifactFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	if file.Model == nil || file.Scaler == nil || file.Metadata == nil {
		return nil, errors.New("artifact must contain model, scaler and metadata sections")
	}

	// The schema width comes from the metadata, the same way the expected
	// feature count is derived everywhere else.
	featureCount := len(file.Metadata.FeatureNames)
	if featureCount == 0 {
		return nil, errors.New("metadata.feature_names is empty")
	}

	if err := file.Scaler.validate(featureCount); err != nil {
		return nil, fmt.Errorf("invalid scaler: %w", err)
	}
	if err := file.Model.Validate(featureCount); err != nil {
		return nil, fmt.Errorf("invalid classifier: %w", err)
	}

	return &Bundle{
		Classifier:   file.Model,
		Scaler:       file.Scaler,
		Metadata:     *file.Metadata,
		FeatureCount: featureCount,
		LoadedAt:     time.Now().UTC(),
	}, nil
}
