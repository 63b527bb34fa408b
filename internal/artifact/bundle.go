package artifact

import "time"

// TopFeature is one entry of the model's ranked feature importances.
type TopFeature struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// Metadata is the training record shipped alongside the classifier. The
// field set mirrors the training job's model_metadata.json.
type Metadata struct {
	TrainedAt       string                 `json:"trained_at"`
	TestAUC         float64                `json:"test_auc"`
	BestScore       float64                `json:"best_score"`
	BestParams      map[string]interface{} `json:"best_params"`
	TopFeatures     []TopFeature           `json:"top_features"`
	FeatureNames    []string               `json:"feature_names"`
	ConfusionMatrix [][]int                `json:"confusion_matrix"`
}

// Bundle is the in-memory form of a loaded model artifact: classifier,
// feature scaler and training metadata. A Bundle is immutable once Load
// returns it, so concurrent requests share it without locking.
type Bundle struct {
	Classifier *Forest
	Scaler     *StandardScaler
	Metadata   Metadata

	// FeatureCount is derived from Metadata.FeatureNames and cross-checked
	// against the scaler and classifier widths once at load time.
	FeatureCount int

	LoadedAt time.Time
}
