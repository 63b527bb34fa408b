package artifact

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Store owns the lifecycle of the model bundle: load before serving,
// optional reloads later. Readers take the current bundle through an atomic
// pointer, so the request path never locks. Loads are serialized and only
// swap the pointer on success, which keeps the last known good bundle
// serving when a reload fails.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	bundle   atomic.Pointer[Bundle]
	onReload []func()
}

// NewStore creates a store for the artifact at path. No load happens yet.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Load reads the artifact and swaps it in on success. The outcome is logged
// exactly once per attempt; handlers that later find the store empty report
// unavailability without logging the cause again.
func (s *Store) Load() (*Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle, err := Load(s.path)
	if err != nil {
		if s.bundle.Load() != nil {
			s.logger.Error("Model artifact load failed, keeping last known good bundle",
				"path", s.path,
				"error", err)
		} else {
			s.logger.Error("Model artifact load failed",
				"path", s.path,
				"error", err)
		}
		return nil, err
	}

	s.bundle.Store(bundle)
	s.logger.Info("Model artifact loaded",
		"path", s.path,
		"feature_count", bundle.FeatureCount,
		"trees", len(bundle.Classifier.Trees),
		"trained_at", bundle.Metadata.TrainedAt,
		"test_auc", bundle.Metadata.TestAUC)

	for _, fn := range s.onReload {
		fn()
	}
	return bundle, nil
}

// OnReload registers fn to run after every successful bundle swap. Used to
// drop caches that were keyed against the previous model.
func (s *Store) OnReload(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReload = append(s.onReload, fn)
}

// Bundle returns the currently served bundle and whether one is loaded.
func (s *Store) Bundle() (*Bundle, bool) {
	bundle := s.bundle.Load()
	return bundle, bundle != nil
}

// Ready reports whether a bundle is currently served.
func (s *Store) Ready() bool {
	return s.bundle.Load() != nil
}

// Path returns the artifact location this store loads from.
func (s *Store) Path() string {
	return s.path
}
