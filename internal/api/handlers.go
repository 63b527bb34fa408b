package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medscanlabs/oncoserve/internal/artifact"
	"github.com/medscanlabs/oncoserve/internal/cache"
	apperrors "github.com/medscanlabs/oncoserve/internal/errors"
	"github.com/medscanlabs/oncoserve/internal/inference"
	"github.com/medscanlabs/oncoserve/internal/monitoring"
)

// @title OncoServe API
// @version 1.0
// @description Servicio HTTP de predicción de cáncer de mama sobre un clasificador tabular pre-entrenado.

// @contact.name MedScan Labs
// @contact.url https://github.com/medscanlabs/oncoserve

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @tag.name inference
// @tag.description Predicción sobre vectores de características

// @tag.name model
// @tag.description Estado y metadatos del modelo

// @tag.name monitoring
// @tag.description Monitoreo del servicio

// Handlers holds the dependencies shared by all HTTP handlers
type Handlers struct {
	store   *artifact.Store
	cache   *cache.Cache // nil when response caching is disabled
	metrics *monitoring.Metrics
	logger  *monitoring.Logger
}

// NewHandlers creates the handler set for the service
func NewHandlers(store *artifact.Store, responseCache *cache.Cache, metrics *monitoring.Metrics, logger *monitoring.Logger) *Handlers {
	return &Handlers{
		store:   store,
		cache:   responseCache,
		metrics: metrics,
		logger:  logger,
	}
}

// PredictRequest es el cuerpo esperado por POST /predict
type PredictRequest struct {
	Features []float64 `json:"features" example:"17.99,10.38,122.8,1001"` // Vector de 30 características numéricas
}

// HealthModelInfo resume los metadatos del modelo cargado
type HealthModelInfo struct {
	TrainedAt     string  `json:"trained_at" example:"2025-11-04T09:30:00"` // Fecha de entrenamiento
	TestAUC       float64 `json:"test_auc" example:"0.9942"`                // AUC sobre el conjunto de prueba
	FeaturesCount int     `json:"features_count" example:"30"`              // Número de características esperadas
}

// HealthResponse estado del servicio con el modelo cargado
type HealthResponse struct {
	Status    string          `json:"status" example:"healthy"`
	Message   string          `json:"message" example:"Servicio de predicción de cáncer de mama operativo"`
	ModelInfo HealthModelInfo `json:"model_info"`
	Timestamp string          `json:"timestamp" example:"2026-08-25T10:00:00Z"`
}

// UnhealthyResponse estado del servicio sin modelo
type UnhealthyResponse struct {
	Status    string `json:"status" example:"unhealthy"`
	Message   string `json:"message" example:"Modelo no cargado"`
	Timestamp string `json:"timestamp" example:"2026-08-25T10:00:00Z"`
}

// PredictionResponse resultado de una predicción
type PredictionResponse struct {
	Status     string               `json:"status" example:"success"`
	Prediction inference.Prediction `json:"prediction"`
	Timestamp  string               `json:"timestamp" example:"2026-08-25T10:00:00Z"`
}

// ModelInfoResponse metadatos completos del modelo
type ModelInfoResponse struct {
	Status        string            `json:"status" example:"success"`
	ModelMetadata artifact.Metadata `json:"model_metadata"`
	Timestamp     string            `json:"timestamp" example:"2026-08-25T10:00:00Z"`
}

// ReloadResponse resultado de una recarga del modelo
type ReloadResponse struct {
	Status    string          `json:"status" example:"success"`
	Message   string          `json:"message" example:"Modelo recargado correctamente"`
	ModelInfo HealthModelInfo `json:"model_info"`
	Timestamp string          `json:"timestamp" example:"2026-08-25T10:00:00Z"`
}

// ErrorResponse envoltura estándar de error
type ErrorResponse struct {
	Status    string `json:"status" example:"error"`
	Message   string `json:"message" example:"Modelo no disponible"`
	Timestamp string `json:"timestamp" example:"2026-08-25T10:00:00Z"`
}

// timestamp renders envelope timestamps in UTC RFC3339
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Health reports readiness of the service and the loaded model
// @Summary Estado del servicio
// @Description Indica si el modelo está cargado y resume sus metadatos
// @Tags model
// @Produce json
// @Success 200 {object} HealthResponse "Servicio operativo"
// @Failure 503 {object} UnhealthyResponse "Modelo no cargado"
// @Router / [get]
// @Router /health [get]
func (h *Handlers) Health(c *gin.Context) {
	bundle, ok := h.store.Bundle()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, UnhealthyResponse{
			Status:    "unhealthy",
			Message:   "Modelo no cargado",
			Timestamp: timestamp(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Servicio de predicción de cáncer de mama operativo",
		ModelInfo: HealthModelInfo{
			TrainedAt:     bundle.Metadata.TrainedAt,
			TestAUC:       bundle.Metadata.TestAUC,
			FeaturesCount: bundle.FeatureCount,
		},
		Timestamp: timestamp(),
	})
}

// Predict classifies a feature vector with the loaded model
// @Summary Predicción de diagnóstico
// @Description Valida el vector de 30 características y devuelve clase, diagnóstico y confianza
// @Tags inference
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Vector de características"
// @Success 200 {object} PredictionResponse "Predicción generada"
// @Failure 400 {object} ErrorResponse "Request inválido"
// @Failure 503 {object} ErrorResponse "Modelo no disponible"
// @Failure 500 {object} ErrorResponse "Error interno"
// @Router /predict [post]
func (h *Handlers) Predict(c *gin.Context) {
	start := time.Now()

	bundle, ok := h.store.Bundle()
	if !ok {
		appErr := apperrors.NewModelUnavailableError("Modelo no disponible")
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.Envelope())
		return
	}

	// Bind into a map so a missing key, an explicit null and a wrong type
	// are reported as distinct validation failures.
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.metrics.IncrementValidationFailure()
		appErr := apperrors.NewMalformedRequestError("Request debe ser JSON válido")
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.Envelope())
		return
	}

	raw, exists := payload["features"]
	if !exists {
		h.metrics.IncrementValidationFailure()
		appErr := apperrors.NewMalformedRequestError("Campo 'features' requerido")
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.Envelope())
		return
	}

	vector, err := inference.ValidateFeatures(raw, bundle.FeatureCount)
	if err != nil {
		h.metrics.IncrementValidationFailure()
		appErr := apperrors.ToAppError(err)
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.Envelope())
		return
	}

	prediction, err := inference.Infer(bundle.Scaler, bundle.Classifier, vector)
	if err != nil {
		appErr := apperrors.ToAppError(err)
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.Envelope())
		return
	}

	h.metrics.RecordPrediction(prediction.Class)
	h.logger.PredictionLogger(prediction.Class, prediction.Diagnosis, prediction.Confidence, time.Since(start), false)

	c.JSON(http.StatusOK, PredictionResponse{
		Status:     "success",
		Prediction: prediction,
		Timestamp:  timestamp(),
	})
}

// ModelInfo returns the full training metadata of the loaded model
// @Summary Metadatos del modelo
// @Description Devuelve los metadatos completos registrados por el entrenamiento
// @Tags model
// @Produce json
// @Success 200 {object} ModelInfoResponse "Metadatos del modelo"
// @Failure 503 {object} ErrorResponse "Modelo no disponible"
// @Router /model-info [get]
func (h *Handlers) ModelInfo(c *gin.Context) {
	bundle, ok := h.store.Bundle()
	if !ok {
		appErr := apperrors.NewModelUnavailableError("Modelo no disponible")
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.Envelope())
		return
	}

	c.JSON(http.StatusOK, ModelInfoResponse{
		Status:        "success",
		ModelMetadata: bundle.Metadata,
		Timestamp:     timestamp(),
	})
}

// Reload re-reads the artifact from disk and swaps it in on success
// @Summary Recarga del modelo
// @Description Vuelve a leer el artefacto desde disco; en caso de fallo se mantiene el modelo anterior
// @Tags model
// @Produce json
// @Success 200 {object} ReloadResponse "Modelo recargado"
// @Failure 503 {object} ErrorResponse "Recarga fallida"
// @Router /model/reload [post]
func (h *Handlers) Reload(c *gin.Context) {
	bundle, err := h.store.Load()
	h.metrics.RecordModelReload(err == nil)
	if err != nil {
		appErr := apperrors.NewArtifactError("Error recargando el modelo", err)
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.Envelope())
		return
	}

	h.logger.ModelLogger("reloaded", h.store.Path(), map[string]interface{}{
		"trained_at": bundle.Metadata.TrainedAt,
		"test_auc":   bundle.Metadata.TestAUC,
	})

	c.JSON(http.StatusOK, ReloadResponse{
		Status:  "success",
		Message: "Modelo recargado correctamente",
		ModelInfo: HealthModelInfo{
			TrainedAt:     bundle.Metadata.TrainedAt,
			TestAUC:       bundle.Metadata.TestAUC,
			FeaturesCount: bundle.FeatureCount,
		},
		Timestamp: timestamp(),
	})
}

// Metrics exposes service counters and latency percentiles
// @Summary Métricas del servicio
// @Tags monitoring
// @Produce json
// @Success 200 {object} map[string]interface{} "Métricas acumuladas"
// @Router /metrics [get]
func (h *Handlers) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.GetStats())
}

// CacheStats exposes response cache statistics
// @Summary Estadísticas del caché
// @Tags monitoring
// @Produce json
// @Success 200 {object} map[string]interface{} "Estado del caché"
// @Router /cache/stats [get]
func (h *Handlers) CacheStats(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}

	stats := h.cache.Stats()
	stats["enabled"] = true
	c.JSON(http.StatusOK, stats)
}

// NoRoute renders unknown paths as the JSON error envelope
func (h *Handlers) NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Status:    "error",
		Message:   "Endpoint no encontrado",
		Timestamp: timestamp(),
	})
}
