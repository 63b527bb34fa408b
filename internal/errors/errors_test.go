package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureCountError(t *testing.T) {
	err := NewFeatureCountError(30, 2)

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "Se esperan 30 características, se recibieron 2", err.ErrBuilder.Msg)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")

	require.NotEmpty(t, err.ErrBuilder.Details.Errors, "details should carry expected and received counts")
}

func TestFeatureValueError(t *testing.T) {
	err := NewFeatureValueError(7, "La característica en el índice 7 no es un valor numérico finito")

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Contains(t, err.ErrBuilder.Msg, "índice 7")
	assert.NotEmpty(t, err.ErrBuilder.Details.Errors, "details should carry the offending index")
}

func TestModelUnavailableError(t *testing.T) {
	err := NewModelUnavailableError("Modelo no disponible")

	assert.Equal(t, CategoryUnavailable, err.Category)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.Contains(t, err.Error(), "MODEL_UNAVAILABLE")
}

func TestInferenceErrorHidesCause(t *testing.T) {
	cause := errors.New("scaler width 12 does not match vector width 30")
	err := NewInferenceError(cause)

	assert.Equal(t, CategoryInternal, err.Category)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, "Error procesando la predicción", err.ErrBuilder.Msg)
	assert.Equal(t, cause, err.Unwrap())

	envelope := err.Envelope()
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Error procesando la predicción", envelope["message"])
	assert.NotContains(t, fmt.Sprintf("%v", envelope), "scaler width")
}

func TestArtifactError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewArtifactError("No se pudo cargar el artefacto del modelo", cause)

	assert.Equal(t, CategoryArtifact, err.Category)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.Equal(t, cause, err.Unwrap())
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		wantCategory   ErrorCategory
		wantHTTPStatus int
	}{
		{
			name:           "app error passthrough",
			input:          NewFeatureCountError(30, 31),
			wantCategory:   CategoryValidation,
			wantHTTPStatus: http.StatusBadRequest,
		},
		{
			name:           "wrapped app error",
			input:          fmt.Errorf("handler: %w", NewModelUnavailableError("Modelo no disponible")),
			wantCategory:   CategoryUnavailable,
			wantHTTPStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "plain error becomes internal",
			input:          errors.New("boom"),
			wantCategory:   CategoryInternal,
			wantHTTPStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ToAppError(tt.input)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCategory, appErr.Category)
			assert.Equal(t, tt.wantHTTPStatus, appErr.HTTPStatus)
		})
	}

	assert.Nil(t, ToAppError(nil))
}

func TestErrorHandlerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.POST("/predict", func(c *gin.Context) {
		c.Error(NewFeatureCountError(30, 2))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	assert.Contains(t, w.Body.String(), "Se esperan 30 características, se recibieron 2")
	assert.Contains(t, w.Body.String(), "timestamp")
}

func TestRecoveryHandlerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RecoveryHandler())
	router.GET("/boom", func(c *gin.Context) {
		panic("unexpected state")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	assert.Contains(t, w.Body.String(), "Error interno del servidor")
	assert.NotContains(t, w.Body.String(), "unexpected state")
}

func TestWrapError(t *testing.T) {
	base := errors.New("open /tmp/model.json: no such file or directory")
	wrapped := WrapError(base, "loading artifact from %s", "/tmp/model.json")

	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "loading artifact from /tmp/model.json")

	assert.Nil(t, WrapError(nil, "ignored"))
}
