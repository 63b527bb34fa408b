package inference

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/medscanlabs/oncoserve/internal/errors"
)

// decodeFeatures mimics the handler's JSON decoding of a request body and
// hands back the raw "features" value.
func decodeFeatures(t *testing.T, body string) interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload["features"]
}

func validVector() []interface{} {
	vector := make([]interface{}, 30)
	for i := range vector {
		vector[i] = float64(i) + 0.5
	}
	return vector
}

func TestValidateFeaturesAccepts30Floats(t *testing.T) {
	vector, err := ValidateFeatures(validVector(), 30)

	require.NoError(t, err)
	require.Len(t, vector, 30)
	assert.Equal(t, 0.5, vector[0])
	assert.Equal(t, 29.5, vector[29])
}

func TestValidateFeaturesAcceptsNumericStrings(t *testing.T) {
	raw := validVector()
	raw[4] = " 17.99 "

	vector, err := ValidateFeatures(raw, 30)

	require.NoError(t, err)
	assert.Equal(t, 17.99, vector[4])
}

func TestValidateFeaturesRejectsNonSequence(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{"string instead of list", "not-a-list"},
		{"object instead of list", map[string]interface{}{"0": 1.0}},
		{"scalar instead of list", 42.0},
		{"null features", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateFeatures(tt.raw, 30)

			require.Error(t, err)
			appErr := apperrors.ToAppError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, "Las características deben ser una lista", appErr.ErrBuilder.Msg)
		})
	}
}

func TestValidateFeaturesRejectsWrongCount(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected string
	}{
		{"two features", 2, "Se esperan 30 características, se recibieron 2"},
		{"twenty nine features", 29, "Se esperan 30 características, se recibieron 29"},
		{"thirty one features", 31, "Se esperan 30 características, se recibieron 31"},
		{"empty list", 0, "Se esperan 30 características, se recibieron 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]interface{}, tt.length)
			for i := range raw {
				raw[i] = 1.0
			}

			_, err := ValidateFeatures(raw, 30)

			require.Error(t, err)
			appErr := apperrors.ToAppError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, tt.expected, appErr.ErrBuilder.Msg)
		})
	}
}

func TestValidateFeaturesRejectsBadElements(t *testing.T) {
	tests := []struct {
		name        string
		index       int
		element     interface{}
		wantMessage string
	}{
		{"non numeric string", 3, "abc", "índice 3 no es un valor numérico"},
		{"boolean", 7, true, "índice 7 no es un valor numérico"},
		{"null element", 12, nil, "índice 12 no es un valor numérico"},
		{"nested list", 29, []interface{}{1.0}, "índice 29 no es un valor numérico"},
		{"NaN string", 0, "NaN", "índice 0 es un valor inválido (NaN o infinito)"},
		{"infinity string", 15, "Inf", "índice 15 es un valor inválido (NaN o infinito)"},
		{"negative infinity string", 22, "-Infinity", "índice 22 es un valor inválido (NaN o infinito)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validVector()
			raw[tt.index] = tt.element

			_, err := ValidateFeatures(raw, 30)

			require.Error(t, err)
			appErr := apperrors.ToAppError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Contains(t, appErr.ErrBuilder.Msg, tt.wantMessage)
		})
	}
}

func TestValidateFeaturesFailsFastOnFirstBadIndex(t *testing.T) {
	raw := validVector()
	raw[2] = "bad"
	raw[20] = "also bad"

	_, err := ValidateFeatures(raw, 30)

	require.Error(t, err)
	appErr := apperrors.ToAppError(err)
	assert.Contains(t, appErr.ErrBuilder.Msg, "índice 2")
	assert.NotContains(t, appErr.ErrBuilder.Msg, "índice 20")
}

func TestValidateFeaturesFromRequestBody(t *testing.T) {
	body := `{"features": [1.5, "2.5", 3]}`
	raw := decodeFeatures(t, body)

	vector, err := ValidateFeatures(raw, 3)

	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3}, vector)
}

func TestValidateFeaturesNotAListFromBody(t *testing.T) {
	raw := decodeFeatures(t, `{"features": "not-a-list"}`)

	_, err := ValidateFeatures(raw, 30)

	require.Error(t, err)
	appErr := apperrors.ToAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}
