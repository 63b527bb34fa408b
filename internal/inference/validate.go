package inference

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/medscanlabs/oncoserve/internal/errors"
)

// ValidateFeatures checks a decoded "features" value against the schema
// width and returns the parsed vector. Rules run in order and fail on the
// first violation: the value must be an ordered sequence, its length must
// equal want exactly, and every element must coerce to a finite real.
// There is no partial coercion; a single bad element rejects the request.
func ValidateFeatures(raw interface{}, want int) ([]float64, error) {
	seq, ok := raw.([]interface{})
	if !ok {
		return nil, apperrors.NewMalformedRequestError("Las características deben ser una lista")
	}

	if len(seq) != want {
		return nil, apperrors.NewFeatureCountError(want, len(seq))
	}

	vector := make([]float64, want)
	for i, element := range seq {
		value, ok := toFloat(element)
		if !ok {
			return nil, apperrors.NewFeatureValueError(i,
				fmt.Sprintf("La característica en el índice %d no es un valor numérico", i))
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, apperrors.NewFeatureValueError(i,
				fmt.Sprintf("La característica en el índice %d es un valor inválido (NaN o infinito)", i))
		}
		vector[i] = value
	}

	return vector, nil
}

// toFloat coerces a decoded JSON element to a float64. Numeric strings are
// accepted the way the training pipeline's array coercion accepts them,
// which also routes "NaN" and "Infinity" strings into the finiteness check.
func toFloat(element interface{}) (float64, bool) {
	switch v := element.(type) {
	case float64:
		return v, true
	case json.Number:
		value, err := v.Float64()
		return value, err == nil
	case string:
		value, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return value, err == nil
	default:
		return 0, false
	}
}
