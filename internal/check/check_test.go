package check_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adjoint/internal/check"
)

func TestScalarChecks(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"positive ok", check.Positive("f", "x", 1), false},
		{"positive zero", check.Positive("f", "x", 0), true},
		{"positive NaN", check.Positive("f", "x", math.NaN()), true},
		{"non-negative zero", check.NonNegative("f", "x", 0), false},
		{"non-negative neg", check.NonNegative("f", "x", -1e-300), true},
		{"finite ok", check.Finite("f", "x", 1, 2, 3), false},
		{"finite inf", check.Finite("f", "x", 1, math.Inf(-1)), true},
		{"not NaN inf", check.NotNaN("f", "x", math.Inf(1)), false},
		{"not NaN", check.NotNaN("f", "x", math.NaN()), true},
		{"bounded edge", check.Bounded("f", "p", 1, 0, 1), false},
		{"bounded out", check.Bounded("f", "p", 1.5, 0, 1), true},
		{"bounded NaN", check.Bounded("f", "p", math.NaN(), 0, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.wantErr {
				assert.NoError(t, tt.err)
				return
			}
			require.Error(t, tt.err)
			assert.ErrorIs(t, tt.err, check.ErrInvalidArgument)

			var de *check.DomainError
			assert.True(t, errors.As(tt.err, &de))
		})
	}
}

func TestDomainError_Message(t *testing.T) {
	err := check.Positive("normal_lpdf", "sigma", -2)
	assert.EqualError(t, err, "normal_lpdf: sigma is -2, but must be positive")

	err = check.Finite("gradient", "x", 1, math.NaN())
	assert.EqualError(t, err, "gradient: x[1] is NaN, but must be finite")

	err = check.Bounded("f", "p", 2, 0, 1)
	assert.EqualError(t, err, "f: p is 2, but must be in [0, 1]")
}

func TestSizeChecks(t *testing.T) {
	assert.NoError(t, check.SameSize("f", "v", []float64{1, 2}, []int{3, 4}))

	err := check.SameSize("hessian_times_vector", "v", []float64{1, 2}, []float64{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrInvalidArgument)
	assert.EqualError(t, err, "hessian_times_vector: size mismatch for v: expected 2, got 1")

	var se *check.SizeMismatchError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Expected)
	assert.Equal(t, 1, se.Actual)

	assert.NoError(t, check.NonEmpty("f", "x", []float64{0}))
	assert.ErrorIs(t, check.NonEmpty("f", "x", []float64(nil)), check.ErrInvalidArgument)

	assert.NoError(t, check.Square("f", "m", [][]float64{{1, 2}, {3, 4}}))
	assert.NoError(t, check.Square("f", "m", [][]float64{}))
	assert.Error(t, check.Square("f", "m", [][]float64{{1, 2}, {3}}))
}
