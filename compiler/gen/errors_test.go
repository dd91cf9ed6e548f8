package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("duplicate component")
		err := NewShapeError("Vec3", "x", "invalid alphabet", cause)

		assert.Contains(t, err.Error(), "nums: shape error")
		assert.Contains(t, err.Error(), "on Vec3")
		assert.Contains(t, err.Error(), "component x")
		assert.Contains(t, err.Error(), "invalid alphabet")
		assert.Contains(t, err.Error(), "duplicate component")
	})

	t.Run("Error message with shape only", func(t *testing.T) {
		err := &ShapeError{Shape: "Vec3"}
		assert.Equal(t, "nums: shape error on Vec3", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewShapeError("Vec3", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrInvalidShape", func(t *testing.T) {
		err := NewShapeError("Vec3", "", "", nil)
		assert.True(t, err.Is(ErrInvalidShape))
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrInvalidShape)
	})

	t.Run("IsShapeError helper", func(t *testing.T) {
		err := NewShapeError("Vec3", "", "", nil)
		assert.True(t, IsShapeError(err))
		assert.True(t, IsShapeError(errors.Join(errors.New("other"), err)))
		assert.False(t, IsShapeError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Package", "1nums", "invalid identifier")
		assert.Contains(t, err.Error(), "nums: config error")
		assert.Contains(t, err.Error(), `"Package"`)
		assert.Contains(t, err.Error(), "value: 1nums")
		assert.Contains(t, err.Error(), "invalid identifier")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "")
		assert.True(t, err.Is(ErrMissingConfig))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		assert.True(t, IsConfigError(NewConfigError("Target", nil, "")))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestPairingError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("kind mismatch")
		err := NewPairingError("Mat2x3", "DMat3", "invalid pairing", cause)

		assert.Contains(t, err.Error(), "nums: pairing error")
		assert.Contains(t, err.Error(), "(Mat2x3 x DMat3)")
		assert.Contains(t, err.Error(), "invalid pairing")
		assert.Contains(t, err.Error(), "kind mismatch")
	})

	t.Run("Error message with left only", func(t *testing.T) {
		err := &PairingError{Left: "Mat2", Message: "test"}
		assert.Contains(t, err.Error(), "on Mat2")
		assert.NotContains(t, err.Error(), " x ")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewPairingError("Mat2", "Mat3", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrInvalidPairing", func(t *testing.T) {
		err := NewPairingError("Mat2", "Mat3", "", nil)
		assert.True(t, err.Is(ErrInvalidPairing))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("write failed")
		err := NewGenerationError("vector", "vec3.go", "cannot write file", cause)

		assert.Contains(t, err.Error(), "nums: generation error")
		assert.Contains(t, err.Error(), "phase vector")
		assert.Contains(t, err.Error(), "file: vec3.go")
		assert.Contains(t, err.Error(), "cannot write file")
		assert.Contains(t, err.Error(), "write failed")
	})

	t.Run("Error message with phase only", func(t *testing.T) {
		err := &GenerationError{Phase: "commit"}
		assert.Equal(t, "nums: generation error in phase commit", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("io error")
		err := NewGenerationError("commit", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrGenerationFailed", func(t *testing.T) {
		err := NewGenerationError("matrix", "", "", nil)
		assert.True(t, err.Is(ErrGenerationFailed))
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "nums: invalid shape", ErrInvalidShape.Error())
	assert.Equal(t, "nums: missing configuration", ErrMissingConfig.Error())
	assert.Equal(t, "nums: invalid multiplication pairing", ErrInvalidPairing.Error())
	assert.Equal(t, "nums: code generation failed", ErrGenerationFailed.Error())
}

func TestErrorTypeChecking(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		isShape   bool
		isConfig  bool
		isPairing bool
		isGen     bool
	}{
		{
			name:    "ShapeError",
			err:     NewShapeError("Vec2", "", "", nil),
			isShape: true,
		},
		{
			name:     "ConfigError",
			err:      NewConfigError("Package", nil, ""),
			isConfig: true,
		},
		{
			name:      "PairingError",
			err:       NewPairingError("Mat2", "Mat3", "", nil),
			isPairing: true,
		},
		{
			name:  "GenerationError",
			err:   NewGenerationError("vector", "", "", nil),
			isGen: true,
		},
		{
			name:    "GenerationError wrapping ShapeError",
			err:     NewGenerationError("vector", "", "", NewShapeError("Vec2", "", "", nil)),
			isShape: true,
			isGen:   true,
		},
		{
			name: "Other error",
			err:  errors.New("other"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isShape, IsShapeError(tt.err))
			assert.Equal(t, tt.isConfig, IsConfigError(tt.err))
			assert.Equal(t, tt.isPairing, IsPairingError(tt.err))
			assert.Equal(t, tt.isGen, IsGenerationError(tt.err))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	t.Run("As ShapeError", func(t *testing.T) {
		err := NewShapeError("Vec2", "x", "invalid", nil)
		var shapeErr *ShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, "Vec2", shapeErr.Shape)
		assert.Equal(t, "x", shapeErr.Component)
	})

	t.Run("As PairingError", func(t *testing.T) {
		err := NewPairingError("Mat2x3", "Mat2", "invalid", nil)
		var pairingErr *PairingError
		require.True(t, errors.As(err, &pairingErr))
		assert.Equal(t, "Mat2x3", pairingErr.Left)
		assert.Equal(t, "Mat2", pairingErr.Right)
	})

	t.Run("As GenerationError", func(t *testing.T) {
		err := NewGenerationError("matrix", "mat2.go", "failed", nil)
		var genErr *GenerationError
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, "matrix", genErr.Phase)
		assert.Equal(t, "mat2.go", genErr.File)
	})
}
