package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidShape indicates a shape definition error.
	ErrInvalidShape = errors.New("nums: invalid shape")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("nums: missing configuration")
	// ErrInvalidPairing indicates a matrix multiplication pairing error.
	ErrInvalidPairing = errors.New("nums: invalid multiplication pairing")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("nums: code generation failed")
)

// ShapeError represents a shape definition error.
type ShapeError struct {
	Shape     string // Shape name
	Component string // Component name (if applicable)
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString("nums: shape error")
	if e.Shape != "" {
		b.WriteString(" on ")
		b.WriteString(e.Shape)
	}
	if e.Component != "" {
		b.WriteString(" component ")
		b.WriteString(e.Component)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ShapeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// NewShapeError creates a new ShapeError.
func NewShapeError(shape, component, message string, cause error) *ShapeError {
	return &ShapeError{
		Shape:     shape,
		Component: component,
		Message:   message,
		Cause:     cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("nums: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("nums: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// PairingError represents an invalid matrix multiplication pairing.
type PairingError struct {
	Left    string
	Right   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PairingError) Error() string {
	var b strings.Builder
	b.WriteString("nums: pairing error")
	if e.Left != "" && e.Right != "" {
		fmt.Fprintf(&b, " (%s x %s)", e.Left, e.Right)
	} else if e.Left != "" {
		b.WriteString(" on ")
		b.WriteString(e.Left)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *PairingError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for PairingError.
func (e *PairingError) Is(target error) bool {
	return target == ErrInvalidPairing
}

// NewPairingError creates a new PairingError.
func NewPairingError(left, right, message string, cause error) *PairingError {
	return &PairingError{
		Left:    left,
		Right:   right,
		Message: message,
		Cause:   cause,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "vector", "matrix", "package", "format", "commit"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("nums: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsShapeError reports whether the error is a ShapeError.
func IsShapeError(err error) bool {
	var shapeErr *ShapeError
	return errors.As(err, &shapeErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsPairingError reports whether the error is a PairingError.
func IsPairingError(err error) bool {
	var pairingErr *PairingError
	return errors.As(err, &pairingErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
