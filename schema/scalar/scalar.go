// Package scalar describes the scalar kinds that generated vector and matrix
// types are built from, together with the promotion table that decides how
// values of one kind convert into another.
//
//	scalar.Float32.String()                    // "float32"
//	scalar.Convert(scalar.Int32, scalar.Float64) // scalar.Widening
//	scalar.Convert(scalar.Float64, scalar.Int32) // scalar.Narrowing
package scalar

import (
	"fmt"
	"strings"
)

// A Kind is a scalar kind of a generated type.
type Kind uint8

// List of scalar kinds.
const (
	Invalid Kind = iota
	Int32
	Int64
	Float32
	Float64
	endKinds
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
}

var kindSizes = [...]int{
	Int32:   4,
	Int64:   8,
	Float32: 4,
	Float64: 8,
}

// Kinds returns all valid scalar kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, endKinds-1)
	for k := Int32; k < endKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("scalar.Kind(%d)", uint8(k))
}

// Valid reports if the kind is a known scalar kind.
func (k Kind) Valid() bool { return k > Invalid && k < endKinds }

// Float reports if the kind is a floating-point kind.
func (k Kind) Float() bool { return k == Float32 || k == Float64 }

// Integer reports if the kind is an integer kind.
func (k Kind) Integer() bool { return k == Int32 || k == Int64 }

// Size returns the size of one value of the kind in bytes.
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}
	return kindSizes[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("scalar: cannot marshal %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Parse returns the kind for the given Go type name.
// The aliases "float" and "double" are accepted for float32 and float64,
// and "int" and "long" for int32 and int64.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int32", "int":
		return Int32, nil
	case "int64", "long":
		return Int64, nil
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	default:
		return Invalid, fmt.Errorf("scalar: unknown kind %q", s)
	}
}

// Conversion describes how a value of one kind converts into another.
type Conversion uint8

// List of conversions.
const (
	// None means no conversion is generated (same kind).
	None Conversion = iota
	// Widening conversions never lose range and are generated as plain
	// accessors named after the target type.
	Widening
	// Narrowing conversions may lose range or precision and are generated
	// with an explicit name. Float to integer narrowing truncates toward zero.
	Narrowing
)

// String implements fmt.Stringer.
func (c Conversion) String() string {
	switch c {
	case Widening:
		return "widening"
	case Narrowing:
		return "narrowing"
	default:
		return "none"
	}
}

// promotions is the promotion table. Every ordered pair of distinct kinds
// has an entry.
var promotions = map[[2]Kind]Conversion{
	{Int32, Int64}:   Widening,
	{Int32, Float32}: Widening,
	{Int32, Float64}: Widening,
	{Int64, Int32}:   Narrowing,
	{Int64, Float32}: Widening,
	{Int64, Float64}: Widening,

	{Float32, Float64}: Widening,
	{Float32, Int32}:   Narrowing,
	{Float32, Int64}:   Narrowing,
	{Float64, Float32}: Narrowing,
	{Float64, Int32}:   Narrowing,
	{Float64, Int64}:   Narrowing,
}

// Convert returns the conversion from one kind to another.
func Convert(from, to Kind) Conversion {
	return promotions[[2]Kind{from, to}]
}

// Truncates reports if converting from one kind to another truncates the
// fractional part of each value.
func Truncates(from, to Kind) bool {
	return from.Float() && to.Integer()
}
