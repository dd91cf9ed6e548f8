package golang

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/nums/compiler/gen"
	"github.com/syssam/nums/compiler/gen/swizzle"
	"github.com/syssam/nums/schema/scalar"
)

var ordinals = [...]string{"first", "second", "third", "fourth"}

// ordinal returns the English ordinal of the zero-based index i.
func ordinal(i int) string {
	if i < len(ordinals) {
		return ordinals[i]
	}
	return fmt.Sprintf("%dth", i+1)
}

// fieldName returns the struct field name of a component: "x" → "X".
func fieldName(component string) string {
	// A Caser is stateful and must not be shared between sessions.
	return cases.Title(language.Und, cases.NoLower).String(component)
}

// fieldNames returns the struct field names of a vector, in order.
func fieldNames(v *gen.VectorShape) []string {
	names := make([]string, v.Arity())
	for i := range names {
		names[i] = fieldName(v.Component(i))
	}
	return names
}

// swizzleName returns the getter name of a swizzle: "xzy" → "XZY".
func swizzleName(sw swizzle.Swizzle) string {
	var b strings.Builder
	for _, c := range sw.Components {
		b.WriteString(fieldName(c))
	}
	return b.String()
}

// funcName composes a package-level function name from a type name and
// snake-cased words: ("Vec3", "unit", "x") → "Vec3UnitX".
func funcName(typ string, words ...string) string {
	return typ + inflect.Camelize(strings.Join(words, "_"))
}

func rowField(i int) string { return fmt.Sprintf("Row%d", i+1) }

func colMethod(j int) string { return fmt.Sprintf("Col%d", j+1) }

func elemMethod(i, j int) string { return fmt.Sprintf("M%d%d", i+1, j+1) }

// toFloat64 converts an expression of the given kind to float64.
func toFloat64(k scalar.Kind, expr string) string {
	if k == scalar.Float64 {
		return expr
	}
	return "float64(" + expr + ")"
}

// fromFloat64 converts a float64 expression to the given kind.
func fromFloat64(k scalar.Kind, expr string) string {
	if k == scalar.Float64 {
		return expr
	}
	return k.String() + "(" + expr + ")"
}

// mapJoin applies fn to each element and joins the results.
func mapJoin[T any](s []T, sep string, fn func(int, T) string) string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = fn(i, e)
	}
	return strings.Join(parts, sep)
}
