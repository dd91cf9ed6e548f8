package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/nums/compiler/gen"
)

// Identifiers declared by the shared file.
const (
	errIndexOutOfRange = "ErrIndexOutOfRange"
	indexErrorType     = "IndexError"
)

// genPackage generates the shared file: the package documentation and the
// index error of the generated vectors.
func genPackage(h gen.GeneratorHelper) *jen.File {
	c := h.Catalog()
	f := jen.NewFile(h.Pkg())
	for _, line := range gen.HeaderLines(c.HeaderComment()) {
		f.HeaderComment(line)
	}
	f.PackageComment(fmt.Sprintf("Package %s provides fixed-arity vector and matrix types: %d vector and %d matrix shapes.",
		h.Pkg(), len(c.Vectors), len(c.Matrices)))

	f.Comment(errIndexOutOfRange + " is matched by the errors of component accesses outside a vector's arity.")
	f.Var().Id(errIndexOutOfRange).Op("=").Qual("errors", "New").Call(jen.Lit(h.Pkg() + ": index out of range"))

	f.Comment(indexErrorType + " reports an Index outside [0, Len) of the vector type named Type.")
	f.Type().Id(indexErrorType).Struct(
		jen.Id("Type").String(),
		jen.Id("Index").Int(),
		jen.Id("Len").Int(),
	)

	f.Comment("Error implements the error interface.")
	f.Func().Params(jen.Id("e").Op("*").Id(indexErrorType)).Id("Error").Params().String().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("%s: index %d out of range [0, %d)"),
			jen.Id("e").Dot("Type"),
			jen.Id("e").Dot("Index"),
			jen.Id("e").Dot("Len"),
		)),
	)

	f.Comment("Is reports whether target is " + errIndexOutOfRange + ".")
	f.Func().Params(jen.Id("e").Op("*").Id(indexErrorType)).Id("Is").Params(jen.Id("target").Error()).Bool().Block(
		jen.Return(jen.Id("target").Op("==").Id(errIndexOutOfRange)),
	)
	return f
}
