package load

import "fmt"

// DefaultPackage is the package name of the default catalog.
const DefaultPackage = "nums"

// components is the standard alphabet; shapes of arity n use its prefix.
var components = []string{"x", "y", "z", "w"}

// family names a group of shapes sharing one scalar kind.
type family struct {
	vector, matrix, scalar string
}

var (
	vectorFamilies = []family{
		{vector: "Vec", scalar: "float32"},
		{vector: "DVec", scalar: "float64"},
		{vector: "IVec", scalar: "int32"},
		{vector: "LVec", scalar: "int64"},
	}
	matrixFamilies = []family{
		{vector: "Vec", matrix: "Mat", scalar: "float32"},
		{vector: "DVec", matrix: "DMat", scalar: "float64"},
	}
)

// Default returns the standard catalog: float32, float64, int32 and int64
// vectors of arity 2 to 4, and float32 and float64 matrices of every shape
// from 2x2 to 4x4.
func Default() *Catalog {
	c := &Catalog{Package: DefaultPackage}
	for _, f := range vectorFamilies {
		for n := 2; n <= 4; n++ {
			c.Vectors = append(c.Vectors, &Vector{
				Name:       fmt.Sprintf("%s%d", f.vector, n),
				Scalar:     f.scalar,
				Components: append([]string(nil), components[:n]...),
			})
		}
	}
	for _, f := range matrixFamilies {
		for rows := 2; rows <= 4; rows++ {
			for cols := 2; cols <= 4; cols++ {
				c.Matrices = append(c.Matrices, &Matrix{
					Name:      MatrixName(f.matrix, rows, cols),
					Scalar:    f.scalar,
					Rows:      rows,
					Cols:      cols,
					RowVector: fmt.Sprintf("%s%d", f.vector, cols),
					ColVector: fmt.Sprintf("%s%d", f.vector, rows),
				})
			}
		}
	}
	return c
}

// MatrixName returns the conventional matrix name: "Mat3" for square
// shapes and "Mat2x3" otherwise.
func MatrixName(prefix string, rows, cols int) string {
	if rows == cols {
		return fmt.Sprintf("%s%d", prefix, rows)
	}
	return fmt.Sprintf("%s%dx%d", prefix, rows, cols)
}
