package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		c, err := File("testdata/catalog/small.yaml")
		require.NoError(t, err)
		assert.Equal(t, "geom", c.Package)
		require.Len(t, c.Vectors, 3)
		assert.Equal(t, &Vector{Name: "Vec3", Scalar: "float32", Components: []string{"x", "y", "z"}}, c.Vectors[1])
		require.Len(t, c.Matrices, 3)
		assert.Equal(t, "Vec3", c.Matrices[1].RowVector)
		assert.Equal(t, "Vec2", c.Matrices[1].ColVector)
		assert.Empty(t, c.Matrices[2].RowVector)
	})

	t.Run("json", func(t *testing.T) {
		c, err := File("testdata/catalog/small.json")
		require.NoError(t, err)
		require.Len(t, c.Vectors, 2)
		require.Len(t, c.Matrices, 1)
		assert.Equal(t, 3, c.Matrices[0].Cols)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := File("testdata/catalog/unknown.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "color")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := File("testdata/catalog/small.toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".toml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := File(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseUnknownJSONField(t *testing.T) {
	_, err := Parse([]byte(`{"vectors": [], "extra": true}`), JSON)
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, format := range []Format{YAML, JSON} {
		t.Run(string(format), func(t *testing.T) {
			c := Default()
			buf, err := c.Marshal(format)
			require.NoError(t, err)

			got, err := Parse(buf, format)
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultPackage, c.Package)
	assert.Len(t, c.Vectors, 12)
	assert.Len(t, c.Matrices, 18)

	names := make(map[string]bool)
	for _, v := range c.Vectors {
		names[v.Name] = true
		assert.Len(t, v.Components, int(v.Name[len(v.Name)-1]-'0'))
	}
	for _, m := range c.Matrices {
		names[m.Name] = true
		assert.True(t, names[m.RowVector], m.RowVector)
		assert.True(t, names[m.ColVector], m.ColVector)
	}
	assert.True(t, names["Mat3"])
	assert.True(t, names["DMat2x4"])
	assert.False(t, names["Mat3x3"])

	// Defaults are fresh values.
	Default().Vectors[0].Components[0] = "q"
	assert.Equal(t, "x", Default().Vectors[0].Components[0])
}

func TestMatrixName(t *testing.T) {
	assert.Equal(t, "Mat2", MatrixName("Mat", 2, 2))
	assert.Equal(t, "DMat3x2", MatrixName("DMat", 3, 2))
}
