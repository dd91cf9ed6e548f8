package swizzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/nums/compiler/gen/swizzle"
)

var xyzw = []string{"x", "y", "z", "w"}

func TestEnumerate(t *testing.T) {
	t.Run("xy arity 2", func(t *testing.T) {
		s, err := swizzle.Enumerate([]string{"x", "y"}, 2)
		require.NoError(t, err)
		require.Len(t, s, 4)

		names := make([]string, len(s))
		writable := make(map[string]bool)
		for i := range s {
			names[i] = s[i].Name()
			writable[s[i].Name()] = s[i].Writable()
		}
		assert.Equal(t, []string{"xx", "xy", "yx", "yy"}, names)
		assert.Equal(t, map[string]bool{"xx": false, "xy": true, "yx": true, "yy": false}, writable)
	})

	t.Run("counts", func(t *testing.T) {
		for n := 2; n <= 4; n++ {
			for k := 2; k <= n; k++ {
				s, err := swizzle.Enumerate(xyzw[:n], k)
				require.NoError(t, err)
				assert.Len(t, s, swizzle.Count(n, k), "n=%d k=%d", n, k)

				var w int
				seen := make(map[string]bool, len(s))
				for _, sw := range s {
					assert.Equal(t, k, sw.Arity())
					assert.False(t, seen[sw.Name()], "duplicate %s", sw.Name())
					seen[sw.Name()] = true
					if sw.Writable() {
						w++
					}
				}
				assert.Equal(t, swizzle.WritableCount(n, k), w, "n=%d k=%d", n, k)
			}
		}
	})

	t.Run("known totals", func(t *testing.T) {
		assert.Equal(t, 64, swizzle.Count(4, 3))
		assert.Equal(t, 24, swizzle.WritableCount(4, 3))
		assert.Equal(t, 24, swizzle.WritableCount(4, 4))
		assert.Equal(t, 6, swizzle.WritableCount(3, 2))
		assert.Equal(t, 0, swizzle.WritableCount(2, 3))
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := swizzle.Enumerate(xyzw, 4)
		require.NoError(t, err)
		b, err := swizzle.Enumerate(xyzw, 4)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, "xxxx", a[0].Name())
		assert.Equal(t, "xxxy", a[1].Name())
		assert.Equal(t, "wwww", a[len(a)-1].Name())
	})

	t.Run("components follow indices", func(t *testing.T) {
		s, err := swizzle.Enumerate([]string{"r", "g", "b"}, 3)
		require.NoError(t, err)
		for _, sw := range s {
			for pos, idx := range sw.Indices {
				assert.Equal(t, []string{"r", "g", "b"}[idx], sw.Components[pos])
			}
		}
	})

	t.Run("arity out of range", func(t *testing.T) {
		for _, k := range []int{0, 1, 5} {
			_, err := swizzle.Enumerate(xyzw, k)
			assert.ErrorIs(t, err, swizzle.ErrArity, "k=%d", k)
		}
		_, err := swizzle.Enumerate([]string{"x", "y"}, 3)
		assert.ErrorIs(t, err, swizzle.ErrArity)
	})
}

func TestAll(t *testing.T) {
	s, err := swizzle.All(xyzw)
	require.NoError(t, err)
	assert.Len(t, s, 16+64+256)
	assert.Equal(t, 2, s[0].Arity())
	assert.Equal(t, 4, s[len(s)-1].Arity())
}

func TestCheckAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		alphabet []string
		ok       bool
	}{
		{"xyzw", xyzw, true},
		{"multi letter", []string{"re", "im"}, true},
		{"duplicate", []string{"x", "x"}, false},
		{"empty", []string{"x", ""}, false},
		{"prefix", []string{"x", "xy"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := swizzle.CheckAlphabet(tt.alphabet)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, swizzle.ErrAlphabet)
		})
	}

	_, err := swizzle.Enumerate([]string{"x", "x"}, 2)
	assert.ErrorIs(t, err, swizzle.ErrAlphabet)
}
