package emit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("nested blocks are indented", func(t *testing.T) {
		w := New()
		w.Open("func f()")
		w.Open("if ok")
		w.Line("return")
		w.Close()
		w.Close()

		out, err := w.Bytes()
		require.NoError(t, err)
		assert.Equal(t, "func f() {\n\tif ok {\n\t\treturn\n\t}\n}\n", string(out))
	})

	t.Run("doc precedes the next declaration", func(t *testing.T) {
		w := New()
		w.Doc("Vec2 is a vector.")
		w.Doc("It has two components.\n\nSee also Vec3.")
		w.Blank()
		w.Open("type Vec2 struct")
		w.Line("X, Y float32")
		w.Close()

		out, err := w.Bytes()
		require.NoError(t, err)
		assert.Equal(t, "\n// Vec2 is a vector.\n// It has two components.\n//\n// See also Vec3.\ntype Vec2 struct {\n\tX, Y float32\n}\n", string(out))
	})

	t.Run("format arguments", func(t *testing.T) {
		w := New(WithIndent("    "))
		w.Open("func %s()", "f")
		w.Line("x := %d", 1)
		w.Line("y := 100%")
		w.CloseWith(",")

		out, err := w.Bytes()
		require.NoError(t, err)
		assert.Equal(t, "func f() {\n    x := 1\n    y := 100%\n},\n", string(out))
	})

	t.Run("regions are cosmetic", func(t *testing.T) {
		body := func(w *Writer) {
			w.Region("constants")
			w.Line("const a = 1")
			w.EndRegion()
		}
		on, off := New(WithRegions(true)), New()
		body(on)
		body(off)

		withMarkers, err := on.Bytes()
		require.NoError(t, err)
		without, err := off.Bytes()
		require.NoError(t, err)
		assert.Equal(t, "// region constants\n\nconst a = 1\n// endregion\n\n", string(withMarkers))
		assert.Equal(t, "const a = 1\n", string(without))
	})
}

func TestWriterUnbalanced(t *testing.T) {
	tests := []struct {
		name  string
		write func(*Writer)
	}{
		{
			name:  "close without open",
			write: func(w *Writer) { w.Close() },
		},
		{
			name:  "block left open",
			write: func(w *Writer) { w.Open("func f()") },
		},
		{
			name:  "region left open",
			write: func(w *Writer) { w.Region("math") },
		},
		{
			name:  "end region without region",
			write: func(w *Writer) { w.EndRegion() },
		},
		{
			name: "dangling doc",
			write: func(w *Writer) {
				w.Doc("nothing follows")
			},
		},
		{
			name: "doc before close",
			write: func(w *Writer) {
				w.Open("type T struct")
				w.Doc("nothing follows")
				w.Close()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			tt.write(w)
			out, err := w.Bytes()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnbalanced))
			assert.Nil(t, out)
		})
	}

	t.Run("violation is sticky", func(t *testing.T) {
		w := New()
		w.Close()
		w.Open("func f()")
		w.Close()
		require.Error(t, w.Err())
		assert.Equal(t, 0, w.Depth())
		_, err := w.Bytes()
		assert.ErrorIs(t, err, ErrUnbalanced)
	})
}

func TestSession(t *testing.T) {
	t.Run("returns output on success", func(t *testing.T) {
		out, err := Session(func(w *Writer) error {
			w.Open("type T struct")
			w.Close()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "type T struct {\n}\n", string(out))
	})

	t.Run("discards output on failure", func(t *testing.T) {
		boom := errors.New("boom")
		out, err := Session(func(w *Writer) error {
			w.Line("partial")
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, out)
	})

	t.Run("discards unbalanced output", func(t *testing.T) {
		out, err := Session(func(w *Writer) error {
			w.Open("func f()")
			return nil
		})
		assert.ErrorIs(t, err, ErrUnbalanced)
		assert.Nil(t, out)
	})

	t.Run("pooled writers start clean", func(t *testing.T) {
		for range 3 {
			out, err := Session(func(w *Writer) error {
				assert.Equal(t, 0, w.Depth())
				assert.NoError(t, w.Err())
				w.Line("x")
				return nil
			}, WithRegions(true))
			require.NoError(t, err)
			assert.Equal(t, "x\n", string(out))
		}
	})
}
