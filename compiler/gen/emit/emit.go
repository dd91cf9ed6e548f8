// Package emit provides a structured text writer for generated source code.
//
// A Writer tracks indentation and block balance. Every Open must be matched
// by a Close within one session. A violation is sticky: all following calls
// become no-ops and the session fails when it is finalized, so a broken
// session never produces output.
//
//	out, err := emit.Session(func(w *emit.Writer) error {
//	    w.Doc("Vec2 is a 2 component vector of float32.")
//	    w.Open("type Vec2 struct")
//	    w.Line("X, Y float32")
//	    w.Close()
//	    return nil
//	})
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnbalanced is reported when blocks or regions are not balanced.
var ErrUnbalanced = errors.New("emit: unbalanced block")

// Option configures a Writer.
type Option func(*Writer)

// WithIndent sets the string used for one level of indentation.
// The default is a single tab.
func WithIndent(s string) Option {
	return func(w *Writer) {
		w.indent = s
	}
}

// WithRegions enables the region fold markers.
func WithRegions(enabled bool) Option {
	return func(w *Writer) {
		w.markers = enabled
	}
}

// Writer is a structured text writer. It is not safe for concurrent use.
type Writer struct {
	buf     bytes.Buffer
	indent  string
	markers bool

	blocks  []string // headers of open blocks
	regions []string // names of open regions
	doc     []string // pending documentation lines
	err     error
}

// Open writes the header followed by an opening brace and enters a new block.
func (w *Writer) Open(format string, args ...any) {
	if w.err != nil {
		return
	}
	header := sprintf(format, args...)
	w.flushDoc()
	w.writeIndent()
	if header != "" {
		w.buf.WriteString(header)
		w.buf.WriteByte(' ')
	}
	w.buf.WriteString("{\n")
	w.blocks = append(w.blocks, header)
}

// Close leaves the current block and writes the closing brace.
func (w *Writer) Close() {
	w.CloseWith("")
}

// CloseWith leaves the current block and writes the closing brace followed
// by suffix, e.g. "," for composite literals in a list.
func (w *Writer) CloseWith(suffix string) {
	if w.err != nil {
		return
	}
	if len(w.blocks) == 0 {
		w.err = fmt.Errorf("%w: close without matching open", ErrUnbalanced)
		return
	}
	if len(w.doc) > 0 {
		w.err = fmt.Errorf("%w: documentation %q is not followed by a declaration", ErrUnbalanced, w.doc[0])
		return
	}
	w.blocks = w.blocks[:len(w.blocks)-1]
	w.writeIndent()
	w.buf.WriteByte('}')
	w.buf.WriteString(suffix)
	w.buf.WriteByte('\n')
}

// Line writes one line at the current indentation.
func (w *Writer) Line(format string, args ...any) {
	if w.err != nil {
		return
	}
	w.flushDoc()
	w.writeIndent()
	w.buf.WriteString(sprintf(format, args...))
	w.buf.WriteByte('\n')
}

// Blank writes an empty separator line.
func (w *Writer) Blank() {
	if w.err != nil {
		return
	}
	w.buf.WriteByte('\n')
}

// Doc records documentation for the next line or block. Multiple calls
// accumulate; text containing newlines is split into several comment lines.
func (w *Writer) Doc(format string, args ...any) {
	if w.err != nil {
		return
	}
	w.doc = append(w.doc, strings.Split(sprintf(format, args...), "\n")...)
}

// Region opens a named fold region. Regions are cosmetic and only produce
// output when enabled with WithRegions, but they must still balance. Markers
// are followed by a blank line.
func (w *Writer) Region(name string) {
	if w.err != nil {
		return
	}
	w.regions = append(w.regions, name)
	if w.markers {
		w.writeIndent()
		w.buf.WriteString("// region ")
		w.buf.WriteString(name)
		w.buf.WriteString("\n\n")
	}
}

// EndRegion closes the innermost region.
func (w *Writer) EndRegion() {
	if w.err != nil {
		return
	}
	if len(w.regions) == 0 {
		w.err = fmt.Errorf("%w: end of region without matching region", ErrUnbalanced)
		return
	}
	w.regions = w.regions[:len(w.regions)-1]
	if w.markers {
		w.writeIndent()
		w.buf.WriteString("// endregion\n\n")
	}
}

// Depth returns the number of open blocks.
func (w *Writer) Depth() int { return len(w.blocks) }

// Err returns the first contract violation, if any.
func (w *Writer) Err() error { return w.err }

// Bytes finalizes the writer and returns a copy of its content.
// It fails if a contract violation occurred or blocks or regions are
// still open.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if n := len(w.blocks); n > 0 {
		return nil, fmt.Errorf("%w: %d block(s) left open, innermost %q", ErrUnbalanced, n, w.blocks[n-1])
	}
	if n := len(w.regions); n > 0 {
		return nil, fmt.Errorf("%w: region %q left open", ErrUnbalanced, w.regions[n-1])
	}
	if len(w.doc) > 0 {
		return nil, fmt.Errorf("%w: documentation %q is not followed by a declaration", ErrUnbalanced, w.doc[0])
	}
	return bytes.Clone(w.buf.Bytes()), nil
}

func (w *Writer) flushDoc() {
	for _, line := range w.doc {
		w.writeIndent()
		if line == "" {
			w.buf.WriteString("//\n")
			continue
		}
		w.buf.WriteString("// ")
		w.buf.WriteString(line)
		w.buf.WriteByte('\n')
	}
	w.doc = w.doc[:0]
}

func (w *Writer) writeIndent() {
	for range w.blocks {
		w.buf.WriteString(w.indent)
	}
}

func (w *Writer) reset() {
	w.buf.Reset()
	w.indent = "\t"
	w.markers = false
	w.blocks = w.blocks[:0]
	w.regions = w.regions[:0]
	w.doc = w.doc[:0]
	w.err = nil
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

var pool = sync.Pool{
	New: func() any { return new(Writer) },
}

// New returns a standalone Writer. Most callers should use Session instead.
func New(opts ...Option) *Writer {
	w := new(Writer)
	w.reset()
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Session runs fn with a Writer taken from a pool and returns its output.
// The writer is returned to the pool on every path. If fn fails or leaves
// the writer unbalanced, the buffered text is discarded and only the error
// is returned.
func Session(fn func(*Writer) error, opts ...Option) ([]byte, error) {
	w := pool.Get().(*Writer)
	w.reset()
	for _, opt := range opts {
		opt(w)
	}
	defer func() {
		w.reset()
		pool.Put(w)
	}()
	if err := fn(w); err != nil {
		return nil, err
	}
	return w.Bytes()
}
