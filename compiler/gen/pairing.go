package gen

import "fmt"

// Pairing is a valid matrix multiplication Left × Right = Result: Left's
// column count equals Right's row count, and Result has Left's rows and
// Right's columns. All three share one scalar kind.
type Pairing struct {
	Left, Right, Result *MatrixShape
}

// NewPairing validates and returns the pairing left × right = result.
func NewPairing(left, right, result *MatrixShape) (*Pairing, error) {
	p := &Pairing{Left: left, Right: right, Result: result}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate returns a *PairingError if the operand and result dimensions or
// kinds do not form a matrix multiplication.
func (p *Pairing) Validate() error {
	left, right, result := p.Left, p.Right, p.Result
	switch {
	case left == nil || right == nil:
		return NewPairingError("", "", "missing operand", nil)
	case result == nil:
		return NewPairingError(left.Name(), right.Name(), "missing result shape", nil)
	case left.Cols() != right.Rows():
		return NewPairingError(left.Name(), right.Name(),
			fmt.Sprintf("inner dimensions differ: %dx%d by %dx%d", left.Rows(), left.Cols(), right.Rows(), right.Cols()), nil)
	case left.Scalar() != right.Scalar():
		return NewPairingError(left.Name(), right.Name(),
			fmt.Sprintf("scalar kinds differ: %s and %s", left.Scalar(), right.Scalar()), nil)
	case result.Rows() != left.Rows() || result.Cols() != right.Cols():
		return NewPairingError(left.Name(), right.Name(),
			fmt.Sprintf("result %s is %dx%d, want %dx%d", result.Name(), result.Rows(), result.Cols(), left.Rows(), right.Cols()), nil)
	case result.Scalar() != left.Scalar():
		return NewPairingError(left.Name(), right.Name(),
			fmt.Sprintf("result %s has kind %s, want %s", result.Name(), result.Scalar(), left.Scalar()), nil)
	}
	return nil
}

// Inner returns the shared dimension: Left's columns and Right's rows.
func (p *Pairing) Inner() int { return p.Left.Cols() }

// String implements fmt.Stringer.
func (p *Pairing) String() string {
	return fmt.Sprintf("%s * %s = %s", p.Left.Name(), p.Right.Name(), p.Result.Name())
}
