// Package swizzle enumerates swizzle accessors of fixed-arity vectors.
//
// A swizzle of arity k over an alphabet of N component names is an ordered
// tuple of k component indices. All N^k tuples are enumerated. A tuple whose
// indices are pairwise distinct can be written back to the source vector and
// is writable; a tuple with a repeated index is read-only.
//
//	s, _ := swizzle.Enumerate([]string{"x", "y"}, 2)
//	// xx (read-only), xy, yx, yy (read-only)
package swizzle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArity is returned when the requested arity is outside [2, len(alphabet)].
var ErrArity = errors.New("swizzle: arity out of range")

// ErrAlphabet is returned when the alphabet cannot produce unique names.
var ErrAlphabet = errors.New("swizzle: invalid alphabet")

// Swizzle is one enumerated tuple.
type Swizzle struct {
	// Indices into the alphabet, in accessor order.
	Indices []int
	// Components are the alphabet names at Indices.
	Components []string
}

// Name returns the accessor name: the concatenation of the component names.
func (s Swizzle) Name() string {
	return strings.Join(s.Components, "")
}

// Arity returns the number of positions of the swizzle.
func (s Swizzle) Arity() int { return len(s.Indices) }

// Writable reports if all indices are pairwise distinct, which is the
// condition for scattering a value back into the source components.
func (s Swizzle) Writable() bool {
	var seen uint64
	for _, i := range s.Indices {
		if seen&(1<<i) != 0 {
			return false
		}
		seen |= 1 << i
	}
	return true
}

// Enumerate returns every tuple of length k drawn with repetition from the
// alphabet. The order is lexicographic by index, the last position varying
// fastest, and is identical for identical input.
func Enumerate(alphabet []string, k int) ([]Swizzle, error) {
	if err := CheckAlphabet(alphabet); err != nil {
		return nil, err
	}
	n := len(alphabet)
	if k < 2 || k > n {
		return nil, fmt.Errorf("%w: arity %d for alphabet of %d components", ErrArity, k, n)
	}
	total := Count(n, k)
	out := make([]Swizzle, 0, total)
	counter := make([]int, k)
	for range total {
		s := Swizzle{
			Indices:    make([]int, k),
			Components: make([]string, k),
		}
		for pos, idx := range counter {
			s.Indices[pos] = idx
			s.Components[pos] = alphabet[idx]
		}
		out = append(out, s)
		// Advance the base-n counter.
		for pos := k - 1; pos >= 0; pos-- {
			counter[pos]++
			if counter[pos] < n {
				break
			}
			counter[pos] = 0
		}
	}
	return out, nil
}

// All returns the swizzles of every arity from 2 up to the alphabet length,
// in ascending arity.
func All(alphabet []string) ([]Swizzle, error) {
	var out []Swizzle
	for k := 2; k <= len(alphabet); k++ {
		s, err := Enumerate(alphabet, k)
		if err != nil {
			return nil, err
		}
		out = append(out, s...)
	}
	return out, nil
}

// Count returns the number of swizzles of arity k over n components (n^k).
func Count(n, k int) int {
	c := 1
	for range k {
		c *= n
	}
	return c
}

// WritableCount returns the number of writable swizzles of arity k over n
// components: the falling factorial n·(n-1)·…·(n-k+1).
func WritableCount(n, k int) int {
	if k > n {
		return 0
	}
	c := 1
	for i := range k {
		c *= n - i
	}
	return c
}

// CheckAlphabet reports an error if the alphabet has empty or duplicate
// names, or if one name is a prefix of another. A prefix-free alphabet keeps
// the concatenated accessor names of one arity unique.
func CheckAlphabet(alphabet []string) error {
	for i, a := range alphabet {
		if a == "" {
			return fmt.Errorf("%w: empty component name at index %d", ErrAlphabet, i)
		}
		for _, b := range alphabet[:i] {
			switch {
			case a == b:
				return fmt.Errorf("%w: duplicate component name %q", ErrAlphabet, a)
			case strings.HasPrefix(a, b), strings.HasPrefix(b, a):
				return fmt.Errorf("%w: component names %q and %q share a prefix", ErrAlphabet, b, a)
			}
		}
	}
	return nil
}
