package qsim

import "fmt"

/*
Wires is an ordered sequence of qubit indices an operation acts on. Order
matters: for controlled gates the leading wires are the controls and the
trailing wires the targets.
*/
type Wires []int

// NewWires validates and returns a wire sequence. Indices must be
// non-negative and unique.
func NewWires(indices ...int) (Wires, error) {
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 {
			return nil, fmt.Errorf("%w: negative index %d", ErrInvalidWires, idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrInvalidWires, idx)
		}
		seen[idx] = true
	}
	return Wires(indices), nil
}

// Contains reports whether the sequence includes the given index.
func (w Wires) Contains(idx int) bool {
	for _, q := range w {
		if q == idx {
			return true
		}
	}
	return false
}

// Equal reports whether two sequences hold the same indices in the same order.
func (w Wires) Equal(other Wires) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent copy. The result is never nil, so an empty
// sequence stays distinguishable from an absent one.
func (w Wires) Copy() Wires {
	out := make(Wires, len(w))
	copy(out, w)
	return out
}

// Max returns the largest index, or -1 for an empty sequence.
func (w Wires) Max() int {
	max := -1
	for _, q := range w {
		if q > max {
			max = q
		}
	}
	return max
}
