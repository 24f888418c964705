package qsim

import (
	"fmt"
	"math/cmplx"
	"math/rand/v2"
)

/*
DensityMatrix holds the mixed state of a register of qubits. Wire 0 is the
most significant basis bit, so basis index i printed as a zero-padded
binary string reads wire 0 leftmost.
*/
type DensityMatrix struct {
	data      Matrix
	numQubits int
}

// NewDensityMatrix returns the pure state |0...0><0...0| on n qubits.
func NewDensityMatrix(numQubits int) (*DensityMatrix, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("%w: %d qubits", ErrEmptyState, numQubits)
	}
	dim := 1 << numQubits
	data := NewMatrix(dim, dim)
	data[0][0] = 1
	return &DensityMatrix{data: data, numQubits: numQubits}, nil
}

// FromStateVector builds the rank-one density matrix |psi><psi|.
func FromStateVector(sv *StateVector) (*DensityMatrix, error) {
	if len(sv.Amplitudes) == 0 {
		return nil, ErrEmptyState
	}
	dim := len(sv.Amplitudes)
	data := NewMatrix(dim, dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			data[i][j] = sv.Amplitudes[i] * cmplx.Conj(sv.Amplitudes[j])
		}
	}
	return &DensityMatrix{data: data, numQubits: sv.NumQubits}, nil
}

// NumQubits returns the register size.
func (dm *DensityMatrix) NumQubits() int { return dm.numQubits }

// Data returns a copy of the raw matrix.
func (dm *DensityMatrix) Data() Matrix { return dm.data.Copy() }

// ApplyGate conjugates the state with the gate unitary: U rho U†.
func (dm *DensityMatrix) ApplyGate(g *GateOp) error {
	if err := dm.checkWires(g.Name(), g.wires); err != nil {
		return err
	}
	u := expandOperator(g.matrix, g.wires, dm.numQubits)
	dm.data = u.Mul(dm.data).Mul(u.Dag())
	return nil
}

// ApplyChannel applies a noise channel: rho -> sum K rho K†.
func (dm *DensityMatrix) ApplyChannel(c *NoiseChannel) error {
	if err := dm.checkWires(c.Name(), c.wires); err != nil {
		return err
	}
	dim := 1 << dm.numQubits
	next := NewMatrix(dim, dim)
	for _, kr := range c.kraus {
		k := expandOperator(kr, c.wires, dm.numQubits)
		next = next.Add(k.Mul(dm.data).Mul(k.Dag()))
	}
	dm.data = next
	return nil
}

func (dm *DensityMatrix) checkWires(name string, wires Wires) error {
	if wires.Max() >= dm.numQubits {
		return fmt.Errorf("%s on wires %v: %w (%d qubits)",
			name, wires, ErrWireOutOfRange, dm.numQubits)
	}
	return nil
}

// Trace returns the real part of the matrix trace, 1 for a valid state.
func (dm *DensityMatrix) Trace() float64 {
	return real(dm.data.Trace())
}

// Purity returns Tr(rho^2): 1 for pure states, 1/2^n for maximal mixing.
func (dm *DensityMatrix) Purity() float64 {
	return real(dm.data.Mul(dm.data).Trace())
}

// Probabilities returns the computational-basis outcome probabilities.
func (dm *DensityMatrix) Probabilities() []float64 {
	probs := make([]float64, len(dm.data))
	for i := range dm.data {
		probs[i] = real(dm.data[i][i])
	}
	return probs
}

/*
Measure simulates a projective measurement of all qubits. The state
collapses to the measured basis state and the basis index is returned.
*/
func (dm *DensityMatrix) Measure() int {
	probs := dm.Probabilities()

	// Normalize the probabilities
	total := 0.0
	for _, p := range probs {
		total += p
	}
	if total <= 0 {
		return 0
	}

	r := rand.Float64() * total
	cumulative := 0.0
	measured := 0
	for i, p := range probs {
		cumulative += p
		if r <= cumulative {
			measured = i
			break
		}
	}

	// Collapse to the measured basis state
	dim := len(dm.data)
	collapsed := NewMatrix(dim, dim)
	collapsed[measured][measured] = 1
	dm.data = collapsed

	return measured
}

// ExpectationZ returns <Z> on a single wire.
func (dm *DensityMatrix) ExpectationZ(wire int) (float64, error) {
	if wire < 0 || wire >= dm.numQubits {
		return 0, fmt.Errorf("wire %d: %w (%d qubits)", wire, ErrWireOutOfRange, dm.numQubits)
	}
	bit := 1 << (dm.numQubits - 1 - wire)
	var exp float64
	for i := range dm.data {
		p := real(dm.data[i][i])
		if i&bit == 0 {
			exp += p
		} else {
			exp -= p
		}
	}
	return exp, nil
}

// BitString formats a basis index with wire 0 leftmost.
func (dm *DensityMatrix) BitString(index int) string {
	return fmt.Sprintf("%0*b", dm.numQubits, index)
}

/*
expandOperator embeds an operator acting on a subset of wires into the
full register space. Basis bits outside the operator's wires pass through
unchanged; bits on the operator's wires are gathered, in wire order, into
the sub-index used against the small matrix.
*/
func expandOperator(u Matrix, wires Wires, numQubits int) Matrix {
	dim := 1 << numQubits
	out := NewMatrix(dim, dim)

	mask := 0
	for _, w := range wires {
		mask |= 1 << (numQubits - 1 - w)
	}

	for i := 0; i < dim; i++ {
		si := subIndex(i, wires, numQubits)
		for j := 0; j < dim; j++ {
			if i&^mask != j&^mask {
				continue
			}
			out[i][j] = u[si][subIndex(j, wires, numQubits)]
		}
	}
	return out
}

// subIndex gathers the bits of the given wires, first wire most
// significant, into a dense sub-space index.
func subIndex(i int, wires Wires, numQubits int) int {
	s := 0
	for _, w := range wires {
		s = s<<1 | (i>>(numQubits-1-w))&1
	}
	return s
}
