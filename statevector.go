package qsim

import (
	"fmt"
	"math/cmplx"
	"math/rand/v2"
)

/*
StateVector holds a pure state as 2^n amplitudes. It is the fast path for
circuits without noise channels; mixed states need a DensityMatrix.
*/
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns |0...0> on n qubits.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("%w: %d qubits", ErrEmptyState, numQubits)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}

// Clone returns an independent copy.
func (sv *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(sv.Amplitudes))
	copy(amps, sv.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: sv.NumQubits}
}

// ApplyGate multiplies the state by the gate unitary embedded at the
// gate's wires.
func (sv *StateVector) ApplyGate(g *GateOp) error {
	if g.wires.Max() >= sv.NumQubits {
		return fmt.Errorf("%s on wires %v: %w (%d qubits)",
			g.Name(), g.wires, ErrWireOutOfRange, sv.NumQubits)
	}
	u := expandOperator(g.matrix, g.wires, sv.NumQubits)
	next := make([]complex128, len(sv.Amplitudes))
	for i := range u {
		for j, a := range sv.Amplitudes {
			if u[i][j] == 0 || a == 0 {
				continue
			}
			next[i] += u[i][j] * a
		}
	}
	sv.Amplitudes = next
	return nil
}

// Probabilities returns |amplitude|^2 for every basis state.
func (sv *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(sv.Amplitudes))
	for i, a := range sv.Amplitudes {
		p := cmplx.Abs(a)
		probs[i] = p * p
	}
	return probs
}

/*
Measure simulates measuring all qubits, collapsing the state to the
observed basis state and returning its index.
*/
func (sv *StateVector) Measure() int {
	probs := sv.Probabilities()

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

	collapsed := make([]complex128, len(sv.Amplitudes))
	collapsed[measured] = 1
	sv.Amplitudes = collapsed

	return measured
}
