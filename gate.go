package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

/*
GateOp is a quantum gate placed on specific wires. The wire order is
significant: control wires come first, targets after, matching the row
order of the gate matrix (leading wires are the high-order basis bits).
*/
type GateOp struct {
	name        string
	wires       Wires
	numControls int
	matrix      Matrix
}

// Name returns the gate type name, e.g. "CSWAP".
func (g *GateOp) Name() string { return g.name }

// Wires returns the full ordered wire sequence the gate acts on.
func (g *GateOp) Wires() Wires { return g.wires.Copy() }

/*
ControlWires returns the ordered subsequence of the gate's wires that act
as controls. Gates without control structure return an empty, non-nil
sequence, never nil, so callers can range over the result unconditionally.
*/
func (g *GateOp) ControlWires() Wires {
	return g.wires[:g.numControls].Copy()
}

// TargetWires returns the wires the gate actually transforms.
func (g *GateOp) TargetWires() Wires {
	return g.wires[g.numControls:].Copy()
}

// Matrix returns the gate's unitary in the basis ordered by its wires.
func (g *GateOp) Matrix() Matrix { return g.matrix.Copy() }

// newGate validates wires and assembles a GateOp.
func newGate(name string, matrix Matrix, numControls int, wires ...int) (*GateOp, error) {
	w, err := NewWires(wires...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if dim := 1 << len(w); matrix.Rows() != dim {
		return nil, fmt.Errorf("%s: %w: %d wires for %dx%d matrix",
			name, ErrInvalidWires, len(w), matrix.Rows(), matrix.Cols())
	}
	return &GateOp{name: name, wires: w, numControls: numControls, matrix: matrix}, nil
}

// Single-qubit gates.

func NewPauliX(wire int) (*GateOp, error) {
	return newGate("PauliX", pauliX(), 0, wire)
}

func NewPauliY(wire int) (*GateOp, error) {
	return newGate("PauliY", pauliY(), 0, wire)
}

func NewPauliZ(wire int) (*GateOp, error) {
	return newGate("PauliZ", pauliZ(), 0, wire)
}

func NewHadamard(wire int) (*GateOp, error) {
	h := complex(1/math.Sqrt2, 0)
	return newGate("Hadamard", Matrix{{h, h}, {h, -h}}, 0, wire)
}

func NewS(wire int) (*GateOp, error) {
	return newGate("S", Matrix{{1, 0}, {0, 1i}}, 0, wire)
}

func NewT(wire int) (*GateOp, error) {
	return newGate("T", Matrix{{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}}, 0, wire)
}

func NewRX(theta float64, wire int) (*GateOp, error) {
	return newGate("RX", rx(theta), 0, wire)
}

func NewRY(theta float64, wire int) (*GateOp, error) {
	return newGate("RY", ry(theta), 0, wire)
}

func NewRZ(theta float64, wire int) (*GateOp, error) {
	return newGate("RZ", rz(theta), 0, wire)
}

// NewRot is the general single-qubit rotation RZ(omega) RY(theta) RZ(phi).
func NewRot(phi, theta, omega float64, wire int) (*GateOp, error) {
	return newGate("Rot", rot(phi, theta, omega), 0, wire)
}

// Two-qubit gates. For controlled gates the first wire is the control.

func NewCNOT(control, target int) (*GateOp, error) {
	return newGate("CNOT", controlled(pauliX()), 1, control, target)
}

func NewCZ(control, target int) (*GateOp, error) {
	return newGate("CZ", controlled(pauliZ()), 1, control, target)
}

func NewCRX(theta float64, control, target int) (*GateOp, error) {
	return newGate("CRX", controlled(rx(theta)), 1, control, target)
}

func NewCRY(theta float64, control, target int) (*GateOp, error) {
	return newGate("CRY", controlled(ry(theta)), 1, control, target)
}

func NewCRZ(theta float64, control, target int) (*GateOp, error) {
	return newGate("CRZ", controlled(rz(theta)), 1, control, target)
}

func NewCRot(phi, theta, omega float64, control, target int) (*GateOp, error) {
	return newGate("CRot", controlled(rot(phi, theta, omega)), 1, control, target)
}

// NewSWAP exchanges two wires. It has no control structure, so its
// ControlWires sequence is empty.
func NewSWAP(a, b int) (*GateOp, error) {
	return newGate("SWAP", swapMatrix(), 0, a, b)
}

// Three-qubit gates.

// NewCSWAP swaps the two target wires when the control wire is set.
func NewCSWAP(control, a, b int) (*GateOp, error) {
	return newGate("CSWAP", controlled(swapMatrix()), 1, control, a, b)
}

// NewToffoli flips the target when both control wires are set.
func NewToffoli(control1, control2, target int) (*GateOp, error) {
	return newGate("Toffoli", controlled(controlled(pauliX())), 2, control1, control2, target)
}

// Gate matrix builders.

func pauliX() Matrix { return Matrix{{0, 1}, {1, 0}} }
func pauliY() Matrix { return Matrix{{0, -1i}, {1i, 0}} }
func pauliZ() Matrix { return Matrix{{1, 0}, {0, -1}} }

func rx(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix{{c, -1i * s}, {-1i * s, c}}
}

func ry(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix{{c, -s}, {s, c}}
}

func rz(theta float64) Matrix {
	return Matrix{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

func rot(phi, theta, omega float64) Matrix {
	return rz(omega).Mul(ry(theta)).Mul(rz(phi))
}

func swapMatrix() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
}

/*
controlled lifts a unitary to its controlled version with one extra
leading control wire: identity on the lower block, u on the upper block.
*/
func controlled(u Matrix) Matrix {
	n := u.Rows()
	out := Identity(2 * n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[n+i][n+j] = u[i][j]
		}
	}
	return out
}
