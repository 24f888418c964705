package qsim

import (
	"fmt"
	"math"

	"github.com/theapemachine/errnie"
)

/*
NoiseChannel is a completely positive trace-preserving map on the density
matrix of its wires, represented by an ordered sequence of Kraus operator
matrices. Constructors validate physical parameters up front so a
constructed channel is always a valid quantum channel.
*/
type NoiseChannel struct {
	name  string
	wires Wires
	kraus []Matrix
}

// Name returns the channel type name, e.g. "ThermalRelaxationError".
func (c *NoiseChannel) Name() string { return c.name }

// Wires returns the wires the channel acts on.
func (c *NoiseChannel) Wires() Wires { return c.wires.Copy() }

// KrausMatrices returns the ordered Kraus operators defining the channel.
func (c *NoiseChannel) KrausMatrices() []Matrix {
	out := make([]Matrix, len(c.kraus))
	for i, k := range c.kraus {
		out[i] = k.Copy()
	}
	return out
}

/*
TracePreserving checks the completeness relation sum(K† K) = I within the
given tolerance. Valid parameters always satisfy it; the check exists for
tests and for callers assembling channels from raw Kraus matrices.
*/
func (c *NoiseChannel) TracePreserving(tol float64) bool {
	dim := 1 << len(c.wires)
	sum := NewMatrix(dim, dim)
	for _, k := range c.kraus {
		sum = sum.Add(k.Dag().Mul(k))
	}
	return sum.ApproxEqual(Identity(dim), tol)
}

// newChannel validates wires and assembles a channel.
func newChannel(name string, kraus []Matrix, wires ...int) (*NoiseChannel, error) {
	w, err := NewWires(wires...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	errnie.Info("constructed %s channel on wires %v with %d Kraus operators",
		name, w, len(kraus))
	return &NoiseChannel{name: name, wires: w, kraus: kraus}, nil
}

// checkProbability rejects probabilities outside [0, 1].
func checkProbability(op, param string, p float64) error {
	if p < 0 || p > 1 {
		return validationErr(op, param, p, "0 <= "+param+" <= 1", ErrInvalidProbability)
	}
	return nil
}

// NewBitFlip flips the qubit with probability p.
func NewBitFlip(p float64, wire int) (*NoiseChannel, error) {
	if err := checkProbability("BitFlip", "p", p); err != nil {
		return nil, err
	}
	k0 := Identity(2).Scale(complex(math.Sqrt(1-p), 0))
	k1 := pauliX().Scale(complex(math.Sqrt(p), 0))
	return newChannel("BitFlip", []Matrix{k0, k1}, wire)
}

// NewPhaseFlip applies a Z error with probability p.
func NewPhaseFlip(p float64, wire int) (*NoiseChannel, error) {
	if err := checkProbability("PhaseFlip", "p", p); err != nil {
		return nil, err
	}
	k0 := Identity(2).Scale(complex(math.Sqrt(1-p), 0))
	k1 := pauliZ().Scale(complex(math.Sqrt(p), 0))
	return newChannel("PhaseFlip", []Matrix{k0, k1}, wire)
}

// NewDepolarizingChannel applies each Pauli error with probability p/3.
func NewDepolarizingChannel(p float64, wire int) (*NoiseChannel, error) {
	if err := checkProbability("DepolarizingChannel", "p", p); err != nil {
		return nil, err
	}
	third := complex(math.Sqrt(p/3), 0)
	kraus := []Matrix{
		Identity(2).Scale(complex(math.Sqrt(1-p), 0)),
		pauliX().Scale(third),
		pauliY().Scale(third),
		pauliZ().Scale(third),
	}
	return newChannel("DepolarizingChannel", kraus, wire)
}

// NewAmplitudeDamping decays |1> to |0> with probability gamma.
func NewAmplitudeDamping(gamma float64, wire int) (*NoiseChannel, error) {
	if err := checkProbability("AmplitudeDamping", "gamma", gamma); err != nil {
		return nil, err
	}
	k0 := Matrix{{1, 0}, {0, complex(math.Sqrt(1-gamma), 0)}}
	k1 := Matrix{{0, complex(math.Sqrt(gamma), 0)}, {0, 0}}
	return newChannel("AmplitudeDamping", []Matrix{k0, k1}, wire)
}

/*
NewGeneralizedAmplitudeDamping models exchange with an environment at
finite temperature: damping toward |0> with probability p and toward |1>
with probability 1-p, each at rate gamma.
*/
func NewGeneralizedAmplitudeDamping(gamma, p float64, wire int) (*NoiseChannel, error) {
	if err := checkProbability("GeneralizedAmplitudeDamping", "gamma", gamma); err != nil {
		return nil, err
	}
	if err := checkProbability("GeneralizedAmplitudeDamping", "p", p); err != nil {
		return nil, err
	}
	sp := complex(math.Sqrt(p), 0)
	sq := complex(math.Sqrt(1-p), 0)
	sg := complex(math.Sqrt(gamma), 0)
	sd := complex(math.Sqrt(1-gamma), 0)
	kraus := []Matrix{
		Matrix{{1, 0}, {0, sd}}.Scale(sp),
		Matrix{{0, sg}, {0, 0}}.Scale(sp),
		Matrix{{sd, 0}, {0, 1}}.Scale(sq),
		Matrix{{0, 0}, {sg, 0}}.Scale(sq),
	}
	return newChannel("GeneralizedAmplitudeDamping", kraus, wire)
}

// NewPhaseDamping destroys phase coherence without population transfer.
func NewPhaseDamping(gamma float64, wire int) (*NoiseChannel, error) {
	if err := checkProbability("PhaseDamping", "gamma", gamma); err != nil {
		return nil, err
	}
	k0 := Matrix{{1, 0}, {0, complex(math.Sqrt(1-gamma), 0)}}
	k1 := Matrix{{0, 0}, {0, complex(math.Sqrt(gamma), 0)}}
	return newChannel("PhaseDamping", []Matrix{k0, k1}, wire)
}

// NewResetError resets to |0> with probability p0 and to |1> with
// probability p1.
func NewResetError(p0, p1 float64, wire int) (*NoiseChannel, error) {
	if err := checkProbability("ResetError", "p0", p0); err != nil {
		return nil, err
	}
	if err := checkProbability("ResetError", "p1", p1); err != nil {
		return nil, err
	}
	if p0+p1 > 1 {
		return nil, validationErr("ResetError", "p0+p1", p0+p1, "p0 + p1 <= 1", ErrInvalidProbability)
	}
	s0 := complex(math.Sqrt(p0), 0)
	s1 := complex(math.Sqrt(p1), 0)
	kraus := []Matrix{
		Identity(2).Scale(complex(math.Sqrt(1-p0-p1), 0)),
		Matrix{{s0, 0}, {0, 0}},
		Matrix{{0, s0}, {0, 0}},
		Matrix{{0, 0}, {s1, 0}},
		Matrix{{0, 0}, {0, s1}},
	}
	return newChannel("ResetError", kraus, wire)
}
