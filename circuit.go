package qsim

import (
	"context"
	"fmt"

	"github.com/theapemachine/errnie"
)

// Operation is anything placeable on a circuit: a gate or a noise channel.
type Operation interface {
	Name() string
	Wires() Wires
}

/*
Circuit is an ordered sequence of gates and noise channels over a fixed
register size. Operations are validated against the register when added,
so Execute only fails on cancellation.
*/
type Circuit struct {
	numQubits int
	ops       []Operation
	noisy     bool
}

// NewCircuit returns an empty circuit over the given number of qubits.
func NewCircuit(numQubits int) (*Circuit, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("%w: %d qubits", ErrEmptyState, numQubits)
	}
	return &Circuit{numQubits: numQubits}, nil
}

// NumQubits returns the register size.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Operations returns the operation sequence.
func (c *Circuit) Operations() []Operation {
	out := make([]Operation, len(c.ops))
	copy(out, c.ops)
	return out
}

// AddGate appends a gate after checking its wires fit the register.
func (c *Circuit) AddGate(g *GateOp) error {
	if err := c.checkWires(g.Name(), g.wires); err != nil {
		return err
	}
	c.ops = append(c.ops, g)
	return nil
}

// AddChannel appends a noise channel after checking its wires fit the
// register.
func (c *Circuit) AddChannel(ch *NoiseChannel) error {
	if err := c.checkWires(ch.Name(), ch.wires); err != nil {
		return err
	}
	c.ops = append(c.ops, ch)
	c.noisy = true
	return nil
}

func (c *Circuit) checkWires(name string, wires Wires) error {
	if wires.Max() >= c.numQubits {
		return fmt.Errorf("%s on wires %v: %w (%d qubits)",
			name, wires, ErrWireOutOfRange, c.numQubits)
	}
	return nil
}

/*
Execute runs the circuit on a fresh |0...0> density matrix and returns the
final state. Cancellation is checked between operations.
*/
func (c *Circuit) Execute(ctx context.Context) (*DensityMatrix, error) {
	dm, err := NewDensityMatrix(c.numQubits)
	if err != nil {
		return nil, err
	}

	for i, op := range c.ops {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("circuit canceled at operation %d (%s): %w",
				i, op.Name(), ctx.Err())
		default:
		}

		switch o := op.(type) {
		case *GateOp:
			err = dm.ApplyGate(o)
		case *NoiseChannel:
			err = dm.ApplyChannel(o)
		default:
			err = fmt.Errorf("unknown operation type %T", op)
		}
		if err != nil {
			return nil, err
		}
	}
	return dm, nil
}

/*
ExecutePure runs a noise-free circuit on a state vector. Circuits holding
noise channels need the density-matrix path and are rejected here.
*/
func (c *Circuit) ExecutePure(ctx context.Context) (*StateVector, error) {
	if c.noisy {
		return nil, fmt.Errorf("circuit holds noise channels, use Execute")
	}
	sv, err := NewStateVector(c.numQubits)
	if err != nil {
		return nil, err
	}

	for i, op := range c.ops {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("circuit canceled at operation %d (%s): %w",
				i, op.Name(), ctx.Err())
		default:
		}

		g, ok := op.(*GateOp)
		if !ok {
			return nil, fmt.Errorf("unknown operation type %T", op)
		}
		if err := sv.ApplyGate(g); err != nil {
			return nil, err
		}
	}

	errnie.Info("pure execution finished: %d qubits, %d operations",
		c.numQubits, len(c.ops))
	return sv, nil
}
