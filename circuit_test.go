package qsim

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuit(t *testing.T) {
	Convey("Given a two-qubit circuit", t, func() {
		ctx := context.Background()
		c, err := NewCircuit(2)
		So(err, ShouldBeNil)

		h, err := NewHadamard(0)
		So(err, ShouldBeNil)
		cnot, err := NewCNOT(0, 1)
		So(err, ShouldBeNil)

		Convey("Executing a Bell circuit yields the Bell distribution", func() {
			So(c.AddGate(h), ShouldBeNil)
			So(c.AddGate(cnot), ShouldBeNil)

			dm, err := c.Execute(ctx)
			So(err, ShouldBeNil)
			probs := dm.Probabilities()
			So(probs[0b00], ShouldAlmostEqual, 0.5, 1e-12)
			So(probs[0b11], ShouldAlmostEqual, 0.5, 1e-12)
		})

		Convey("Pure execution matches density-matrix execution", func() {
			So(c.AddGate(h), ShouldBeNil)
			So(c.AddGate(cnot), ShouldBeNil)

			sv, err := c.ExecutePure(ctx)
			So(err, ShouldBeNil)
			dm, err := c.Execute(ctx)
			So(err, ShouldBeNil)

			svProbs := sv.Probabilities()
			dmProbs := dm.Probabilities()
			for i := range svProbs {
				So(dmProbs[i], ShouldAlmostEqual, svProbs[i], 1e-12)
			}
		})

		Convey("Noisy circuits refuse the pure path", func() {
			ch, err := NewBitFlip(0.1, 0)
			So(err, ShouldBeNil)
			So(c.AddChannel(ch), ShouldBeNil)

			_, err = c.ExecutePure(ctx)
			So(err, ShouldNotBeNil)

			dm, err := c.Execute(ctx)
			So(err, ShouldBeNil)
			So(dm.Probabilities()[0b10], ShouldAlmostEqual, 0.1, 1e-12)
		})

		Convey("Operations off the register are rejected at add time", func() {
			far, err := NewPauliX(7)
			So(err, ShouldBeNil)
			So(c.AddGate(far), ShouldNotBeNil)

			ch, err := NewBitFlip(0.1, 7)
			So(err, ShouldBeNil)
			So(c.AddChannel(ch), ShouldNotBeNil)

			So(len(c.Operations()), ShouldEqual, 0)
		})

		Convey("A canceled context stops execution", func() {
			So(c.AddGate(h), ShouldBeNil)

			canceled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := c.Execute(canceled)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given thermal relaxation inside a circuit", t, func() {
		ctx := context.Background()
		c, err := NewCircuit(1)
		So(err, ShouldBeNil)

		x, err := NewPauliX(0)
		So(err, ShouldBeNil)
		So(c.AddGate(x), ShouldBeNil)

		// Strong relaxation toward the ground state after the flip.
		ch, err := NewThermalRelaxationError(0.0, 0.1, 0.1, 1.0, 0)
		So(err, ShouldBeNil)
		So(c.AddChannel(ch), ShouldBeNil)

		dm, err := c.Execute(ctx)
		So(err, ShouldBeNil)

		// exp(-10) of the excited population survives.
		So(dm.Probabilities()[1], ShouldAlmostEqual, 4.54e-5, 1e-6)
		So(dm.Trace(), ShouldAlmostEqual, 1.0, 1e-12)
	})
}
