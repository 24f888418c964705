package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDensityMatrix(t *testing.T) {
	Convey("Given a fresh density matrix", t, func() {
		dm, err := NewDensityMatrix(2)
		So(err, ShouldBeNil)

		Convey("It starts in |00> with unit trace and purity", func() {
			So(dm.Trace(), ShouldAlmostEqual, 1.0, 1e-12)
			So(dm.Purity(), ShouldAlmostEqual, 1.0, 1e-12)
			So(dm.Probabilities()[0], ShouldAlmostEqual, 1.0, 1e-12)
		})

		Convey("When preparing a Bell pair", func() {
			h, err := NewHadamard(0)
			So(err, ShouldBeNil)
			cnot, err := NewCNOT(0, 1)
			So(err, ShouldBeNil)

			So(dm.ApplyGate(h), ShouldBeNil)
			So(dm.ApplyGate(cnot), ShouldBeNil)

			Convey("Only |00> and |11> carry probability", func() {
				probs := dm.Probabilities()
				So(probs[0b00], ShouldAlmostEqual, 0.5, 1e-12)
				So(probs[0b11], ShouldAlmostEqual, 0.5, 1e-12)
				So(probs[0b01], ShouldAlmostEqual, 0.0, 1e-12)
				So(probs[0b10], ShouldAlmostEqual, 0.0, 1e-12)
			})

			Convey("The state stays pure under unitaries", func() {
				So(dm.Purity(), ShouldAlmostEqual, 1.0, 1e-12)
			})

			Convey("Depolarizing noise mixes the state", func() {
				ch, err := NewDepolarizingChannel(0.5, 0)
				So(err, ShouldBeNil)
				So(dm.ApplyChannel(ch), ShouldBeNil)
				So(dm.Trace(), ShouldAlmostEqual, 1.0, 1e-12)
				So(dm.Purity(), ShouldBeLessThan, 1.0)
			})

			Convey("Measurement collapses to a single basis state", func() {
				outcome := dm.Measure()
				So(outcome == 0b00 || outcome == 0b11, ShouldBeTrue)
				So(dm.Probabilities()[outcome], ShouldAlmostEqual, 1.0, 1e-12)
				So(dm.Purity(), ShouldAlmostEqual, 1.0, 1e-12)
			})
		})

		Convey("Gates on out-of-range wires are rejected", func() {
			x, err := NewPauliX(5)
			So(err, ShouldBeNil)
			So(dm.ApplyGate(x), ShouldNotBeNil)
		})
	})
}

func TestExpectationZ(t *testing.T) {
	Convey("Given single-wire Z expectations", t, func() {
		dm, err := NewDensityMatrix(2)
		So(err, ShouldBeNil)

		Convey("|00> gives +1 on both wires", func() {
			for wire := 0; wire < 2; wire++ {
				z, err := dm.ExpectationZ(wire)
				So(err, ShouldBeNil)
				So(z, ShouldAlmostEqual, 1.0, 1e-12)
			}
		})

		Convey("Flipping wire 1 gives -1 there and +1 on wire 0", func() {
			x, err := NewPauliX(1)
			So(err, ShouldBeNil)
			So(dm.ApplyGate(x), ShouldBeNil)

			z0, err := dm.ExpectationZ(0)
			So(err, ShouldBeNil)
			So(z0, ShouldAlmostEqual, 1.0, 1e-12)

			z1, err := dm.ExpectationZ(1)
			So(err, ShouldBeNil)
			So(z1, ShouldAlmostEqual, -1.0, 1e-12)
		})

		Convey("An out-of-range wire is rejected", func() {
			_, err := dm.ExpectationZ(3)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFromStateVector(t *testing.T) {
	Convey("Given a state vector promoted to a density matrix", t, func() {
		sv, err := NewStateVector(1)
		So(err, ShouldBeNil)
		h, err := NewHadamard(0)
		So(err, ShouldBeNil)
		So(sv.ApplyGate(h), ShouldBeNil)

		dm, err := FromStateVector(sv)
		So(err, ShouldBeNil)

		Convey("Probabilities match the vector's", func() {
			want := sv.Probabilities()
			got := dm.Probabilities()
			for i := range want {
				So(got[i], ShouldAlmostEqual, want[i], 1e-12)
			}
		})

		Convey("The promoted state is pure", func() {
			So(dm.Purity(), ShouldAlmostEqual, 1.0, 1e-12)
		})
	})
}

func TestBitString(t *testing.T) {
	Convey("Given basis indices", t, func() {
		dm, err := NewDensityMatrix(3)
		So(err, ShouldBeNil)

		So(dm.BitString(0), ShouldEqual, "000")
		So(dm.BitString(0b101), ShouldEqual, "101")
		So(dm.BitString(0b111), ShouldEqual, "111")
	})
}
