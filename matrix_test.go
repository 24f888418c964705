package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMatrixOperations(t *testing.T) {
	Convey("Given complex matrices", t, func() {
		Convey("Mul composes in order", func() {
			got := pauliX().Mul(pauliZ())
			want := Matrix{{0, -1}, {1, 0}}
			So(got.ApproxEqual(want, 1e-12), ShouldBeTrue)
		})

		Convey("Dag conjugates and transposes", func() {
			got := pauliY().Dag()
			So(got.ApproxEqual(pauliY(), 1e-12), ShouldBeTrue)

			s := Matrix{{1, 0}, {0, 1i}}
			So(s.Dag().ApproxEqual(Matrix{{1, 0}, {0, -1i}}, 1e-12), ShouldBeTrue)
		})

		Convey("Kron builds the tensor product", func() {
			got := pauliX().Kron(Identity(2))
			want := Matrix{
				{0, 0, 1, 0},
				{0, 0, 0, 1},
				{1, 0, 0, 0},
				{0, 1, 0, 0},
			}
			So(got.ApproxEqual(want, 1e-12), ShouldBeTrue)
		})

		Convey("Trace sums the diagonal", func() {
			So(real(Identity(4).Trace()), ShouldAlmostEqual, 4.0, 1e-12)
			So(real(pauliZ().Trace()), ShouldAlmostEqual, 0.0, 1e-12)
		})

		Convey("ApproxEqual rejects shape mismatches", func() {
			So(Identity(2).ApproxEqual(Identity(4), 1e-12), ShouldBeFalse)
		})
	})
}

func TestExpandOperator(t *testing.T) {
	Convey("Given an operator embedded into a larger register", t, func() {
		Convey("A single-qubit gate on wire 0 tensors with identity on the right", func() {
			got := expandOperator(pauliX(), Wires{0}, 2)
			want := pauliX().Kron(Identity(2))
			So(got.ApproxEqual(want, 1e-12), ShouldBeTrue)
		})

		Convey("A single-qubit gate on the last wire tensors with identity on the left", func() {
			got := expandOperator(pauliX(), Wires{1}, 2)
			want := Identity(2).Kron(pauliX())
			So(got.ApproxEqual(want, 1e-12), ShouldBeTrue)
		})

		Convey("Reversed wire order permutes the operator", func() {
			// CNOT with control on the lower-indexed wire vs the reverse.
			forward := expandOperator(controlled(pauliX()), Wires{0, 1}, 2)
			reversed := expandOperator(controlled(pauliX()), Wires{1, 0}, 2)
			So(forward.ApproxEqual(reversed, 1e-12), ShouldBeFalse)

			// Reversed CNOT maps |01> -> |11>.
			So(real(reversed[0b11][0b01]), ShouldAlmostEqual, 1.0, 1e-12)
		})
	})
}
