package qsim

import (
	"math/cmplx"
)

/*
Matrix is a dense square-or-rectangular complex matrix stored row-major.
Gate matrices, Kraus operators and density matrices all use this
representation.
*/
type Matrix [][]complex128

// NewMatrix returns a zero matrix with the given dimensions.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Mul returns the matrix product m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	rows, inner, cols := m.Rows(), m.Cols(), other.Cols()
	out := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			if m[i][k] == 0 {
				continue
			}
			a := m[i][k]
			for j := 0; j < cols; j++ {
				out[i][j] += a * other[k][j]
			}
		}
	}
	return out
}

// Add returns the element-wise sum m + other.
func (m Matrix) Add(other Matrix) Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] + other[i][j]
		}
	}
	return out
}

// Scale returns the matrix scaled by a complex factor.
func (m Matrix) Scale(factor complex128) Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = factor * m[i][j]
		}
	}
	return out
}

// Dag returns the conjugate transpose.
func (m Matrix) Dag() Matrix {
	out := NewMatrix(m.Cols(), m.Rows())
	for i := range m {
		for j := range m[i] {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

// Kron returns the Kronecker product m ⊗ other.
func (m Matrix) Kron(other Matrix) Matrix {
	or, oc := other.Rows(), other.Cols()
	out := NewMatrix(m.Rows()*or, m.Cols()*oc)
	for i := range m {
		for j := range m[i] {
			if m[i][j] == 0 {
				continue
			}
			for k := 0; k < or; k++ {
				for l := 0; l < oc; l++ {
					out[i*or+k][j*oc+l] = m[i][j] * other[k][l]
				}
			}
		}
	}
	return out
}

// Trace returns the sum of diagonal entries.
func (m Matrix) Trace() complex128 {
	var tr complex128
	for i := range m {
		tr += m[i][i]
	}
	return tr
}

// Copy returns an independent copy of the matrix.
func (m Matrix) Copy() Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		copy(out[i], m[i])
	}
	return out
}

// ApproxEqual reports whether every entry of m is within tol of other.
func (m Matrix) ApproxEqual(other Matrix, tol float64) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i := range m {
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
