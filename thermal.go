package qsim

import "math"

/*
NewThermalRelaxationError models combined T1/T2 relaxation of a qubit over
a gate of duration tg. Parameters:

	pe — excited-state population of the environment, in [0, 1]
	t1 — longitudinal (energy) relaxation time, > 0
	t2 — transverse (dephasing) relaxation time, 0 < t2 <= 2*t1
	tg — gate duration, >= 0

With tg = 0 the channel is the identity. For t2 <= t1 the channel
decomposes into six Kraus operators mixing identity, phase flip and reset
terms; for t1 < t2 <= 2*t1 no such mixture exists and the four Kraus
operators come from the analytic eigendecomposition of the Choi matrix.
*/
func NewThermalRelaxationError(pe, t1, t2, tg float64, wire int) (*NoiseChannel, error) {
	const op = "ThermalRelaxationError"

	if pe < 0 || pe > 1 {
		return nil, validationErr(op, "pe", pe, "0 <= pe <= 1", ErrInvalidProbability)
	}
	if t1 <= 0 {
		return nil, validationErr(op, "t1", t1, "t1 > 0", ErrInvalidRelaxation)
	}
	if t2 <= 0 {
		return nil, validationErr(op, "t2", t2, "t2 > 0", ErrInvalidRelaxation)
	}
	if t2 > 2*t1 {
		return nil, validationErr(op, "t2", t2, "t2 <= 2*t1", ErrInvalidRelaxation)
	}
	if tg < 0 {
		return nil, validationErr(op, "tg", tg, "tg >= 0", ErrInvalidGateTime)
	}

	eT1 := math.Exp(-tg / t1)
	eT2 := math.Exp(-tg / t2)
	pReset := 1 - eT1

	var kraus []Matrix
	if t2 <= t1 {
		kraus = thermalKrausMixture(pe, eT1, eT2, pReset)
	} else {
		kraus = thermalKrausChoi(pe, eT2, pReset)
	}
	return newChannel(op, kraus, wire)
}

/*
thermalKrausMixture covers t2 <= t1, where relaxation is a probabilistic
mixture of identity, phase flip, reset-to-|0> and reset-to-|1> events.
*/
func thermalKrausMixture(pe, eT1, eT2, pReset float64) []Matrix {
	pz := (1 - pReset) * (1 - eT2/eT1) / 2
	pr0 := (1 - pe) * pReset
	pr1 := pe * pReset
	pid := 1 - pz - pr0 - pr1

	sid := complex(math.Sqrt(pid), 0)
	sz := complex(math.Sqrt(pz), 0)
	s0 := complex(math.Sqrt(pr0), 0)
	s1 := complex(math.Sqrt(pr1), 0)

	return []Matrix{
		Identity(2).Scale(sid),
		pauliZ().Scale(sz),
		Matrix{{s0, 0}, {0, 0}},
		Matrix{{0, s0}, {0, 0}},
		Matrix{{0, 0}, {s1, 0}},
		Matrix{{0, 0}, {0, s1}},
	}
}

/*
thermalKrausChoi covers t1 < t2 <= 2*t1. The map is no longer a Pauli
mixture, so the Kraus operators are recovered from the eigenvalues and
eigenvectors of the channel's Choi matrix, which are known in closed form
for this family.
*/
func thermalKrausChoi(pe, eT2, pReset float64) []Matrix {
	e0 := pReset * pe
	e1 := pReset - pReset*pe

	common := math.Sqrt(4*eT2*eT2 + 4*pReset*pReset*pe*pe - 4*pReset*pReset*pe + pReset*pReset)
	e2 := 1 - pReset/2 - common/2
	e3 := 1 - pReset/2 + common/2

	term2 := 2 * eT2 / (2*pReset*pe - pReset - common)
	norm2 := math.Sqrt(term2*term2 + 1)
	term3 := 2 * eT2 / (2*pReset*pe - pReset + common)
	norm3 := math.Sqrt(term3*term3 + 1)

	k0 := Matrix{{0, 1}, {0, 0}}.Scale(complex(math.Sqrt(e0), 0))
	k1 := Matrix{{0, 0}, {1, 0}}.Scale(complex(math.Sqrt(e1), 0))
	k2 := Matrix{
		{complex(term2/norm2, 0), 0},
		{0, complex(1/norm2, 0)},
	}.Scale(complex(math.Sqrt(e2), 0))
	k3 := Matrix{
		{complex(term3/norm3, 0), 0},
		{0, complex(1/norm3, 0)},
	}.Scale(complex(math.Sqrt(e3), 0))

	return []Matrix{k0, k1, k2, k3}
}
