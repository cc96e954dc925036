package slab

import (
	"errors"
	"math"

	"github.com/opticslab/goad/utils"
)

// thicknessTol is the tolerance on reaching the doubling target.
const thicknessTol = 1e-5

// utuTol is the convergence tolerance on the diffuse transmittance for
// the semi-infinite doubling loop.
const utuTol = 1e-6

// maxInfiniteDoublings caps the semi-infinite loop. Each pass doubles
// the accumulated thickness, so a layer that has not converged after 100
// self-combinations never will.
const maxInfiniteDoublings = 100

// ErrNotConverged reports that the semi-infinite doubling loop hit its
// iteration cap before the diffuse transmittance settled.
var ErrNotConverged = errors.New("slab: doubling to infinite thickness did not converge")

// AddLayers combines layer 01 (above, interface operators R10 and T01,
// with R01/T10 not needed for this direction) with layer 12 (below) by
// the star product. The geometric series of interreflections is resolved
// with a linear solve rather than an explicit inverse:
//
//	A = E - R10*C*R12        C = diag(2 nu w), E = diag(1/(2 nu w))
//	B = T12*A^-1
//	R20 = B*R10*C*T21 + R21
//	T02 = B*T01
//
// R20 is the reflection for light incident from below, T02 the downward
// transmission. The dual pair comes from calling AddLayers with the two
// layers' roles swapped.
func AddLayers(q *Quad, R10, T01, R12, R21, T12, T21 utils.Matrix) (R20, T02 utils.Matrix) {
	X := R10.Copy().ScaleCols(q.TwoNuW) // R10*C
	A := X.Mul(R12).Scale(-1).AddDiag(q.EW)
	B := A.LUSolveRight(T12) // B*A = T12
	R20 = B.Mul(X).Mul(T21).Add(R21)
	T02 = B.Mul(T01)
	return
}

// doubleOnce self-combines a homogeneous layer, doubling its thickness.
func doubleOnce(q *Quad, r, t utils.Matrix) (utils.Matrix, utils.Matrix) {
	return AddLayers(q, r, t, r, t, r, t)
}

// DoubleUntil doubles a homogeneous layer from thickness bStart until it
// reaches bEnd. Past PracticallyInfinite the thickness is meaningless
// and the loop instead runs until the diffuse transmittance moves by
// less than utuTol between iterations, bounded by maxInfiniteDoublings.
func DoubleUntil(q *Quad, r, t utils.Matrix, bStart, bEnd float64) (utils.Matrix, utils.Matrix, error) {
	if math.IsInf(bEnd, 1) || bEnd > PracticallyInfinite {
		last := fluxU(q, t)
		for i := 0; i < maxInfiniteDoublings; i++ {
			r, t = doubleOnce(q, r, t)
			utu := fluxU(q, t)
			if math.Abs(utu-last) <= utuTol {
				return r, t, nil
			}
			last = utu
		}
		return r, t, ErrNotConverged
	}
	for bStart < bEnd && math.Abs(bEnd-bStart) > thicknessTol {
		r, t = doubleOnce(q, r, t)
		bStart *= 2
	}
	return r, t, nil
}

// SimpleLayerMatrices produces the operators of the bare (boundary-free)
// slab at its delta-M corrected thickness.
func SimpleLayerMatrices(s Sample, q *Quad) (R, T utils.Matrix, err error) {
	R, T = ThinnestLayer(s, q)
	return DoubleUntil(q, R, T, StartingThickness(s, q), s.BDeltaM())
}
