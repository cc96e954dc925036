package slab

import (
	"math"

	"github.com/opticslab/goad/utils"
)

// igiCutoff selects infinitesimal-generator initialization when the
// starting thickness is too small for the diamond scheme to pay off.
const igiCutoff = 1e-4

// StartingThickness halves the delta-M corrected thickness until it is
// no larger than the smallest quadrature cosine. A clear sample starts
// at 0; a semi-infinite one starts at half the smallest cosine, since
// its doubling loop tracks convergence instead of thickness.
func StartingThickness(s Sample, q *Quad) float64 {
	if s.B <= 0 {
		return 0
	}
	numin := q.Nu.DataP[0]
	bd := s.BDeltaM()
	if math.IsInf(bd, 1) {
		return numin / 2
	}
	for bd > numin {
		bd /= 2
	}
	return bd
}

// ZeroLayer returns the reflection and transmission operators of a layer
// of zero thickness: nothing reflected, everything transmitted.
func ZeroLayer(q *Quad) (R, T utils.Matrix) {
	R = utils.NewMatrix(q.N, q.N)
	T = utils.NewDiagMatrix(q.N, q.EW.DataP)
	return
}

// IGI builds the thin-layer operators with the infinitesimal generator,
// accurate to first order in the starting thickness d.
func IGI(s Sample, q *Quad) (R, T utils.Matrix) {
	var (
		n      = q.N
		d      = StartingThickness(s, q)
		a      = s.ADeltaM()
		hp, hm = HGLegendre(s, q)
	)
	R = utils.NewMatrix(n, n)
	T = utils.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		nui := q.Nu.DataP[i]
		for j := 0; j < n; j++ {
			c := a * d / (4 * nui * q.Nu.DataP[j])
			R.DataP[i*n+j] = c * hm.DataP[i*n+j]
			T.DataP[i*n+j] = c * hp.DataP[i*n+j]
		}
		T.DataP[i*n+i] += (1 - d/nui) * q.EW.DataP[i]
	}
	return
}

// Diamond builds the thin-layer operators from the diamond (trapezoid)
// discretization of the transport equation over a layer of the starting
// thickness. One factorization of G serves both the reflection and the
// transmission solve.
func Diamond(s Sample, q *Quad) (R, T utils.Matrix) {
	var (
		n      = q.N
		d      = StartingThickness(s, q)
		a      = s.ADeltaM()
		hp, hm = HGLegendre(s, q)
	)
	// A = I + D - that, Rhat: scattering operators of the averaged field
	A := utils.NewMatrix(n, n)
	Rhat := utils.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		nui := q.Nu.DataP[i]
		for j := 0; j < n; j++ {
			c := a * d * q.W.DataP[j] / (4 * nui)
			Rhat.DataP[i*n+j] = c * hm.DataP[i*n+j]
			A.DataP[i*n+j] = -c * hp.DataP[i*n+j]
		}
		A.DataP[i*n+i] += 1 + d/(2*nui)
	}

	C := A.LUSolve(Rhat)
	G := A.Copy().Subtract(Rhat.Mul(C)).Scale(0.5)
	Y := G.LUSolve(utils.NewIdentity(n))

	T = Y.Copy()
	for i := 0; i < n; i++ {
		T.DataP[i*n+i] -= 1
	}
	R = C.Mul(Y)
	R.ScaleCols(q.EW)
	T.ScaleCols(q.EW)
	return
}

// ThinnestLayer initializes the layer the doubling recursion starts
// from. IGI is only worth it when the starting thickness is vanishingly
// small; otherwise the diamond form cuts the initialization error.
func ThinnestLayer(s Sample, q *Quad) (R, T utils.Matrix) {
	d := StartingThickness(s, q)
	if d <= 0 {
		return ZeroLayer(q)
	}
	if d < igiCutoff || d < 0.09*q.Nu.DataP[0] {
		return IGI(s, q)
	}
	return Diamond(s, q)
}
