package slab

import (
	"github.com/opticslab/goad/fresnel"
	"github.com/opticslab/goad/quadrature"
	"github.com/opticslab/goad/utils"
)

// flux1 integrates the collimated-incidence column (nu=1, always the
// last abscissa) over the escape cone.
func flux1(q *Quad, M utils.Matrix) (sum float64) {
	var (
		n = q.N
	)
	for i := q.IC; i < n; i++ {
		sum += q.TwoNuW.DataP[i] * M.DataP[i*n+n-1]
	}
	return
}

// fluxU double-integrates an operator over the escape cone, giving the
// diffuse-incidence response before index scaling.
func fluxU(q *Quad, M utils.Matrix) (sum float64) {
	var (
		n = q.N
	)
	for i := q.IC; i < n; i++ {
		var row float64
		for j := q.IC; j < n; j++ {
			row += M.DataP[i*n+j] * q.TwoNuW.DataP[j]
		}
		sum += q.TwoNuW.DataP[i] * row
	}
	return
}

// ComputeRT runs the forward adding-doubling calculation and returns the
// four hemispherical flux quantities: total reflectance and
// transmittance for collimated normal incidence (UR1, UT1) and for
// diffuse incidence (URU, UTU).
func ComputeRT(s Sample) (UR1, UT1, URU, UTU float64, err error) {
	q, err := NewQuad(s)
	if err != nil {
		return
	}
	R03, _, T03, _, err := RTMatrices(s, q)
	if err != nil {
		return
	}
	n2 := s.N * s.N
	UR1 = flux1(q, R03)
	UT1 = flux1(q, T03)
	URU = n2 * fluxU(q, R03)
	UTU = n2 * fluxU(q, T03)
	return
}

// ComputeRTMatrices exposes the four composite operators for callers
// that need more than hemispherical scalars (sphere corrections, lost
// light estimates). Index 0 is above the structure, 3 below it.
func ComputeRTMatrices(s Sample) (R03, R30, T03, T30 utils.Matrix, err error) {
	q, err := NewQuad(s)
	if err != nil {
		return
	}
	return RTMatrices(s, q)
}

// ComputeUnscatteredRT returns the specular-only reflectance and
// transmittance of the slide/slab/slide sandwich: collimated values at
// normal incidence and diffuse values integrated over the external
// hemisphere.
func ComputeUnscatteredRT(s Sample) (ur1, ut1, uru, utu float64, err error) {
	if err = s.Validate(); err != nil {
		return
	}
	ur1, ut1 = fresnel.SpecularRT(s.NAbove, s.N, s.NBelow, s.B, 1, s.BAbove, s.BBelow, false)
	x, w := quadrature.Gauss(s.QuadPts, 0, 1)
	for i := 0; i < s.QuadPts; i++ {
		r, t := fresnel.SpecularRT(s.NAbove, s.N, s.NBelow, s.B, x.DataP[i], s.BAbove, s.BBelow, false)
		c := 2 * x.DataP[i] * w.DataP[i]
		uru += c * r
		utu += c * t
	}
	return
}
