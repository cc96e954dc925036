package slab

import (
	"github.com/opticslab/goad/fresnel"
	"github.com/opticslab/goad/utils"
)

// BoundaryMatrices returns the four diagonal operators of one air/slide/
// slab boundary, sampled at the internal quadrature directions: R01/T01
// act on light arriving from outside at the external angle that refracts
// onto each internal direction, R10/T10 on light arriving from inside
// the slab. Directions inside the totally-reflecting cone come out with
// R10=1, T10=0 naturally.
func BoundaryMatrices(s Sample, q *Quad, top bool) (R01, R10, T01, T10 utils.Vector) {
	var (
		n      = q.N
		nSlide = s.NAbove
		bSlide = s.BAbove
	)
	if !top {
		nSlide = s.NBelow
		bSlide = s.BBelow
	}
	var (
		r01 = make([]float64, n)
		r10 = make([]float64, n)
		t01 = make([]float64, n)
		t10 = make([]float64, n)
	)
	for i, nu := range q.Nu.DataP {
		nuOut := fresnel.CosSnell(s.N, nu, 1)
		r01[i], t01[i] = fresnel.AbsorbingGlassRT(1, nSlide, s.N, nuOut, bSlide)
		r10[i], t10[i] = fresnel.AbsorbingGlassRT(s.N, nSlide, 1, nu, bSlide)
	}
	R01 = utils.NewVector(n, r01)
	R10 = utils.NewVector(n, r10)
	T01 = utils.NewVector(n, t01)
	T10 = utils.NewVector(n, t10)
	return
}

// AddSlideAbove combines a top boundary (diagonal operators) with a slab
// described by dense operators, returning all four composite operators.
func AddSlideAbove(q *Quad, r01, r10, t01, t10 utils.Vector, R12, R21, T12, T21 utils.Matrix) (R02, R20, T02, T20 utils.Matrix) {
	var (
		R01 = q.diagToConv(r01)
		R10 = q.diagToConv(r10)
		T01 = q.diagToConv(t01)
		T10 = q.diagToConv(t10)
	)
	R20, T02 = AddLayers(q, R10, T01, R12, R21, T12, T21)
	R02, T20 = AddLayers(q, R12, T21, R10, R01, T10, T01)
	return
}

// AddSlideBelow combines a composite structure (dense operators 0..2)
// with a bottom boundary (diagonal operators 2..3).
func AddSlideBelow(q *Quad, R02, R20, T02, T20 utils.Matrix, r23, r32, t23, t32 utils.Vector) (R03, R30, T03, T30 utils.Matrix) {
	var (
		R23 = q.diagToConv(r23)
		R32 = q.diagToConv(r32)
		T23 = q.diagToConv(t23)
		T32 = q.diagToConv(t32)
	)
	R30, T03 = AddLayers(q, R20, T02, R23, R32, T23, T32)
	R03, T30 = AddLayers(q, R23, T32, R20, R02, T20, T02)
	return
}

// AddSameSlides assembles a homogeneous slab clad in identical top and
// bottom slides. The structure is mirror symmetric, so the second star
// combination is computed once and the flipped pair reuses it.
func AddSameSlides(q *Quad, r01, r10, t01, t10 utils.Vector, R, T utils.Matrix) (R03, R30, T03, T30 utils.Matrix) {
	_, R20, T02, _ := AddSlideAbove(q, r01, r10, t01, t10, R, R, T, T)
	var (
		R23 = q.diagToConv(r10)
		R32 = q.diagToConv(r01)
		T23 = q.diagToConv(t10)
		T32 = q.diagToConv(t01)
	)
	R30, T03 = AddLayers(q, R20, T02, R23, R32, T23, T32)
	R03, T30 = R30, T03
	return
}

// RTMatrices assembles the full structure: bare doubled slab, then the
// boundary case that applies. Dispatch is on exact structural equality;
// a matched bare slab skips the boundary algebra entirely.
func RTMatrices(s Sample, q *Quad) (R03, R30, T03, T30 utils.Matrix, err error) {
	R, T, err := SimpleLayerMatrices(s, q)
	if err != nil {
		return
	}
	if s.N == 1 && s.NAbove == 1 && s.NBelow == 1 && s.BAbove == 0 && s.BBelow == 0 {
		return R, R, T, T, nil
	}
	r01, r10, t01, t10 := BoundaryMatrices(s, q, true)
	if s.NAbove == s.NBelow && s.BAbove == s.BBelow {
		R03, R30, T03, T30 = AddSameSlides(q, r01, r10, t01, t10, R, T)
		return
	}
	R02, R20, T02, T20 := AddSlideAbove(q, r01, r10, t01, t10, R, R, T, T)
	// the bottom boundary is built in outside-in order; relabel so that
	// index 2 is the slab side and 3 the outside
	r32, r23, t32, t23 := BoundaryMatrices(s, q, false)
	R03, R30, T03, T30 = AddSlideBelow(q, R02, R20, T02, T20, r23, r32, t23, t32)
	return
}
