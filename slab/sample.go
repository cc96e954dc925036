// Package slab implements the adding-doubling method for plane-parallel
// turbid media: angular quadrature over the internal directions, thin
// layer initialization, the doubling recursion, star-product combination
// with glass-slide boundaries, and extraction of the four hemispherical
// flux quantities UR1, UT1, URU, UTU.
package slab

import (
	"fmt"
	"math"

	"github.com/opticslab/goad/fresnel"
	"github.com/opticslab/goad/quadrature"
	"github.com/opticslab/goad/utils"
)

// PracticallyInfinite marks the optical thickness past which a slab is
// treated as semi-infinite.
const PracticallyInfinite = fresnel.PracticallyInfinite

// Sample describes one slab measurement configuration. The zero optical
// properties are physical (clear, thin, isotropic); use NewSample for a
// bare slab with sensible defaults.
type Sample struct {
	A float64 // single-scattering albedo, 0 to 1
	B float64 // optical thickness, may be +Inf
	G float64 // scattering anisotropy, -1 to 1 exclusive

	N      float64 // slab refractive index
	NAbove float64 // top slide refractive index
	NBelow float64 // bottom slide refractive index
	BAbove float64 // top slide optical thickness
	BBelow float64 // bottom slide optical thickness

	QuadPts int // quadrature points, a positive multiple of 4
}

// NewSample returns a bare slab in air with 16 quadrature points.
func NewSample(a, b, g float64) Sample {
	return Sample{
		A: a, B: b, G: g,
		N: 1, NAbove: 1, NBelow: 1,
		QuadPts: 16,
	}
}

// Validate rejects out-of-range and NaN fields up front so the solver
// never starts from an input that would quietly produce NaN fluxes.
func (s Sample) Validate() error {
	if !(s.A >= 0 && s.A <= 1) {
		return fmt.Errorf("albedo a = %g is outside [0,1]", s.A)
	}
	if !(s.B >= 0) {
		return fmt.Errorf("optical thickness b = %g is not >= 0", s.B)
	}
	if !(s.G > -1 && s.G < 1) {
		return fmt.Errorf("anisotropy g = %g is outside (-1,1)", s.G)
	}
	if !(s.N >= 1 && s.NAbove >= 1 && s.NBelow >= 1) {
		return fmt.Errorf("refractive indices (%g, %g, %g) must all be >= 1", s.N, s.NAbove, s.NBelow)
	}
	if !(s.BAbove >= 0 && s.BBelow >= 0) {
		return fmt.Errorf("slide thicknesses (%g, %g) must be >= 0", s.BAbove, s.BBelow)
	}
	if s.QuadPts <= 0 || s.QuadPts%4 != 0 {
		return fmt.Errorf("quadrature count %d is not a positive multiple of 4", s.QuadPts)
	}
	return nil
}

func (s Sample) String() string {
	return fmt.Sprintf("slab a=%g b=%g g=%g n=%g slides(n=%g/%g b=%g/%g) quad=%d",
		s.A, s.B, s.G, s.N, s.NAbove, s.NBelow, s.BAbove, s.BBelow, s.QuadPts)
}

// ADeltaM returns the albedo rescaled by the delta-M (Wiscombe)
// truncation for QuadPts expansion terms.
func (s Sample) ADeltaM() float64 {
	if s.G == 0 {
		return s.A
	}
	gn := utils.POW(s.G, s.QuadPts)
	return s.A * (1 - gn) / (1 - s.A*gn)
}

// BDeltaM returns the optical thickness rescaled by the delta-M
// truncation.
func (s Sample) BDeltaM() float64 {
	if math.IsInf(s.B, 1) {
		return s.B
	}
	if s.G == 0 {
		return s.B
	}
	gn := utils.POW(s.G, s.QuadPts)
	return (1 - s.A*gn) * s.B
}

// Quad is the resolved angular context for a sample: the internal
// quadrature cosines, their weights, the 2*nu*w flux weights and their
// reciprocals, the critical cosine, and the index of the first direction
// inside the escape cone. It depends only on N and QuadPts, is immutable
// once built, and is safe to share across evaluations.
type Quad struct {
	N      int
	NuC    float64
	Nu     utils.Vector
	W      utils.Vector
	TwoNuW utils.Vector
	EW     utils.Vector // 1/(2 nu w)
	IC     int
}

// NewQuad builds the angular context. Without a critical angle the full
// interval [0,1] carries one Radau rule so that nu=1 is a node (the
// collimated incidence direction). With a critical angle the interval
// splits at the critical cosine: Gauss below it, Radau above it, so no
// node straddles the cone boundary.
func NewQuad(s Sample) (*Quad, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var (
		n      = s.QuadPts
		nuC    = fresnel.CosCritical(s.N, 1)
		nu, w  utils.Vector
	)
	if nuC == 0 {
		nu, w = quadrature.Radau(n, 0, 1)
	} else {
		xg, wg := quadrature.Gauss(n/2, 0, nuC)
		xr, wr := quadrature.Radau(n/2, nuC, 1)
		nu = xg.Concat(xr)
		w = wg.Concat(wr)
	}
	q := &Quad{
		N:   n,
		NuC: nuC,
		Nu:  nu,
		W:   w,
	}
	tn := make([]float64, n)
	ew := make([]float64, n)
	for i := 0; i < n; i++ {
		tn[i] = 2 * nu.DataP[i] * w.DataP[i]
		ew[i] = 1 / tn[i]
	}
	q.TwoNuW = utils.NewVector(n, tn)
	q.EW = utils.NewVector(n, ew)
	q.IC = 0
	for q.IC < n && nu.DataP[q.IC] <= nuC {
		q.IC++
	}
	return q, nil
}

// diagToConv promotes a diagonal boundary operator, stored as per-angle
// values, into the dense flux-normalized form used by the star product.
func (q *Quad) diagToConv(v utils.Vector) utils.Matrix {
	d := make([]float64, q.N)
	for i := range d {
		d[i] = v.DataP[i] * q.EW.DataP[i]
	}
	return utils.NewDiagMatrix(q.N, d)
}
