// Package fresnel provides closed-form specular reflection and
// transmission for single interfaces and absorbing-glass-clad interfaces.
// Every function is total: degenerate configurations (grazing incidence,
// total internal reflection, matched indices, zero or infinite slide
// thickness) return their limiting value instead of NaN or Inf.
package fresnel

import (
	"math"
)

// PracticallyInfinite is the optical thickness beyond which a slide or
// slab transmits nothing; the attenuation exponential is skipped entirely
// to avoid underflow noise.
const PracticallyInfinite = 1e6

// CosCritical returns the cosine of the critical angle for light passing
// from index ni to nt, or 0 when no critical angle exists.
func CosCritical(ni, nt float64) float64 {
	ratio := nt / ni
	arg := 1 - ratio*ratio
	if arg <= 0 {
		return 0
	}
	return math.Sqrt(arg)
}

// CosSnell returns the cosine of the refracted angle for incidence cosine
// nui passing from ni to nt, or 0 beyond total internal reflection.
func CosSnell(ni, nui, nt float64) float64 {
	ratio := ni / nt
	arg := 1 - ratio*ratio*(1-nui*nui)
	if arg <= 0 {
		return 0
	}
	return math.Sqrt(arg)
}

// Reflection returns the unpolarized Fresnel reflectance for incidence
// cosine nui at an ni:nt interface. The cosine form avoids trig calls and
// the nui=0 singularity of the angle form. nui=0 with unmatched indices
// returns 1 exactly.
func Reflection(ni, nui, nt float64) float64 {
	if ni == nt {
		return 0
	}
	if nui == 0 {
		return 1
	}
	nut := CosSnell(ni, nui, nt)
	if nut == 0 {
		return 1
	}
	var (
		rs = (ni*nui - nt*nut) / (ni*nui + nt*nut)
		rp = (ni*nut - nt*nui) / (ni*nut + nt*nui)
	)
	return 0.5 * (rs*rs + rp*rp)
}

// Glass returns the reflection from a non-absorbing glass layer between
// media ni and nt, accounting for multiple internal reflections.
func Glass(ni, ng, nt, nui float64) float64 {
	var (
		r1    = Reflection(ni, nui, ng)
		nug   = CosSnell(ni, nui, ng)
		r2    = Reflection(ng, nug, nt)
		numer = r1 + r2 - 2*r1*r2
		denom = 1 - r1*r2
	)
	if numer == denom {
		return 1
	}
	return numer / denom
}

// AbsorbingGlassRT returns the reflection and transmission of a glass
// slide of optical thickness b (measured along the normal) between media
// ni and nt. b=0 reduces to Glass; a slide past PracticallyInfinite or a
// refracted cosine of 0 transmits nothing.
func AbsorbingGlassRT(ni, ng, nt, nui, b float64) (r, t float64) {
	var (
		r1  = Reflection(ni, nui, ng)
		nug = CosSnell(ni, nui, ng)
	)
	if b > PracticallyInfinite || nug == 0 {
		return r1, 0
	}
	var (
		r2    = Reflection(ng, nug, nt)
		beer  = math.Exp(-b / nug)
		beer2 = beer * beer
		denom = 1 - r1*r2*beer2
	)
	if denom == 0 {
		return 1, 0
	}
	r = r1 + (1-r1)*(1-r1)*r2*beer2/denom
	t = (1 - r1) * (1 - r2) * beer / denom
	return
}

// SpecularRT returns the unscattered reflection and transmission of a
// slide/slab/slide sandwich for external incidence cosine nu. flip swaps
// which side the light enters from.
func SpecularRT(nTop, nSlab, nBottom, bSlab, nu, bTop, bBottom float64, flip bool) (r, t float64) {
	if flip {
		nTop, nBottom = nBottom, nTop
		bTop, bBottom = bBottom, bTop
	}
	var (
		nus        = CosSnell(1, nu, nSlab)
		rTop, tTop = AbsorbingGlassRT(1, nTop, nSlab, nu, bTop)
		rBot, tBot = AbsorbingGlassRT(nSlab, nBottom, 1, nus, bBottom)
		beer       float64
	)
	if nus > 0 && bSlab <= PracticallyInfinite {
		beer = math.Exp(-bSlab / nus)
	}
	var (
		beer2 = beer * beer
		denom = 1 - rTop*rBot*beer2
	)
	if denom == 0 {
		return 1, 0
	}
	r = rTop + tTop*tTop*rBot*beer2/denom
	t = tTop * tBot * beer / denom
	return
}
