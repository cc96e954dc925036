package slab

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/opticslab/goad/utils"
)

// HGLegendre returns the forward (hp) and backward (hm) scattering
// redistribution matrices for a Henyey-Greenstein phase function using
// the delta-M truncated Legendre expansion: the k-th moment is
// (2k+1)(g^k - g^n)/(1 - g^n) for k = 1..n-1. Both matrices are
// symmetric; only the lower triangle is computed and then mirrored.
func HGLegendre(s Sample, q *Quad) (hp, hm utils.Matrix) {
	var (
		n = q.N
	)
	hp = utils.NewMatrix(n, n)
	hm = utils.NewMatrix(n, n)
	for i := range hp.DataP {
		hp.DataP[i] = 1
		hm.DataP[i] = 1
	}
	if s.G == 0 {
		return
	}

	var (
		gn  = utils.POW(s.G, n)
		chi = make([]float64, n)
		pk  = legendreTable(q.Nu, n-1)
	)
	gk := 1.0
	for k := 1; k < n; k++ {
		gk *= s.G
		chi[k] = (2*float64(k) + 1) * (gk - gn) / (1 - gn)
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var sp, sm float64
			sign := -1.0
			for k := 1; k < n; k++ {
				c := chi[k] * pk[k][i] * pk[k][j]
				sp += c
				sm += sign * c
				sign = -sign
			}
			hp.DataP[i*n+j] += sp
			hm.DataP[i*n+j] += sm
			if i != j {
				hp.DataP[j*n+i] = hp.DataP[i*n+j]
				hm.DataP[j*n+i] = hm.DataP[i*n+j]
			}
		}
	}
	return
}

// HGElliptic returns the same redistribution matrices evaluated exactly,
// without the delta-M truncation, via the complete elliptic integral of
// the second kind. It is the validation oracle for HGLegendre and is not
// performance critical.
func HGElliptic(s Sample, q *Quad) (hp, hm utils.Matrix) {
	var (
		n  = q.N
		g  = s.G
		g2 = g * g
	)
	hp = utils.NewMatrix(n, n)
	hm = utils.NewMatrix(n, n)
	if g == 0 {
		for i := range hp.DataP {
			hp.DataP[i] = 1
			hm.DataP[i] = 1
		}
		return
	}
	si := make([]float64, n)
	for i, nu := range q.Nu.DataP {
		si[i] = math.Sqrt(1 - nu*nu)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var (
				prod  = q.Nu.DataP[i] * q.Nu.DataP[j]
				gamma = math.Abs(2 * g * si[i] * si[j])
			)
			hp.DataP[i*n+j] = hgAzimuthal(g2, 1+g2-2*g*prod, gamma)
			hm.DataP[i*n+j] = hgAzimuthal(g2, 1+g2+2*g*prod, gamma)
			if i != j {
				hp.DataP[j*n+i] = hp.DataP[i*n+j]
				hm.DataP[j*n+i] = hm.DataP[i*n+j]
			}
		}
	}
	return
}

// hgAzimuthal evaluates (1/pi) Int_0^pi (1-g^2)/(alpha - gamma cos
// phi)^{3/2} dphi, the azimuthal average of the Henyey-Greenstein phase
// function between two cones.
func hgAzimuthal(g2, alpha, gamma float64) float64 {
	e := mathext.CompleteE(2 * gamma / (alpha + gamma))
	return 2 * (1 - g2) * e / (math.Pi * (alpha - gamma) * math.Sqrt(alpha+gamma))
}

// legendreTable evaluates P_k at each abscissa for k = 0..kmax.
func legendreTable(nu utils.Vector, kmax int) [][]float64 {
	var (
		n  = nu.Len()
		pk = make([][]float64, kmax+1)
	)
	for k := range pk {
		pk[k] = make([]float64, n)
	}
	for i, x := range nu.DataP {
		pk[0][i] = 1
		if kmax >= 1 {
			pk[1][i] = x
		}
		for k := 1; k < kmax; k++ {
			fk := float64(k)
			pk[k+1][i] = ((2*fk+1)*x*pk[k][i] - fk*pk[k-1][i]) / (fk + 1)
		}
	}
	return pk
}
