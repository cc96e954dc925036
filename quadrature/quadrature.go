// Package quadrature generates Gauss, Radau and Lobatto abscissas and
// weights on an arbitrary interval [a,b]. Abscissas always ascend, so
// index 0 is nearest the lower interval end and index n-1 the upper.
package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/opticslab/goad/utils"
)

// Gauss returns the n-point Gauss-Legendre rule on [a,b], exact for
// polynomials through degree 2n-1. Neither endpoint is included. Nodes
// are eigenvalues of the symmetric tridiagonal Jacobi matrix, weights
// come from the first components of its eigenvectors.
func Gauss(n int, a, b float64) (X, W utils.Vector) {
	var (
		x, w = gaussRef(n)
	)
	rescale(x, w, a, b)
	X = utils.NewVector(n, x)
	W = utils.NewVector(n, w)
	return
}

// Radau returns the n-point Gauss-Radau rule on [a,b] with the upper
// endpoint b included exactly, exact through degree 2n-2.
func Radau(n int, a, b float64) (X, W utils.Vector) {
	var (
		x = make([]float64, n)
		w = make([]float64, n)
	)
	if n == 1 {
		x[0] = 1
		w[0] = 2
	} else {
		// Left-endpoint rule on [-1,1]: interior nodes are the roots of
		// (P_{n-1}+P_n)/(1+x), bracketed by consecutive Gauss abscissas
		// of degree n-1.
		xg, _ := gaussRef(n - 1)
		f := func(t float64) float64 {
			return (legendreP(n-1, t) + legendreP(n, t)) / (1 + t)
		}
		fn := float64(n)
		x[0] = -1
		w[0] = 2 / (fn * fn)
		for i := 1; i < n; i++ {
			lo := xg[i-1]
			hi := 1.0
			if i < n-1 {
				hi = xg[i]
			}
			r := bisect(f, lo, hi)
			p := legendreP(n-1, r)
			x[i] = r
			w[i] = (1 - r) / (fn * fn * p * p)
		}
		mirror(x, w)
	}
	rescale(x, w, a, b)
	X = utils.NewVector(n, x)
	W = utils.NewVector(n, w)
	return
}

// Lobatto returns the n-point Gauss-Lobatto rule on [a,b] with both
// endpoints included exactly, exact through degree 2n-3.
func Lobatto(n int, a, b float64) (X, W utils.Vector) {
	var (
		x = make([]float64, n)
		w = make([]float64, n)
	)
	if n == 1 {
		x[0] = 1
		w[0] = 2
	} else {
		// Interior nodes are the roots of P'_{n-1}, bracketed by
		// consecutive Gauss abscissas of degree n-1.
		xg, _ := gaussRef(n - 1)
		f := func(t float64) float64 {
			return legendrePDeriv(n-1, t)
		}
		c := 2 / (float64(n) * float64(n-1))
		x[0], x[n-1] = -1, 1
		w[0], w[n-1] = c, c
		for i := 1; i < n-1; i++ {
			r := bisect(f, xg[i-1], xg[i])
			p := legendreP(n-1, r)
			x[i] = r
			w[i] = c / (p * p)
		}
	}
	rescale(x, w, a, b)
	X = utils.NewVector(n, x)
	W = utils.NewVector(n, w)
	return
}

// gaussRef computes the Gauss-Legendre rule on the reference interval
// [-1,1] by the Golub-Welsch eigensolve. Eigenvalues ascend.
func gaussRef(n int) (x, w []float64) {
	if n == 1 {
		return []float64{0}, []float64{2}
	}
	d0 := make([]float64, n)
	d1 := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		k := float64(i + 1)
		d1[i] = k / math.Sqrt(4*k*k-1)
	}
	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(x)

	VVr := mat.NewDense(n, n, nil)
	eig.VectorsTo(VVr)
	w = make([]float64, n)
	for i, v0 := range VVr.RawRowView(0) {
		w[i] = 2 * v0 * v0
	}
	return
}

// rescale maps a rule from [-1,1] onto [a,b] in place.
func rescale(x, w []float64, a, b float64) {
	var (
		h = 0.5 * (b - a)
	)
	for i := range x {
		x[i] = a + (x[i]+1)*h
		w[i] *= h
	}
}

// mirror flips a left-endpoint rule into a right-endpoint rule in place.
func mirror(x, w []float64) {
	var (
		n = len(x)
	)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = -x[j], -x[i]
		w[i], w[j] = w[j], w[i]
	}
	if n%2 == 1 {
		x[n/2] = -x[n/2]
	}
}

// legendreP evaluates the Legendre polynomial of degree n at t by the
// three-term recurrence.
func legendreP(n int, t float64) float64 {
	if n == 0 {
		return 1
	}
	var (
		pm = 1.0
		p  = t
	)
	for k := 1; k < n; k++ {
		fk := float64(k)
		pp := ((2*fk+1)*t*p - fk*pm) / (fk + 1)
		pm, p = p, pp
	}
	return p
}

// legendrePDeriv evaluates d/dt P_n(t) for |t| != 1.
func legendrePDeriv(n int, t float64) float64 {
	if n == 0 {
		return 0
	}
	return float64(n) * (t*legendreP(n, t) - legendreP(n-1, t)) / (t*t - 1)
}

// bisect finds the root of f in (lo,hi). The brackets used here always
// straddle a sign change.
func bisect(f func(float64) float64, lo, hi float64) float64 {
	var (
		flo = f(lo)
	)
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		if mid == lo || mid == hi {
			return mid
		}
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if (flo < 0) == (fm < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
