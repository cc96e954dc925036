package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		V:     v,
		DataP: v.RawVector().Data,
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)    { return v.V.Dims() }
func (v Vector) At(i, j int) float64 { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix       { return v.V.T() }
func (v Vector) Len() int            { return v.V.Len() }

// Chainable (extended) methods
func (v Vector) Copy() (R Vector) {
	data := make([]float64, v.Len())
	copy(data, v.DataP)
	return NewVector(v.Len(), data)
}

func (v Vector) Scale(a float64) Vector {
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v Vector) POW(p int) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = POW(val, p)
	}
	return v
}

func (v Vector) Min() (min float64) {
	min = v.DataP[0]
	for _, val := range v.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.DataP {
		sum += val
	}
	return
}

// Concat returns the concatenation of v and a. Does not change receiver
func (v Vector) Concat(a Vector) (R Vector) {
	var (
		n  = v.Len() + a.Len()
		rD = make([]float64, n)
	)
	copy(rD, v.DataP)
	copy(rD[v.Len():], a.DataP)
	R = NewVector(n, rD)
	return
}

// POW raises x to an integer power by binary squaring, deferring to
// math.Pow past the small exponents found in the hot loops.
func POW(x float64, p int) (y float64) {
	if p < 0 {
		return 1 / POW(x, -p)
	}
	if p > 8 {
		return math.Pow(x, float64(p))
	}
	y = 1
	for ; p > 0; p >>= 1 {
		if p&1 == 1 {
			y *= x
		}
		x *= x
	}
	return
}
