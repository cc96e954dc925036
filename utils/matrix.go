package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	DataP    []float64
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
	}
	return
}

// NewIdentity returns the n x n identity.
func NewIdentity(n int) (R Matrix) {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	return NewDiagMatrix(n, ones)
}

// NewDiagMatrix promotes a diagonal, stored as a length-n slice, to a dense
// operator. The diagonal passes through a sparse DIA so the promotion site
// is explicit in the types rather than implied by an elementwise multiply.
func NewDiagMatrix(n int, diag []float64) (R Matrix) {
	if len(diag) != n {
		err := fmt.Errorf("mismatch in allocation: NewDiagMatrix n = %v, len(diag) = %v\n", n, len(diag))
		panic(err)
	}
	d := sparse.NewDIA(n, n, diag)
	R = NewMatrix(n, n)
	R.M.CloneFrom(d)
	R.DataP = R.M.RawMatrix().Data
	return
}

func NewSymTriDiagonal(d0, d1 []float64) (J *mat.SymDense) {
	var (
		n = len(d0)
	)
	J = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		J.SetSym(i, i, d0[i])
		if i < n-1 {
			J.SetSym(i, i+1, d1[i])
		}
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[j*nr+i] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range A.DataP {
		m.DataP[i] += val
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range A.DataP {
		m.DataP[i] -= val
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.checkWritable()
	for i := range m.DataP {
		m.DataP[i] *= a
	}
	return m
}

// AddDiag adds v[i] to element (i,i). Changes receiver
func (m Matrix) AddDiag(v Vector) Matrix {
	var (
		_, nc = m.Dims()
	)
	m.checkWritable()
	for i, val := range v.DataP {
		m.DataP[i*nc+i] += val
	}
	return m
}

// ScaleCols multiplies column j by v[j]. Changes receiver
func (m Matrix) ScaleCols(v Vector) Matrix {
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			m.DataP[i*nc+j] *= v.DataP[j]
		}
	}
	return m
}

// LUSolve solves m*X = B for X. Does not change receiver
func (m Matrix) LUSolve(B Matrix) (X Matrix) {
	var (
		lu     mat.LU
		nr, nc = B.Dims()
	)
	lu.Factorize(m.M)
	X = NewMatrix(nr, nc)
	if err := lu.SolveTo(X.M, false, B.M); err != nil {
		panic(fmt.Errorf("unable to solve linear system: %v", err))
	}
	return
}

// LUSolveRight solves X*m = B for X via the transposed system. Does not
// change receiver
func (m Matrix) LUSolveRight(B Matrix) (X Matrix) {
	var (
		lu     mat.LU
		nr, nc = B.Dims()
	)
	lu.Factorize(m.M)
	Xt := NewMatrix(nc, nr)
	if err := lu.SolveTo(Xt.M, true, B.Transpose().M); err != nil {
		panic(fmt.Errorf("unable to solve linear system: %v", err))
	}
	X = Xt.Transpose()
	return
}

func (m Matrix) Max() (max float64) {
	max = m.DataP[0]
	for _, val := range m.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
