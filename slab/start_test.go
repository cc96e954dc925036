package slab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartingThickness(t *testing.T) {
	s := NewSample(0.5, 1, 0)
	q, _ := NewQuad(s)
	numin := q.Nu.DataP[0]
	{ // a clear sample starts at zero
		sc := NewSample(0.5, 0, 0)
		assert.Equal(t, 0.0, StartingThickness(sc, q))
	}
	{ // halving stops at the smallest cosine and reaches b exactly on
		// the way back up
		d := StartingThickness(s, q)
		assert.True(t, d <= numin)
		for d < s.BDeltaM() {
			d *= 2
		}
		assert.Equal(t, s.BDeltaM(), d)
	}
	{ // semi-infinite start
		si := NewSample(0.5, math.Inf(1), 0)
		assert.Equal(t, numin/2, StartingThickness(si, q))
	}
}

func TestZeroLayer(t *testing.T) {
	q, _ := NewQuad(NewSample(0.5, 1, 0))
	R, T := ZeroLayer(q)
	n := q.N
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, 0.0, R.DataP[i*n+j])
			if i == j {
				assert.Equal(t, q.EW.DataP[i], T.DataP[i*n+j])
			} else {
				assert.Equal(t, 0.0, T.DataP[i*n+j])
			}
		}
	}
}

func TestThinLayerInit(t *testing.T) {
	{ // for a vanishing layer the generator and diamond forms agree
		s := NewSample(0.9, 1.e-6, 0)
		q, _ := NewQuad(s)
		Ri, Ti := IGI(s, q)
		Rd, Td := Diamond(s, q)
		var (
			n     = q.N
			scale = Ri.Max()
		)
		for i := 0; i < n*n; i++ {
			assert.InDeltaf(t, Ri.DataP[i], Rd.DataP[i], 1.e-3*scale, "R %d", i)
		}
		scale = Ti.Max()
		for i := 0; i < n*n; i++ {
			assert.InDeltaf(t, Ti.DataP[i], Td.DataP[i], 1.e-3*scale, "T %d", i)
		}
	}
	{ // without scattering the diamond layer does not reflect and its
		// transmission is the Pade approximant of Beer attenuation
		s := NewSample(0, 1, 0)
		q, _ := NewQuad(s)
		R, T := Diamond(s, q)
		n := q.N
		d := StartingThickness(s, q)
		for i := 0; i < n*n; i++ {
			assert.InDeltaf(t, 0, R.DataP[i], 1.e-14, "R %d", i)
		}
		for i := 0; i < n; i++ {
			var (
				x    = d / (2 * q.Nu.DataP[i])
				beer = math.Exp(-d / q.Nu.DataP[i])
				got  = T.DataP[i*n+i] * q.TwoNuW.DataP[i]
			)
			assert.InDeltaf(t, (1-x)/(1+x), got, 1.e-12, "direction %d", i)
			assert.InDeltaf(t, beer, got, 0.05, "direction %d", i)
		}
	}
	{ // the dispatcher returns the identity layer for b = 0
		s := NewSample(0.5, 0, 0)
		q, _ := NewQuad(s)
		R, T := ThinnestLayer(s, q)
		Rz, Tz := ZeroLayer(q)
		assert.Equal(t, Rz.DataP, R.DataP)
		assert.Equal(t, Tz.DataP, T.DataP)
	}
}
