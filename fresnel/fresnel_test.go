package fresnel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnell(t *testing.T) {
	{ // critical cosine only exists going from dense to rare
		assert.Equal(t, 0.0, CosCritical(1, 1.5))
		nuc := CosCritical(1.5, 1)
		assert.InDeltaf(t, math.Sqrt(1-1/2.25), nuc, 1.e-14, "")
		// at the critical direction the refracted ray grazes
		assert.InDeltaf(t, 0, CosSnell(1.5, nuc, 1), 1.e-7, "")
	}
	{ // matched media pass straight through
		assert.Equal(t, 0.5, CosSnell(1.4, 0.5, 1.4))
	}
	{ // beyond total internal reflection the refracted cosine clamps to 0
		assert.Equal(t, 0.0, CosSnell(1.5, 0.1, 1))
	}
}

func TestReflection(t *testing.T) {
	{ // normal incidence reduces to ((n1-n2)/(n1+n2))^2
		assert.InDeltaf(t, 0.04, Reflection(1, 1, 1.5), 1.e-14, "")
		assert.InDeltaf(t, 0.04, Reflection(1.5, 1, 1), 1.e-14, "")
	}
	{ // limiting cases
		assert.Equal(t, 0.0, Reflection(1.4, 0.3, 1.4))
		assert.Equal(t, 1.0, Reflection(1, 0, 1.5))
		assert.Equal(t, 1.0, Reflection(1.5, 0.1, 1)) // total internal reflection
	}
	{ // total over the whole cosine range, both directions
		for _, pair := range [][2]float64{{1, 1.5}, {1.5, 1}, {1.3, 1.3}} {
			for nu := 0.0; nu <= 1; nu += 1.0 / 64.0 {
				r := Reflection(pair[0], nu, pair[1])
				assert.False(t, math.IsNaN(r) || math.IsInf(r, 0))
				assert.True(t, r >= 0 && r <= 1)
			}
		}
	}
}

func TestGlass(t *testing.T) {
	{ // no index step means no reflection
		assert.Equal(t, 0.0, Glass(1, 1, 1, 0.7))
	}
	{ // a slide between matched media doubles up the single-surface value
		r1 := Reflection(1, 1, 1.5)
		want := 2 * r1 / (1 + r1)
		assert.InDeltaf(t, want, Glass(1, 1.5, 1, 1), 1.e-14, "")
	}
	{ // grazing incidence is fully reflecting
		assert.Equal(t, 1.0, Glass(1, 1.5, 1.4, 0))
	}
	{ // reciprocity: the same slide seen from the far side at the
		// Snell-transformed angle reflects identically
		for nu := 0.1; nu < 1; nu += 0.1 {
			var (
				fwd = Glass(1, 1.5, 1.4, nu)
				rev = Glass(1.4, 1.5, 1, CosSnell(1, nu, 1.4))
			)
			assert.InDeltaf(t, fwd, rev, 1.e-13, "nu %g", nu)
		}
	}
}

func TestAbsorbingGlassRT(t *testing.T) {
	{ // a clear slide reproduces Glass and conserves energy
		for nu := 0.05; nu <= 1; nu += 0.05 {
			r, tr := AbsorbingGlassRT(1, 1.5, 1.4, nu, 0)
			assert.InDeltaf(t, Glass(1, 1.5, 1.4, nu), r, 1.e-13, "nu %g", nu)
			assert.InDeltaf(t, 1, r+tr, 1.e-13, "nu %g", nu)
		}
	}
	{ // an opaque slide reflects only the front surface
		r, tr := AbsorbingGlassRT(1, 1.5, 1.4, 0.8, 1.e7)
		assert.Equal(t, Reflection(1, 0.8, 1.5), r)
		assert.Equal(t, 0.0, tr)
	}
	{ // beyond total internal reflection nothing enters the slide
		r, tr := AbsorbingGlassRT(1.5, 1, 1, 0.2, 1)
		assert.Equal(t, 1.0, r)
		assert.Equal(t, 0.0, tr)
	}
	{ // absorption reduces both r and t monotonically in b
		rPrev, tPrev := AbsorbingGlassRT(1, 1.5, 1, 1, 0)
		for _, b := range []float64{0.1, 0.5, 1, 5} {
			r, tr := AbsorbingGlassRT(1, 1.5, 1, 1, b)
			assert.True(t, r <= rPrev+1.e-14)
			assert.True(t, tr < tPrev)
			rPrev, tPrev = r, tr
		}
	}
}

func TestSpecularRT(t *testing.T) {
	{ // bare matched slab attenuates by Beer's law and reflects nothing
		r, tr := SpecularRT(1, 1, 1, 2, 1, 0, 0, false)
		assert.Equal(t, 0.0, r)
		assert.InDeltaf(t, math.Exp(-2), tr, 1.e-14, "")
	}
	{ // clear slab in air at normal incidence: two-surface glass formula
		r, tr := SpecularRT(1, 1.5, 1, 0, 1, 0, 0, false)
		assert.InDeltaf(t, Glass(1, 1.5, 1, 1), r, 1.e-13, "")
		assert.InDeltaf(t, 1, r+tr, 1.e-13, "")
	}
	{ // flip is exactly the swapped-slide evaluation
		rB, tB := SpecularRT(1.5, 1.4, 1.6, 1, 0.9, 0.2, 0.7, true)
		rS, tS := SpecularRT(1.6, 1.4, 1.5, 1, 0.9, 0.7, 0.2, false)
		assert.Equal(t, rS, rB)
		assert.Equal(t, tS, tB)
	}
	{ // with clear slides the transmission is reciprocal
		_, tF := SpecularRT(1.5, 1.4, 1.6, 1, 0.9, 0, 0, false)
		_, tB := SpecularRT(1.5, 1.4, 1.6, 1, 0.9, 0, 0, true)
		assert.InDeltaf(t, tF, tB, 1.e-13, "")
	}
	{ // a practically infinite slab transmits nothing
		_, tr := SpecularRT(1, 1.4, 1, 2.e6, 1, 0, 0, false)
		assert.Equal(t, 0.0, tr)
	}
}
