package slab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference values follow van de Hulst's tables for isotropic scattering
// in a matched slab.

func TestComputeRT(t *testing.T) {
	{ // a = 0.8, b = 1: moderate albedo, moderate thickness
		s := NewSample(0.8, 1, 0)
		s.QuadPts = 4
		ur1, ut1, uru, utu, err := ComputeRT(s)
		assert.NoError(t, err)
		assert.InDeltaf(t, 0.21085, ur1, 1.e-4, "UR1")
		assert.InDeltaf(t, 0.54140, ut1, 1.e-4, "UT1")
		assert.InDeltaf(t, 0.28015, uru, 1.e-4, "URU")
		assert.InDeltaf(t, 0.41624, utu, 1.e-4, "UTU")
	}
	{ // a = 0.8, thick slab: effectively semi-infinite
		s := NewSample(0.8, 1.e5, 0)
		s.QuadPts = 4
		ur1, ut1, uru, utu, err := ComputeRT(s)
		assert.NoError(t, err)
		assert.InDeltaf(t, 0.28525, ur1, 1.e-4, "UR1")
		assert.InDeltaf(t, 0.34187, uru, 1.e-4, "URU")
		assert.InDeltaf(t, 0, ut1, 1.e-6, "UT1")
		assert.InDeltaf(t, 0, utu, 1.e-6, "UTU")
	}
	{ // a clear matched slab of zero thickness passes everything
		s := NewSample(0.5, 0, 0)
		ur1, ut1, uru, utu, err := ComputeRT(s)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, ur1)
		assert.InDeltaf(t, 1, ut1, 1.e-13, "UT1")
		assert.Equal(t, 0.0, uru)
		assert.InDeltaf(t, 1, utu, 1.e-13, "UTU")
	}
	{ // a pure absorber transmits Beer's law and reflects nothing
		s := NewSample(0, 1, 0)
		ur1, ut1, _, _, err := ComputeRT(s)
		assert.NoError(t, err)
		assert.InDeltaf(t, 0, ur1, 1.e-12, "UR1")
		assert.InDeltaf(t, math.Exp(-1), ut1, 1.e-3, "UT1")
	}
	{ // an opaque absorber transmits nothing regardless of boundaries
		s := NewSample(0, math.Inf(1), 0)
		s.N = 1.4
		s.NAbove = 1.5
		s.NBelow = 1.5
		_, ut1, _, utu, err := ComputeRT(s)
		assert.NoError(t, err)
		assert.InDeltaf(t, 0, ut1, 1.e-6, "UT1")
		assert.InDeltaf(t, 0, utu, 1.e-6, "UTU")
	}
	{ // a conservative semi-infinite slab reflects everything
		s := NewSample(1, math.Inf(1), 0)
		ur1, ut1, uru, _, err := ComputeRT(s)
		assert.NoError(t, err)
		assert.InDeltaf(t, 1, ur1, 1.e-3, "UR1")
		assert.InDeltaf(t, 1, uru, 1.e-3, "URU")
		assert.InDeltaf(t, 0, ut1, 1.e-4, "UT1")
	}
	{ // energy stays bounded with mismatched boundaries and slides
		s := NewSample(0.9, 2, 0.7)
		s.N = 1.4
		s.NAbove = 1.5
		s.NBelow = 1.5
		ur1, ut1, uru, utu, err := ComputeRT(s)
		assert.NoError(t, err)
		for _, v := range []float64{ur1, ut1, uru, utu} {
			assert.True(t, v >= 0 && v <= 1)
		}
		assert.True(t, ur1+ut1 < 1)
		assert.True(t, uru+utu < 1)
	}
	{ // anisotropy pushes light forward
		var (
			iso = NewSample(0.9, 1, 0)
			fwd = NewSample(0.9, 1, 0.8)
		)
		_, utI, _, _, err := ComputeRT(iso)
		assert.NoError(t, err)
		_, utF, _, _, err := ComputeRT(fwd)
		assert.NoError(t, err)
		assert.True(t, utF > utI)
	}
	{ // invalid samples surface the validation error
		s := NewSample(1.5, 1, 0)
		_, _, _, _, err := ComputeRT(s)
		assert.Error(t, err)
	}
}

func TestComputeRTMatrices(t *testing.T) {
	s := NewSample(0.8, 1, 0)
	R03, R30, T03, T30, err := ComputeRTMatrices(s)
	assert.NoError(t, err)
	q, _ := NewQuad(s)
	// the scalars are the cone-integrated operators
	ur1, ut1, _, _, _ := ComputeRT(s)
	assert.InDeltaf(t, ur1, flux1(q, R03), 1.e-13, "UR1")
	assert.InDeltaf(t, ut1, flux1(q, T03), 1.e-13, "UT1")
	// a matched bare slab is top-bottom symmetric
	assert.Equal(t, R03.DataP, R30.DataP)
	assert.Equal(t, T03.DataP, T30.DataP)
}

func TestComputeUnscatteredRT(t *testing.T) {
	{ // bare matched slab: Beer attenuation, no reflection
		s := NewSample(0.5, 2, 0)
		ur1, ut1, _, utu, err := ComputeUnscatteredRT(s)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, ur1)
		assert.InDeltaf(t, math.Exp(-2), ut1, 1.e-13, "UT1")
		assert.True(t, utu < ut1) // oblique paths are longer
	}
	{ // clear slab in glass slides: the specular stack at b=0
		s := NewSample(0.5, 0, 0)
		s.N = 1.5
		s.NAbove = 1.5
		s.NBelow = 1.5
		ur1, ut1, uru, utu, err := ComputeUnscatteredRT(s)
		assert.NoError(t, err)
		assert.InDeltaf(t, 1, ur1+ut1, 1.e-12, "collimated")
		assert.InDeltaf(t, 1, uru+utu, 1.e-12, "diffuse")
		assert.True(t, ur1 > 0.07 && ur1 < 0.08)
	}
}

func TestMapRT(t *testing.T) {
	var samples []Sample
	for _, a := range []float64{0.2, 0.5, 0.9} {
		for _, b := range []float64{0.5, 2} {
			samples = append(samples, NewSample(a, b, 0.5))
		}
	}
	results := MapRT(samples, 3)
	assert.Equal(t, len(samples), len(results))
	for i, res := range results {
		assert.Equal(t, samples[i], res.Sample)
		assert.NoError(t, res.Err)
		ur1, ut1, uru, utu, err := ComputeRT(samples[i])
		assert.NoError(t, err)
		assert.Equal(t, ur1, res.UR1)
		assert.Equal(t, ut1, res.UT1)
		assert.Equal(t, uru, res.URU)
		assert.Equal(t, utu, res.UTU)
	}
}
