package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/opticslab/goad/slab"
)

// Parameters obtained from the YAML input file. The three optical
// properties accept lists; the Cartesian product of the lists defines a
// sweep of independent forward evaluations.
type InputParameters struct {
	Title            string    `yaml:"Title"`
	Albedo           []float64 `yaml:"Albedo"`
	OpticalDepth     []float64 `yaml:"OpticalDepth"`
	Anisotropy       []float64 `yaml:"Anisotropy"`
	SlabIndex        float64   `yaml:"SlabIndex"`
	TopSlideIndex    float64   `yaml:"TopSlideIndex"`
	BottomSlideIndex float64   `yaml:"BottomSlideIndex"`
	TopSlideDepth    float64   `yaml:"TopSlideDepth"`
	BottomSlideDepth float64   `yaml:"BottomSlideDepth"`
	QuadraturePoints int       `yaml:"QuadraturePoints"`
	Workers          int       `yaml:"Workers"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%v\t\t= Albedo\n", ip.Albedo)
	fmt.Printf("%v\t\t= OpticalDepth\n", ip.OpticalDepth)
	fmt.Printf("%v\t\t= Anisotropy\n", ip.Anisotropy)
	fmt.Printf("%8.5f\t\t= SlabIndex\n", ip.SlabIndex)
	fmt.Printf("%8.5f\t\t= TopSlideIndex\n", ip.TopSlideIndex)
	fmt.Printf("%8.5f\t\t= BottomSlideIndex\n", ip.BottomSlideIndex)
	fmt.Printf("[%d]\t\t\t= QuadraturePoints\n", ip.QuadraturePoints)
}

// Samples expands the parameter lists into the sweep of slab
// descriptors. Unset fields fall back to the bare-slab defaults.
func (ip *InputParameters) Samples() (samples []slab.Sample) {
	var (
		as = orDefault(ip.Albedo, 0)
		bs = orDefault(ip.OpticalDepth, 1)
		gs = orDefault(ip.Anisotropy, 0)
	)
	for _, a := range as {
		for _, b := range bs {
			for _, g := range gs {
				s := slab.NewSample(a, b, g)
				if ip.SlabIndex != 0 {
					s.N = ip.SlabIndex
				}
				if ip.TopSlideIndex != 0 {
					s.NAbove = ip.TopSlideIndex
				}
				if ip.BottomSlideIndex != 0 {
					s.NBelow = ip.BottomSlideIndex
				}
				s.BAbove = ip.TopSlideDepth
				s.BBelow = ip.BottomSlideDepth
				if ip.QuadraturePoints != 0 {
					s.QuadPts = ip.QuadraturePoints
				}
				samples = append(samples, s)
			}
		}
	}
	return
}

func orDefault(vals []float64, def float64) []float64 {
	if len(vals) == 0 {
		return []float64{def}
	}
	return vals
}
