/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/opticslab/goad/InputParameters"
	"github.com/opticslab/goad/slab"
	"github.com/spf13/cobra"
)

// rtCmd computes total reflection and transmission for one sample or a
// YAML-driven parameter sweep
var rtCmd = &cobra.Command{
	Use:   "rt",
	Short: "Compute total reflection and transmission of a slab",
	Long: `
Computes UR1, UT1, URU and UTU for a single sample described by flags, or
for a Cartesian sweep of samples described by a YAML input file.`,
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, _ := cmd.Flags().GetString("input")
		if inputFile != "" {
			runSweep(cmd, inputFile)
			return
		}
		s := sampleFromFlags(cmd)
		if err := s.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(s.String())
		ur1, ut1, uru, utu, err := slab.ComputeRT(s)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("UR1 = %8.5f\n", ur1)
		fmt.Printf("UT1 = %8.5f\n", ut1)
		fmt.Printf("URU = %8.5f\n", uru)
		fmt.Printf("UTU = %8.5f\n", utu)
	},
}

func sampleFromFlags(cmd *cobra.Command) slab.Sample {
	a, _ := cmd.Flags().GetFloat64("albedo")
	b, _ := cmd.Flags().GetFloat64("depth")
	g, _ := cmd.Flags().GetFloat64("anisotropy")
	s := slab.NewSample(a, b, g)
	s.N, _ = cmd.Flags().GetFloat64("index")
	s.NAbove, _ = cmd.Flags().GetFloat64("topIndex")
	s.NBelow, _ = cmd.Flags().GetFloat64("bottomIndex")
	s.BAbove, _ = cmd.Flags().GetFloat64("topDepth")
	s.BBelow, _ = cmd.Flags().GetFloat64("bottomDepth")
	s.QuadPts, _ = cmd.Flags().GetInt("quadPts")
	return s
}

func runSweep(cmd *cobra.Command, inputFile string) {
	data, err := ioutil.ReadFile(inputFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	var ip InputParameters.InputParameters
	if err = ip.Parse(data); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	ip.Print()
	samples := ip.Samples()
	workers, _ := cmd.Flags().GetInt("workers")
	if ip.Workers != 0 {
		workers = ip.Workers
	}
	results := slab.MapRT(samples, workers)
	fmt.Printf("%8s %8s %8s %10s %10s %10s %10s\n",
		"a", "b", "g", "UR1", "UT1", "URU", "UTU")
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("%8.4f %8.4f %8.4f  error: %s\n",
				res.Sample.A, res.Sample.B, res.Sample.G, res.Err)
			continue
		}
		fmt.Printf("%8.4f %8.4f %8.4f %10.5f %10.5f %10.5f %10.5f\n",
			res.Sample.A, res.Sample.B, res.Sample.G,
			res.UR1, res.UT1, res.URU, res.UTU)
	}
}

func init() {
	rootCmd.AddCommand(rtCmd)
	addSampleFlags(rtCmd)
	rtCmd.Flags().StringP("input", "i", "", "YAML input file describing a parameter sweep")
	rtCmd.Flags().IntP("workers", "w", 0, "number of parallel workers for sweeps, 0 = NumCPU")
}

func addSampleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("albedo", "a", 0, "single scattering albedo of the slab")
	cmd.Flags().Float64P("depth", "b", 1, "optical depth of the slab")
	cmd.Flags().Float64P("anisotropy", "g", 0, "Henyey-Greenstein anisotropy of the slab")
	cmd.Flags().Float64P("index", "n", 1, "refractive index of the slab")
	cmd.Flags().Float64("topIndex", 1, "refractive index of the top slide")
	cmd.Flags().Float64("bottomIndex", 1, "refractive index of the bottom slide")
	cmd.Flags().Float64("topDepth", 0, "optical depth of the top slide")
	cmd.Flags().Float64("bottomDepth", 0, "optical depth of the bottom slide")
	cmd.Flags().IntP("quadPts", "q", 16, "number of quadrature points, a multiple of 4")
}
