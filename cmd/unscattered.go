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
	"os"

	"github.com/opticslab/goad/slab"
	"github.com/spf13/cobra"
)

// unscatteredCmd computes the specular, never-scattered part of the
// reflection and transmission
var unscatteredCmd = &cobra.Command{
	Use:   "unscattered",
	Short: "Compute the unscattered reflection and transmission of a slab",
	Long: `
Computes the reflection and transmission carried by light that traverses
the slab and slides without a single scattering event.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := sampleFromFlags(cmd)
		if err := s.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(s.String())
		ur1, ut1, uru, utu, err := slab.ComputeUnscatteredRT(s)
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

func init() {
	rootCmd.AddCommand(unscatteredCmd)
	addSampleFlags(unscatteredCmd)
}
