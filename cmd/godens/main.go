/*
 * main.go, part of godensity.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * godensity is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//godens is a one-shot analysis tool over volumetric DFT output: it samples
//cubes of an electrostatic potential grid, sweeps cube sizes to find a
//plateau, averages over planes, and combines a vacuum potential with band
//extrema into ionisation potentials.
package main

import (
	"fmt"
	"log"
	"os"

	density "github.com/rmera/godensity"
	"github.com/rmera/godensity/densplot"
	"github.com/rmera/godensity/vasp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "godens",
		Short: "Analysis of volumetric DFT output",
		Long: `godens samples periodic volumetric data from plane-wave DFT
calculations: cube averages of the electrostatic potential, convergence
sweeps to locate vacuum plateaus (e.g. pore centers), planar averages, and
ionisation potentials from a sampled vacuum level plus band extrema.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./godens.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		sampleCmd(),
		sweepCmd(),
		profileCmd(),
		ipCmd(),
	)

	cobra.OnInitialize(initConfig)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("godens")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

//progress returns a reader progress callback, or nil when not verbose.
func progress() vasp.ProgressFunc {
	if !verbose {
		return nil
	}
	return func(read, total int) {
		log.Printf("read %d of %d grid points", read, total)
	}
}

//gridFlags registers the flags shared by every subcommand that loads a grid.
func gridFlags(cmd *cobra.Command) {
	cmd.Flags().String("grid", "", "volumetric file (LOCPOT-type, optionally .gz/.zst)")
	cmd.Flags().Bool("charge", false, "treat the file as a CHGCAR (volume-scaled charge)")
	cmd.Flags().Float64Slice("origin", []float64{0, 0, 0}, "fractional coordinates of the sampling origin")
}

//loadGrid reads the volumetric file named by the --grid flag, falling back
//to the "grid" key of the config file.
func loadGrid(cmd *cobra.Command) (*density.ScalarGrid, *density.Lattice, error) {
	name, _ := cmd.Flags().GetString("grid")
	if name == "" {
		name = viper.GetString("grid")
	}
	if name == "" {
		return nil, nil, fmt.Errorf("no volumetric file given (--grid flag or \"grid\" config key)")
	}
	charge, _ := cmd.Flags().GetBool("charge")
	if charge {
		return vasp.ChargeRead(name, progress())
	}
	return vasp.PotentialRead(name, progress())
}

func origin(cmd *cobra.Command) ([3]float64, error) {
	o, _ := cmd.Flags().GetFloat64Slice("origin")
	if len(o) != 3 {
		return [3]float64{}, fmt.Errorf("--origin needs exactly 3 fractional coordinates, got %d", len(o))
	}
	return [3]float64{o[0], o[1], o[2]}, nil
}

func sampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Average the field over one cube of grid points",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, _, err := loadGrid(cmd)
			if err != nil {
				return err
			}
			o, err := origin(cmd)
			if err != nil {
				return err
			}
			size, _ := cmd.Flags().GetInt("size")
			cpus, _ := cmd.Flags().GetInt("cpus")
			r := density.Cube(o[0], o[1], o[2], size)
			var res *density.SampleResult
			if cpus > 1 {
				res, err = grid.CubeSampleConc(r, cpus)
			} else {
				res, err = grid.CubeSample(r)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Cube of %d^3 points at (%.4f %.4f %.4f):\nMean:     %.6f\nVariance: %.6f\n", size, o[0], o[1], o[2], res.Mean, res.Variance)
			return nil
		},
	}
	gridFlags(cmd)
	cmd.Flags().Int("size", 1, "cube edge, in grid points")
	cmd.Flags().Int("cpus", 1, "CPUs for the concurrent sampler")
	return cmd
}

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sample cubes of increasing size from a fixed origin",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, _, err := loadGrid(cmd)
			if err != nil {
				return err
			}
			o, err := origin(cmd)
			if err != nil {
				return err
			}
			sizes, _ := cmd.Flags().GetIntSlice("sizes")
			maxvar, _ := cmd.Flags().GetFloat64("maxvar")
			var points []density.SweepPoint
			if maxvar > 0 {
				points, err = grid.SweepUntil(o, [3]int{}, sizes, maxvar)
			} else {
				points, err = grid.Sweep(o, [3]int{}, sizes)
			}
			if err != nil {
				return err
			}
			fmt.Print(density.SweepTable(points))
			if plotname, _ := cmd.Flags().GetString("plot"); plotname != "" {
				return densplot.Convergence(points, "Cube convergence", plotname)
			}
			return nil
		},
	}
	gridFlags(cmd)
	cmd.Flags().IntSlice("sizes", []int{1, 10, 20, 40, 60, 80, 100}, "cube edges to sweep, in grid points")
	cmd.Flags().Float64("maxvar", 0, "stop once the variance exceeds this (0 sweeps all sizes)")
	cmd.Flags().String("plot", "", "save a convergence plot as this name (.png appended)")
	return cmd
}

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Average the field over planes perpendicular to an axis",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, lat, err := loadGrid(cmd)
			if err != nil {
				return err
			}
			axis, _ := cmd.Flags().GetInt("axis")
			avg, err := grid.PlanarAverage(axis)
			if err != nil {
				return err
			}
			nx, ny, nz := grid.Dims()
			res, err := lat.Resolution(nx, ny, nz)
			if err != nil {
				return err
			}
			for i, v := range avg {
				fmt.Printf("%10.4f %14.6f\n", float64(i)*res[axis], v)
			}
			if plotname, _ := cmd.Flags().GetString("plot"); plotname != "" {
				return densplot.Profile(avg, res[axis], "Planar average", plotname)
			}
			return nil
		},
	}
	gridFlags(cmd)
	cmd.Flags().Int("axis", 2, "lattice axis (0, 1 or 2) normal to the planes")
	cmd.Flags().String("plot", "", "save a profile plot as this name (.png appended)")
	return cmd
}

func ipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ip",
		Short: "Ionisation potential from a sampled vacuum level and band extrema",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, _, err := loadGrid(cmd)
			if err != nil {
				return err
			}
			o, err := origin(cmd)
			if err != nil {
				return err
			}
			size, _ := cmd.Flags().GetInt("size")
			res, err := grid.CubeSample(density.Cube(o[0], o[1], o[2], size))
			if err != nil {
				return err
			}
			outcar, _ := cmd.Flags().GetString("outcar")
			if outcar == "" {
				outcar = viper.GetString("outcar")
			}
			vbm, cbm, err := vasp.BandExtrema(outcar)
			if err != nil {
				return err
			}
			if res.Variance > 1e-4 {
				fmt.Fprintf(os.Stderr, "warning: sampled region is not flat (variance %.6f); the vacuum level may be unreliable\n", res.Variance)
			}
			fmt.Printf("Vacuum potential:     %10.4f eV (variance %.6f)\n", res.Mean, res.Variance)
			fmt.Printf("Valence band maximum: %10.4f eV\n", vbm)
			fmt.Printf("Conduction band min:  %10.4f eV\n", cbm)
			fmt.Printf("Ionisation potential: %10.4f eV\n", density.IonisationPotential(res.Mean, vbm))
			fmt.Printf("Electron affinity:    %10.4f eV\n", density.ElectronAffinity(res.Mean, cbm))
			return nil
		},
	}
	gridFlags(cmd)
	cmd.Flags().Int("size", 1, "cube edge for the vacuum sample, in grid points")
	cmd.Flags().String("outcar", "", "OUTCAR file with the band eigenvalues")
	return cmd
}
