package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arborfield/polyforest/generator"
	"github.com/arborfield/polyforest/ioformat"
)

func newGenerateCommand() *cobra.Command {
	var (
		corners   int
		dimension float64
		radius    float64
		count     int
		seed      int64
		output    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a set of random non-intersecting polygons",
		RunE: func(cmd *cobra.Command, args []string) error {
			polys, err := generator.Generate(count,
				generator.WithCorners(corners),
				generator.WithDimension(dimension),
				generator.WithRadius(radius),
				generator.WithSeed(seed),
			)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return ioformat.Write(w, polys)
		},
	}

	cmd.Flags().IntVar(&corners, "corners", 6, "maximum number of vertices per generated polygon")
	cmd.Flags().Float64Var(&dimension, "dimension", 1000, "side of the square region every polygon fits inside")
	cmd.Flags().Float64Var(&radius, "radius", 50, "maximum vertex distance from a polygon's center")
	cmd.Flags().IntVar(&count, "count", 10, "number of polygons to generate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&output, "output", "", "output file (default: stdout)")

	return cmd
}
