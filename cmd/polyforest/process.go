package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arborfield/polyforest/forest"
	"github.com/arborfield/polyforest/ioformat"
)

func newProcessCommand() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "process <path>",
		Short: "Compute the containment forest of the polygons in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := forest.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			polys, err := ioformat.Parse(f)
			if err != nil {
				return err
			}

			root := forest.Build(polys, algo)
			parents := forest.ParentIndices(root, len(polys))

			fields := make([]string, len(parents))
			for i, parent := range parents {
				fields[i] = strconv.Itoa(parent)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " "))
			return err
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "naive", "builder algorithm: naive, frames or dac")

	return cmd
}
