package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arborfield/polyforest/ioformat"
	"github.com/arborfield/polyforest/svgexport"
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Render the polygons in a file as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			polys, err := ioformat.Parse(f)
			if err != nil {
				return err
			}

			return svgexport.Render(cmd.OutOrStdout(), polys)
		},
	}

	return cmd
}
