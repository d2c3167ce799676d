// Command polyforest computes and visualizes the containment forest of
// a set of simple planar polygons.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "polyforest",
		Short:         "Compute and visualize polygon containment forests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newProcessCommand())
	root.AddCommand(newShowCommand())

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
