package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-legend/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <legend|world>",
	Short: "Print an embedded default config",
	Long: `Prints the embedded default YAML, ready to edit and pass back with
--config or --world, or to save under ~/.legend/configs/.

Examples:
  legend defaults legend > ~/.legend/configs/legend.yaml
  legend defaults world > my-world.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"legend", "world"},
	Run:       runDefaults,
}

func runDefaults(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown config %q (expected legend or world)\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
