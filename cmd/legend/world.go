package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/games/legend"
	"github.com/vovakirdan/tui-legend/internal/platform/tui"
)

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Inspect the level data",
	Long: `Loads and validates the level data, then lists every scene with its
music, solid tiles and monsters. The spawn scene is marked with *.

Examples:
  legend world
  legend world --world ./my-world.yaml`,
	Args: cobra.NoArgs,
	Run:  runWorld,
}

func init() {
	worldCmd.Flags().StringVar(&flagWorld, "world", "", "Path to custom level data YAML")
	worldCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runWorld(cmd *cobra.Command, args []string) {
	data, source, err := config.LoadWorld(flagWorld)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}
	tuning, _, err := config.LoadLegend(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	world, err := legend.BuildWorld(data, tuning, core.NewRandom(flagSeed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in %s: %v\n", source, err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunWorldInspector(world, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
