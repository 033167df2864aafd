// legend is a terminal action-adventure: explore a grid of scenes, clear
// them of monsters and face them with a sword.
//
// Usage:
//
//	legend play              - Play the game
//	legend world             - Inspect the level data
//	legend defaults <name>   - Print an embedded default config
//	legend version           - Print the version
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Set log file (default: ~/.legend/legend.log)
//	--log-level <level>   - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "legend",
	Short: "TLOZ-JS - A tile action adventure in your terminal",
	Long: `TLOZ-JS is a top-down action adventure rendered in the terminal.
Walk between scenes, beat every monster and collect what they drop.

Available commands:
  play     - Start the game
  world    - Browse the scenes of the level data
  defaults - Print an embedded default config
  version  - Print the version

Examples:
  legend play
  legend play --difficulty hard
  legend play --world ./my-world.yaml --mute
  legend world`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.legend/legend.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(versionCmd)
}
