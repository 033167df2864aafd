package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-legend/internal/audio"
	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/games/legend"
	"github.com/vovakirdan/tui-legend/internal/platform/tui"
)

var (
	flagConfig     string
	flagWorld      string
	flagDifficulty string
	flagMute       bool
	flagFixedStep  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the splash screen.

Controls:
  WASD/Arrows  - Move
  Space/J      - Sword
  Enter        - Start
  P/Esc        - Pause
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - Slower, weaker monsters and longer invincibility
  normal  - The tuning file as written
  hard    - Faster monsters that hit harder

Examples:
  legend play
  legend play --difficulty easy
  legend play --config ./legend.yaml --world ./world.yaml
  legend play --seed 42 --fixed-step`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagWorld, "world", "", "Path to custom level data YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Run without sound")
	playCmd.Flags().BoolVar(&flagFixedStep, "fixed-step", false, "Advance one frame per tick regardless of wall time")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	var bank legend.SoundBank = legend.Silent{}
	if !flagMute {
		b, bankErr := audio.NewBank(logger)
		if bankErr != nil {
			// Continue without sound - game still works
			logger.Warn("sound disabled", "err", bankErr)
		} else {
			defer b.Close()
			bank = b
		}
	}

	// Set settings for the game before creation
	legend.SetConfigPath(flagConfig)
	legend.SetWorldPath(flagWorld)
	legend.SetDifficultyPreset(flagDifficulty)
	legend.SetSoundBank(bank)
	legend.SetLogger(logger)
	legend.SetFixedStep(flagFixedStep)

	if err := tui.Run(legend.New(), cfg, logger); err != nil {
		logger.Error("run failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
