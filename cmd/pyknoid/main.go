// pyknoid is a breakout game for the terminal.
//
// Usage:
//
//	pyknoid                  - Play locally
//	pyknoid serve            - Start SSH server for remote play
//	pyknoid stages           - List the stages that would be played
//
// Global flags:
//
//	--config <path>       - Game config YAML (default: search ~/.pyknoid, ./configs, built-in)
//	--stages <dir>        - Load stages from a directory instead of the built-in set
//	--difficulty <name>   - easy, normal or hard
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Log file for local play (default: ~/.pyknoid/pyknoid.log)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pyknoid/internal/audio"
	"github.com/vovakirdan/pyknoid/internal/core"
	"github.com/vovakirdan/pyknoid/internal/engine"
	"github.com/vovakirdan/pyknoid/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagStages     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pyknoid",
	Short: "Pyknoid - Breakout in your terminal",
	Long: `Pyknoid is a breakout game for the terminal: move the paddle with the
mouse or the arrow keys, keep the ball in play and clear every stage.

Controls:
  Mouse / ←→ / A D   - Move the paddle
  Click / Space      - Launch the ball
  ↑↓ / Enter         - Menus
  Esc                - Back to the menu
  Q / Ctrl+C         - Quit

Examples:
  pyknoid
  pyknoid --difficulty hard
  pyknoid --stages ./my-stages
  pyknoid serve --ssh :2222
  pyknoid stages`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagStages, "stages", "", "Directory of stage files (*.yaml, *.yml, *.csv)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for local play (default ~/.pyknoid/pyknoid.log)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stagesCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	b, err := bootstrap()
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger(flagLogFile)
	defer closeLog()

	var player audio.Player = audio.Silent{}
	if b.cfg.Audio.Enabled {
		sp, spErr := audio.NewSpeaker(b.cfg.Audio.Volume, logger)
		if spErr != nil {
			logger.Warn("sound disabled", "err", spErr)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rcfg.Seed == 0 {
		rcfg.Seed = time.Now().UnixNano()
	}

	game := engine.NewGame(b.context(player, logger, rcfg.Seed))
	if err := tui.Run(game, b.cfg.Field.Width, b.cfg.Field.Height, rcfg); err != nil {
		return err
	}
	return game.Err()
}
