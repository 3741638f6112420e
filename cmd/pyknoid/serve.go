package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyknoid/internal/audio"
	"github.com/vovakirdan/pyknoid/internal/engine"
	"github.com/vovakirdan/pyknoid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pyknoid SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own single-player game. Sound is off for
remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pyknoid/host_key

Examples:
  pyknoid serve                           # Listen on :23234 with auto-generated key
  pyknoid serve --ssh :2222               # Listen on port 2222
  pyknoid serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	b, err := bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pyknoid-ssh",
	})

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.FieldW = b.cfg.Field.Width
	cfg.FieldH = b.cfg.Field.Height
	cfg.TickRate = flagFPS

	factory := func(_ string, sessionLog *log.Logger) (*engine.Game, error) {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		ctx := b.context(audio.Silent{}, sessionLog, seed)
		ctx.Settings.Sound = false
		return engine.NewGame(ctx), nil
	}

	server, err := tui.NewSSHServer(cfg, factory, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pyknoid SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
