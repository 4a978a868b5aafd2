package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkallin/driftwalk/internal/config"
	"github.com/mkallin/driftwalk/internal/core"
	"github.com/mkallin/driftwalk/internal/platform/tui"
)

var (
	flagSSHAddr        string
	flagHostKey        string
	flagIdleTimeout    int
	flagServeParticles int
	flagServeTurnProb  int
	flagServeDelayMS   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the driftwalk SSH server",
	Long: `Start an SSH server where every connection watches its own walk,
sized to the visitor's terminal and seeded from the connection time.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.driftwalk/host_key

Examples:
  driftwalk serve                           # Listen on :23235 with auto-generated key
  driftwalk serve --ssh :2222               # Listen on port 2222
  driftwalk serve --particles 150           # Busier walks for visitors
  driftwalk serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeParticles, "particles", 10, "Particles per session")
	serveCmd.Flags().IntVar(&flagServeTurnProb, "turn-prob", -1, "Turn probability per session (-1 = default 50)")
	serveCmd.Flags().IntVar(&flagServeDelayMS, "delay-ms", 0, "Inter-frame delay per session (0 = default 25)")
}

func runServe(_ *cobra.Command, _ []string) {
	preset := config.Preset{
		Particles: flagServeParticles,
		DelayMS:   flagServeDelayMS,
	}
	if flagServeTurnProb >= 0 {
		if flagServeTurnProb > core.MaxTurnProb {
			fmt.Fprintf(os.Stderr, "Error: turn-prob %d exceeds %d\n", flagServeTurnProb, core.MaxTurnProb)
			os.Exit(1)
		}
		preset.TurnProb = core.TurnProbOf(uint8(flagServeTurnProb))
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		Preset:      preset,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
