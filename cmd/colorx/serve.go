package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorx/internal/config"
	"github.com/vovakirdan/colorx/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive converter over SSH",
	Long: `Start an SSH server that gives every connection its own interactive
converter. All sessions share the server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.colorx/host_key

Examples:
  colorx serve                           # Listen on the configured address
  colorx serve --ssh :2222               # Listen on port 2222
  colorx serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
	serveCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Initially selected output format (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	target, err := targetNotation()
	if err != nil {
		return err
	}

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Serve.Address,
		HostKeyPath: cfg.Serve.HostKey,
		Target:      target,
		IdleTimeout: cfg.IdleTimeout(),
	}
	if cfg.History.Enabled {
		srvCfg.DBPath = cfg.History.DBPath
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	if srvCfg.HostKeyPath, err = config.ExpandHome(srvCfg.HostKeyPath); err != nil {
		return err
	}

	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting colorx SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
