package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iceinvein/bootleg-msn/internal/bridge"
	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/host/headless"
	"github.com/iceinvein/bootleg-msn/internal/shell"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP agent bridge without the desktop UI",
	Long: `Start a Model Context Protocol (MCP) server exposing the messenger shell
as tools: notifications, unread count, chat windows, and URL opening.
Runs headless: notifications and URL opening work, window operations
report that no desktop session is attached.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  bootleg-msn serve
  bootleg-msn serve --transport streamable-http --port 8765`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8765, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	dataDir := resolveDataDir(cmd)
	cfg, err := config.Load(dataDir)
	if err != nil {
		return err
	}

	stores, err := shell.OpenStores(cfg.DataDir)
	if err != nil {
		return err
	}

	// stdio transport owns stdout, so logs go to stderr either way.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	provider := headless.NewProvider()
	sh := shell.New(provider, stores, cfg, logger)

	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	return bridge.New(sh).Serve(bridge.Config{
		Transport: transport,
		Port:      port,
	})
}
