package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iceinvein/bootleg-msn/internal/bridge"
	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/host"
	wailshost "github.com/iceinvein/bootleg-msn/internal/host/wails"
	"github.com/iceinvein/bootleg-msn/internal/shell"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the desktop shell",
	Long: `Start the desktop application: the main window, the tray icon, and the
notification handlers. Closing the main window hides it to the tray;
quit from the tray menu.`,
	RunE: runDesktop,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("bridge", false, "Also serve the MCP agent bridge (overrides config)")
	runCmd.Flags().Int("bridge-port", 0, "Agent bridge port (overrides config)")

	// Bare invocation starts the desktop app, so the binary works when
	// launched from a desktop entry.
	rootCmd.RunE = runDesktop
}

func runDesktop(cmd *cobra.Command, args []string) error {
	dataDir := resolveDataDir(cmd)
	cfg, err := config.Load(dataDir)
	if err != nil {
		return err
	}

	stores, err := shell.OpenStores(cfg.DataDir)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// The closing hook fires before the shell exists during startup;
	// the indirection lets the backend and the shell reference each
	// other without a second wiring pass.
	var sh *shell.Shell
	app, provider := wailshost.New(cfg, logger, func(w host.Window) bool {
		if sh == nil {
			return false
		}
		// Capture geometry before the window hides.
		_ = sh.PersistWindowState(shell.MainWindowLabel)
		return sh.OnMainWindowClosing(w)
	})
	sh = shell.New(provider, stores, cfg, logger)

	var saved *wailshost.Geometry
	if state, err := sh.LoadWindowState(shell.MainWindowLabel); err == nil && state != nil {
		saved = &wailshost.Geometry{
			Width:  state.Width,
			Height: state.Height,
			X:      state.X,
			Y:      state.Y,
		}
	}
	app.CreateMainWindow(cfg, saved)
	app.OnWindowChanged(shell.MainWindowLabel, func() {
		_ = sh.PersistWindowState(shell.MainWindowLabel)
	})

	if err := sh.SetupTray(provider.Quit); err != nil {
		return err
	}

	if enabled, _ := cmd.Flags().GetBool("bridge"); enabled {
		cfg.Bridge.Enabled = true
	}
	if port, _ := cmd.Flags().GetInt("bridge-port"); port > 0 {
		cfg.Bridge.Port = port
	}
	if cfg.Bridge.Enabled {
		go func() {
			brCfg := bridge.Config{Transport: cfg.Bridge.Transport, Port: cfg.Bridge.Port}
			logger.Info("agent bridge listening", "transport", brCfg.Transport, "port", brCfg.Port)
			if err := bridge.New(sh).Serve(brCfg); err != nil {
				logger.Error("agent bridge stopped", "error", err)
			}
		}()
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("desktop shell: %w", err)
	}
	return nil
}
