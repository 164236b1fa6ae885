package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/output"
	"github.com/iceinvein/bootleg-msn/internal/store"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect persisted shell state",
	Long: `Inspect the JSON state files the shell persists under the data
directory: window geometry, notification settings, and pending
notifications.`,
}

var stateWindowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "Show saved window geometry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printStateFile(cmd, store.WindowStateFile)
	},
}

var stateSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show notification settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printStateFile(cmd, store.NotificationSettingsFile)
	},
}

var stateNotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show pending notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printStateFile(cmd, store.NotificationsFile)
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateWindowsCmd)
	stateCmd.AddCommand(stateSettingsCmd)
	stateCmd.AddCommand(stateNotificationsCmd)
}

func printStateFile(cmd *cobra.Command, filename string) error {
	dataDir := resolveDataDir(cmd)
	cfg, err := config.Load(dataDir)
	if err != nil {
		return err
	}

	st, err := store.Open(filepath.Join(cfg.DataDir, filename))
	if err != nil {
		return err
	}

	// Decode each entry so the output layer renders real structure
	// instead of raw JSON bytes.
	doc := make(map[string]any, st.Len())
	for key, raw := range st.Raw() {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode %s[%s]: %w", filename, key, err)
		}
		doc[key] = v
	}
	return output.Print(doc)
}
