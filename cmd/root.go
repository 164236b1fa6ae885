package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/output"
	"github.com/iceinvein/bootleg-msn/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "bootleg-msn",
	Short: "Desktop host shell for the bootleg MSN Messenger",
	Long: `The native host shell for the bootleg MSN Messenger chat application:
application windows, the system tray icon, window-state and settings
persistence, OS notifications, and external link handling.

Run without arguments to start the desktop application.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (default: the platform config dir)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format for inspection commands: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, err := rootCmd.PersistentFlags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}

// resolveDataDir returns the --data-dir flag or the platform default.
func resolveDataDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("data-dir")
	if dir != "" {
		return dir
	}
	return config.DefaultDataDir()
}
