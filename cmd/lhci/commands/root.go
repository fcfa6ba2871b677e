// Package commands provides the CLI commands for lhci.
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lhci/lhci/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	rcFilePath     string
	noLighthouseRc bool
	logLevel       string
	prettyLogs     bool
)

var rootCmd = &cobra.Command{
	Use:   "lhci",
	Short: "lhci - Lighthouse CI automation",
	Long: `lhci automates running Lighthouse against a project in CI.

Project settings live in a lighthouserc file that is auto-detected by
walking up from the working directory. Run 'lhci config' to see the
resolved settings.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is not an error.
		_ = godotenv.Load()

		logging.Init(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Pretty: prettyLogs,
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand, show help
		cmd.Help()
	},
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&rcFilePath, "config", "", "Path to the lighthouserc file")
	rootCmd.PersistentFlags().BoolVar(&noLighthouseRc, "no-lighthouserc", false, "Disable lighthouserc auto-detection")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty", false, "Human-readable log output")

	// Version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("lhci %s (%s)\n", Version, BuildTime))

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
