package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/presenter/tui"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for the terminal alarm clock.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock",
		Short: "Terminal clock with alarms.",
		Long: `Shows a digital clock with an alarm list in the terminal.

Press "a" to add an alarm in HH:MM form, arrows to select one and "d" to
cancel or dismiss it. Alarms live only while the program runs.
Logs are written to log_file from the configuration file, or to
alarm-clock.log in the temporary directory.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return tui.Run(ctx, &tui.Options{ConfigPath: configPath})
		},
	}
)

// Execute runs the alarm-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
