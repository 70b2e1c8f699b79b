package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/service/checker"
	"github.com/oshokin/alarm-clock/internal/service/client"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// serverAddress overrides server_addr from the configuration file.
	serverAddress string
	// pollInterval is the watch polling period.
	pollInterval time.Duration

	// rootCmd represents the base command for controlling the daemon.
	rootCmd = &cobra.Command{
		Use:   "alarmctl",
		Short: "Control alarms on the alarm clock daemon.",
		Long: `Adds, cancels and lists alarms on a running alarm-clockd.

The daemon address comes from server_addr in the configuration file
unless --server is given. Cancelling a ringing alarm also silences it.`,
		SilenceUsage: true,
	}

	addCmd = &cobra.Command{
		Use:     "add HH:MM",
		Short:   "Schedule an alarm.",
		Example: "  alarmctl add 7:30",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Add(cmd.Context(), options(cmd), args[0])
		},
	}

	cancelCmd = &cobra.Command{
		Use:     "cancel ID",
		Aliases: []string{"rm", "dismiss"},
		Short:   "Remove an alarm, silencing it if it rings.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Cancel(cmd.Context(), options(cmd), args[0])
		},
	}

	listCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show all alarms in trigger order.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.List(cmd.Context(), options(cmd))
		},
	}

	nextCmd = &cobra.Command{
		Use:   "next",
		Short: "Show the upcoming alarm and the time left.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.Next(cmd.Context(), options(cmd))
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Print alarm changes as they happen.",
		Long: `Polls the daemon and prints a line whenever an alarm is added,
starts ringing or is removed. Stops on Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watchOptions := &checker.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				PollInterval:  pollInterval,
				Out:           cmd.OutOrStdout(),
			}

			return checker.Run(cmd.Context(), watchOptions)
		},
	}
)

// options builds client options from the persistent flags.
func options(cmd *cobra.Command) *client.Options {
	return &client.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
		Out:           cmd.OutOrStdout(),
	}
}

// Execute runs the alarmctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "daemon address, overrides server_addr")

	watchCmd.Flags().DurationVarP(&pollInterval, "interval", "i", 0, "polling interval, poll_interval from config when zero")

	rootCmd.AddCommand(addCmd, cancelCmd, listCmd, nextCmd, watchCmd)
}
