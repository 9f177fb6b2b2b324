package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/allocview/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the allocview command tree. Every setting is bound to a
// persistent flag and to its ALLOCVIEW_* environment variable.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "allocview",
		Short: "Live memory telemetry dashboard",
		Long: `allocview charts the memory metrics of its own process in the terminal.

Each tick samples every tracked metric into a rolling window and redraws a
braille line chart. Digit keys allocate stress buffers so you can watch the
metrics react; p frees the most recent one.

Examples:
  allocview
  allocview --source process --frame-rate 30
  ALLOCVIEW_CAPACITY=1024 allocview`,
		Version:       formatVersion(GetVersion()),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return dashboardCommand(cmd.Context(), cfg, nil)
		},
	}

	flags := cmd.PersistentFlags()
	flags.Int(config.KeyCapacity, config.DefaultCapacity, "samples kept per metric")
	flags.String(config.KeySource, config.DefaultSource, "metric source: runtime or process")
	flags.Int(config.KeyFrameRate, config.DefaultFrameRate, "ticks per second (1-240)")
	flags.String(config.KeyStressStep, config.DefaultStressStep, "buffer size bound to the 1 key")
	flags.String(config.KeyLogFile, "", "write logs to this file")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "log level: debug, info, warn, error")
	bindFlags(v, cmd)
	cmd.SetVersionTemplate("allocview {{.Version}}\n")

	cmd.AddCommand(newMetricsCmd(v))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(cmd.PersistentFlags())
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
