// Package cmd provides the root command and CLI setup for wakatimer.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/wakatimer/internal/adapter"
	"github.com/mouse-blink/wakatimer/internal/clock"
	"github.com/mouse-blink/wakatimer/internal/controller"
	"github.com/mouse-blink/wakatimer/internal/domain"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.FSAdapter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui, clock.NewRealClock())
}

var rootOptions replayOptions

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wakatimer <source> <destination>",
		Short: "Replay a source tree as timed coding activity",
		Long: `Wakatimer replays an existing source tree into a destination directory
over a simulated session, writing text files incrementally as if they were
being typed and copying binary files whole, so that activity trackers
watching the destination record a plausible coding session.

Configuration is read from defaults, an optional YAML file (--config),
WAKATIMER_* environment variables and finally command-line flags.

Examples:
  wakatimer ./project ~/replay/project --duration 3h
  wakatimer ./project /tmp/out --speed 60 --seed 7
  wakatimer ./project /tmp/out --instant`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), &rootOptions)
			if err != nil {
				return err
			}

			cfg.SourceRoot = args[0]
			cfg.DestinationRoot = args[1]

			_, err = workflow.Replay(cmd.Context(), domain.ReplayArgs{
				PlanArgs: domain.PlanArgs{Config: cfg},
			})

			return err
		},
	}
	cmd.PersistentFlags().StringVarP(&configFileFlag, "config", "c", "", "path to a YAML config file")
	rootOptions.bind(cmd.Flags())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the replay after the increment in progress.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
