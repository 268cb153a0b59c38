package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/wakatimer/internal/domain"
)

var planOptions replayOptions

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <source> [destination]",
		Short: "Show the replay plan without writing anything",
		Long: `Plan walks and classifies the source tree, cuts text files into increments
and schedules them exactly as a replay with the same flags and seed would,
then prints one row per file. Nothing is written. When a destination inside
the source is given it is excluded from the walk.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), &planOptions)
			if err != nil {
				return err
			}

			cfg.SourceRoot = args[0]
			if len(args) > 1 {
				cfg.DestinationRoot = args[1]
			}

			_, err = workflow.Plan(domain.PlanArgs{Config: cfg})

			return err
		},
	}
	planOptions.bind(cmd.Flags())

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
