package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/wakatimer/internal/config"
)

var configWriteFlag string

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Config prints the configuration a replay would use after merging the
defaults, the --config file and WAKATIMER_* environment variables.
With --write it saves the default configuration to a file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configWriteFlag != "" {
				if err := config.WriteExample(configWriteFlag); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configWriteFlag)

				return nil
			}

			cfg, err := loadConfig(cmd.Flags(), nil)
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVarP(&configWriteFlag, "write", "w", "", "write the default configuration to this path")

	return cmd
}

func init() {
	rootCmd.AddCommand(configCmd)
}
