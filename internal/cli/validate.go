package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCommand checks a config file without generating anything.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config.toml]",
		Short: "Check a dungeon config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("config", "rooms", cfg.Rooms, "mean", cfg.MeanDimensions, "min", cfg.MinDimensions)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}
