package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/robgonnella/netassert/internal/config"
	"github.com/robgonnella/netassert/internal/logger"
	"github.com/spf13/cobra"
)

// creates and returns the "init" command
func initPlan(props *CommandProps) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [plan-file]",
		Short: "Writes an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			planPath := props.PlanPath

			if len(args) > 0 {
				planPath = args[0]
			}

			if _, err := os.Stat(planPath); err == nil && !force {
				return fmt.Errorf("plan file already exists: %s", planPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Write(planPath, config.Example()); err != nil {
				return err
			}

			log.Info().Str("path", planPath).Msg("wrote example plan")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing plan file")

	return cmd
}
