package commands

import (
	"fmt"

	"github.com/robgonnella/netassert/internal/config"
	"github.com/robgonnella/netassert/internal/core"
	"github.com/robgonnella/netassert/pkg/netassert"
	"github.com/robgonnella/netassert/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// creates and returns the "run" command
func run(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [plan-file]",
		Short: "Runs every check in a plan and prints TAP results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planPath := props.PlanPath

			if len(args) > 0 {
				planPath = args[0]
			}

			plan, err := config.New(planPath)

			if err != nil {
				return err
			}

			checks, err := plan.Expand()

			if err != nil {
				return err
			}

			conf := plan.Config

			if timeout := viper.GetDuration("timeout"); timeout > 0 {
				conf.Timeout = timeout
			}

			tap := report.NewTAPReporter(cmd.OutOrStdout())
			asserter := netassert.New(conf, tap)

			tap.Plan(len(checks))

			failed := core.New(asserter, tap).Run(cmd.Context(), checks)

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(checks))
			}

			return nil
		},
	}

	return cmd
}
