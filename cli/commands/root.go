package commands

import (
	"github.com/robgonnella/netassert/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	// PlanPath default plan file used when none is given
	PlanPath string
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool

	cmd := &cobra.Command{
		Use:           "netassert",
		Short:         "Assert reachability and ssh posture of remote hosts",
		SilenceUsage:  true,
		SilenceErrors: true,
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			logger.GlobalSetLevel(zerolog.InfoLevel)

			if verbose {
				logger.GlobalSetLevel(zerolog.DebugLevel)
			}

			if silent {
				logger.GlobalSetLevel(zerolog.Disabled)
			}

			return nil
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")
	cmd.PersistentFlags().DurationP("timeout", "t", 0, "deadline for dns, tcp and ssh probes (default 5s)")

	viper.BindPFlag("timeout", cmd.PersistentFlags().Lookup("timeout"))

	cmd.AddCommand(run(props))
	cmd.AddCommand(initPlan(props))
	cmd.AddCommand(info())
	cmd.AddCommand(version())

	return cmd
}
