package commands

import (
	"fmt"
	"os/exec"
	"strings"

	app_info "github.com/robgonnella/netassert/internal/app-info"
	"github.com/robgonnella/netassert/pkg/netassert"
	"github.com/robgonnella/netassert/pkg/runner"
	"github.com/spf13/cobra"
)

// lookup returns the resolved path of an external utility or a note that
// it is missing
func lookup(name string) string {
	p, err := exec.LookPath(name)

	if err != nil {
		return "not found"
	}

	return p
}

func info() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		Run: func(cmd *cobra.Command, args []string) {
			conf := netassert.Default()

			sshVersion := "unknown"

			result, err := runner.NewExecRunner().Run(cmd.Context(), conf.SSH.Command, []string{"-V"})

			if err == nil {
				sshVersion = strings.TrimSpace(string(result.Output))
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: %s\n\n%s: %s\n%s: %s\n%s: %s (%s)\n",
				app_info.NAME,
				app_info.VERSION,
				conf.Ping.Command,
				lookup(conf.Ping.Command),
				conf.Ping.Command6,
				lookup(conf.Ping.Command6),
				conf.SSH.Command,
				lookup(conf.SSH.Command),
				sshVersion,
			)
		},
	}

	return cmd
}
