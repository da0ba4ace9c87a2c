package commands_test

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/robgonnella/netassert/cli/commands"
	app_info "github.com/robgonnella/netassert/internal/app-info"
	"github.com/robgonnella/netassert/internal/config"
	"github.com/stretchr/testify/assert"
)

func execute(planPath string, args ...string) (string, error) {
	out := &bytes.Buffer{}

	cmd := commands.Root(&commands.CommandProps{PlanPath: planPath})
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--silent"))

	err := cmd.Execute()

	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Run("prints version", func(st *testing.T) {
		out, err := execute("", "version")

		assert.NoError(st, err)
		assert.Equal(st, fmt.Sprintf("%s: %s\n", app_info.NAME, app_info.VERSION), out)
	})

	t.Run("writes example plan and refuses to overwrite it", func(st *testing.T) {
		planPath := path.Join(st.TempDir(), "plan.yml")

		_, err := execute(planPath, "init")

		assert.NoError(st, err)

		plan, err := config.New(planPath)

		assert.NoError(st, err)
		assert.Equal(st, config.Example(), *plan)

		_, err = execute(planPath, "init")

		assert.Error(st, err)

		_, err = execute(planPath, "init", "--force")

		assert.NoError(st, err)
	})

	t.Run("runs plan and prints tap output", func(st *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")

		if err != nil {
			st.Logf("failed to listen on loopback: %s", err.Error())
			st.FailNow()
		}

		defer listener.Close()

		port := listener.Addr().(*net.TCPAddr).Port

		planPath := path.Join(st.TempDir(), "plan.yml")

		plan := fmt.Sprintf(`timeout: 1s
checks:
  - type: socket_open
    host: 127.0.0.1
    port: %d
    description: listener is open
  - type: socket_closed
    host: 127.0.0.1
    port: 0
`, port)

		assert.NoError(st, os.WriteFile(planPath, []byte(plan), 0644))

		out, err := execute("", "run", planPath)

		assert.NoError(st, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")

		assert.Equal(st, []string{
			"1..2",
			"ok 1 - listener is open",
			"ok 2 - 127.0.0.1:0 is closed",
		}, lines)
	})

	t.Run("returns error when checks fail", func(st *testing.T) {
		planPath := path.Join(st.TempDir(), "plan.yml")

		plan := "checks:\n  - type: socket_open\n    host: 127.0.0.1\n    port: 0\n"

		assert.NoError(st, os.WriteFile(planPath, []byte(plan), 0644))

		out, err := execute(planPath, "run", "--timeout", "500ms")

		assert.Error(st, err)
		assert.Contains(st, out, "not ok 1 - 127.0.0.1:0 is open")
		assert.Equal(st, "1 of 1 checks failed", err.Error())
	})

	t.Run("returns error for missing plan", func(st *testing.T) {
		_, err := execute(path.Join(st.TempDir(), "missing.yml"), "run")

		assert.Error(st, err)
	})
}
