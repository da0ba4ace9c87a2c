package main

import (
	"context"
	"errors"
	"os"
	"path"
	"strings"

	"github.com/robgonnella/netassert/cli/commands"
	app_info "github.com/robgonnella/netassert/internal/app-info"
	"github.com/robgonnella/netassert/internal/logger"
	"github.com/spf13/viper"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRunTimeConfig() error {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	planFile := path.Join(configDir, "plan.yml")

	// share run-time config globally using viper, NETASSERT_TIMEOUT etc.
	// override flag defaults
	viper.SetEnvPrefix(app_info.NAME)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("plan-path", planFile)
	viper.Set("config-dir", configDir)

	return nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	if err := setRunTimeConfig(); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		PlanPath: viper.GetString("plan-path"),
	})

	// execute the cobra command and exit with error code if necessary
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("")
		os.Exit(1)
	}
}
