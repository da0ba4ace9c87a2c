package netassert

import (
	"runtime"
	"time"
)

// DefaultTimeout deadline applied to dns, tcp and ssh probes
const DefaultTimeout = time.Second * 5

// DefaultSSHPort port used when an ssh target has no port suffix
const DefaultSSHPort = 22

// PingConfig represents the external ping utilities and their flags. The
// host is always appended as the final argument.
type PingConfig struct {
	Command  string   `yaml:"command,omitempty"`
	Args     []string `yaml:"args,omitempty"`
	Command6 string   `yaml:"command6,omitempty"`
	Args6    []string `yaml:"args6,omitempty"`
}

// DNSConfig represents the resolver used for dns probes
type DNSConfig struct {
	// Server host or host:port of a nameserver, system resolver when empty
	Server string `yaml:"server,omitempty"`
}

// SSHConfig represents the external ssh client used for auth-type probes
type SSHConfig struct {
	Command string   `yaml:"command,omitempty"`
	User    string   `yaml:"user,omitempty"`
	Port    int      `yaml:"port,omitempty"`
	Options []string `yaml:"options,omitempty"`
}

// Config represents the settings consulted by every assertion
type Config struct {
	Timeout time.Duration `yaml:"timeout,omitempty"`
	Ping    PingConfig    `yaml:"ping,omitempty"`
	DNS     DNSConfig     `yaml:"dns,omitempty"`
	SSH     SSHConfig     `yaml:"ssh,omitempty"`
}

// Default returns the default configuration for the current platform
func Default() Config {
	return Config{
		Timeout: DefaultTimeout,
		Ping:    defaultPingConfig(runtime.GOOS),
		SSH: SSHConfig{
			Command: "ssh",
			Port:    DefaultSSHPort,
			Options: []string{},
		},
	}
}

// one packet with a one second wait, flag names differ per platform
func defaultPingConfig(goos string) PingConfig {
	switch goos {
	case "linux":
		return PingConfig{
			Command:  "ping",
			Args:     []string{"-c", "1", "-W", "1"},
			Command6: "ping6",
			Args6:    []string{"-c", "1", "-W", "1"},
		}
	case "darwin", "freebsd":
		return PingConfig{
			Command:  "ping",
			Args:     []string{"-c", "1", "-t", "1"},
			Command6: "ping6",
			Args6:    []string{"-c", "1"},
		}
	default:
		return PingConfig{
			Command:  "ping",
			Args:     []string{"-c", "1"},
			Command6: "ping6",
			Args6:    []string{"-c", "1"},
		}
	}
}
