package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/mapcidr"
	"github.com/robgonnella/netassert/internal/exception"
	"github.com/robgonnella/netassert/pkg/netassert"
	"gopkg.in/yaml.v3"
)

// CheckType represents a kind of assertion in a plan
type CheckType string

// Enum values for our supported checks
const (
	CheckPing            CheckType = "ping"
	CheckPing6           CheckType = "ping6"
	CheckResolves        CheckType = "resolves"
	CheckSocketOpen      CheckType = "socket_open"
	CheckSocketClosed    CheckType = "socket_closed"
	CheckSSHAuthEnabled  CheckType = "ssh_auth_enabled"
	CheckSSHAuthDisabled CheckType = "ssh_auth_disabled"
)

// Check represents a single assertion in a user provided plan
type Check struct {
	Type        CheckType `yaml:"type"`
	Host        string    `yaml:"host,omitempty"`
	Port        int       `yaml:"port,omitempty"`
	Target      string    `yaml:"target,omitempty"`
	Method      string    `yaml:"method,omitempty"`
	Description string    `yaml:"description,omitempty"`
}

// Plan represents the data structure of our user provided yaml plan
type Plan struct {
	netassert.Config `yaml:",inline"`
	Checks           []Check `yaml:"checks"`
}

// New returns unmarshaled data structure of user provided plan
func New(planPath string) (*Plan, error) {
	raw, err := os.ReadFile(planPath)

	if err != nil {
		return nil, err
	}

	return Parse(raw)
}

// Parse unmarshals and validates a yaml plan
func Parse(raw []byte) (*Plan, error) {
	var plan Plan

	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return nil, err
	}

	for i, c := range plan.Checks {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("check %d: %w", i+1, err)
		}
	}

	return &plan, nil
}

// Example returns a small plan used to seed new plan files
func Example() Plan {
	return Plan{
		Config: netassert.Config{
			Timeout: netassert.DefaultTimeout,
		},
		Checks: []Check{
			{Type: CheckPing, Host: "localhost"},
			{Type: CheckResolves, Host: "localhost"},
			{Type: CheckSocketClosed, Host: "localhost", Port: 23},
			{Type: CheckSSHAuthDisabled, Host: "localhost", Method: "password"},
		},
	}
}

// Write encodes plan as yaml to planPath
func Write(planPath string, plan Plan) error {
	file, err := os.Create(planPath)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	if err := encoder.Encode(plan); err != nil {
		return err
	}

	return encoder.Close()
}

// Expand returns the plan's checks with every CIDR host expanded to one
// check per address and empty descriptions filled in
func (p *Plan) Expand() ([]Check, error) {
	checks := []Check{}

	for _, c := range p.Checks {
		hosts := []string{c.Host}

		if strings.Contains(c.Host, "/") {
			ips, err := mapcidr.IPAddresses(c.Host)

			if err != nil {
				return nil, fmt.Errorf("%w: %q: %s", exception.ErrInvalidTarget, c.Host, err)
			}

			hosts = ips
		}

		for _, h := range hosts {
			expanded := c
			expanded.Host = h

			if expanded.isSSH() && expanded.Target == "" {
				expanded.Target = h

				if expanded.Port != 0 {
					expanded.Target = netassert.Target{Host: h, Port: expanded.Port}.String()
				}
			}

			if expanded.Description == "" {
				expanded.Description = expanded.defaultDescription()
			}

			checks = append(checks, expanded)
		}
	}

	return checks, nil
}

func (c Check) isSSH() bool {
	return c.Type == CheckSSHAuthEnabled || c.Type == CheckSSHAuthDisabled
}

func (c Check) validate() error {
	switch c.Type {
	case CheckPing, CheckPing6, CheckResolves, CheckSocketOpen, CheckSocketClosed:
		if c.Host == "" {
			return fmt.Errorf("%w: %s requires host", exception.ErrInvalidTarget, c.Type)
		}
	case CheckSSHAuthEnabled, CheckSSHAuthDisabled:
		if c.Host == "" && c.Target == "" {
			return fmt.Errorf("%w: %s requires host or target", exception.ErrInvalidTarget, c.Type)
		}

		if c.Method == "" {
			return fmt.Errorf("%s requires method", c.Type)
		}
	default:
		return fmt.Errorf("%w: %q", exception.ErrUnknownCheck, c.Type)
	}

	return nil
}

func (c Check) defaultDescription() string {
	port := strconv.Itoa(c.Port)

	switch c.Type {
	case CheckPing:
		return "ping " + c.Host
	case CheckPing6:
		return "ping6 " + c.Host
	case CheckResolves:
		return c.Host + " resolves"
	case CheckSocketOpen:
		return c.Host + ":" + port + " is open"
	case CheckSocketClosed:
		return c.Host + ":" + port + " is closed"
	case CheckSSHAuthEnabled:
		return "ssh " + c.Target + " " + c.Method + " auth enabled"
	case CheckSSHAuthDisabled:
		return "ssh " + c.Target + " " + c.Method + " auth disabled"
	default:
		return string(c.Type) + " " + c.Host
	}
}
