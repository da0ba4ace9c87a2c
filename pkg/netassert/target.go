package netassert

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/robgonnella/netassert/internal/exception"
)

var portSuffixRegexp = regexp.MustCompile(`^(.*):(\d+)$`)

// Target represents a remote endpoint under test
type Target struct {
	Host string
	Port int
}

// String returns the target in host:port form
func (t Target) String() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// ParseTarget splits "host" or "host:port" into a Target, using the last
// trailing numeric group as the port. Bracketed hosts ("[::1]:22") have
// their brackets removed. defaultPort applies when no port is present.
func ParseTarget(target string, defaultPort int) (Target, error) {
	host := strings.TrimSpace(target)
	port := defaultPort

	if match := portSuffixRegexp.FindStringSubmatch(host); match != nil {
		p, err := strconv.Atoi(match[2])

		if err != nil {
			return Target{}, fmt.Errorf("%w: %q: %s", exception.ErrInvalidTarget, target, err)
		}

		host = match[1]
		port = p
	}

	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}

	if err := validateHost(host); err != nil {
		return Target{}, fmt.Errorf("%w: %q", err, target)
	}

	if err := validatePort(port); err != nil {
		return Target{}, fmt.Errorf("%w: %q", err, target)
	}

	return Target{Host: host, Port: port}, nil
}

// hosts are passed to external utilities as arguments so anything that
// could be read as a flag is rejected
func validateHost(host string) error {
	if host == "" {
		return fmt.Errorf("%w: empty host", exception.ErrInvalidTarget)
	}

	if strings.HasPrefix(host, "-") {
		return fmt.Errorf("%w: host %q begins with '-'", exception.ErrInvalidTarget, host)
	}

	if strings.ContainsAny(host, " \t\r\n") {
		return fmt.Errorf("%w: host %q contains whitespace", exception.ErrInvalidTarget, host)
	}

	return nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %d out of range", exception.ErrInvalidTarget, port)
	}

	return nil
}
