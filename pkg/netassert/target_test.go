package netassert_test

import (
	"errors"
	"testing"

	"github.com/robgonnella/netassert/internal/exception"
	"github.com/robgonnella/netassert/pkg/netassert"
	"github.com/stretchr/testify/assert"
)

func TestParseTarget(t *testing.T) {
	t.Run("uses default port when none given", func(st *testing.T) {
		target, err := netassert.ParseTarget("example.com", 22)

		assert.NoError(st, err)
		assert.Equal(st, netassert.Target{Host: "example.com", Port: 22}, target)
		assert.Equal(st, "example.com:22", target.String())
	})

	t.Run("splits trailing port", func(st *testing.T) {
		target, err := netassert.ParseTarget(" 10.0.0.1:2222 ", 22)

		assert.NoError(st, err)
		assert.Equal(st, netassert.Target{Host: "10.0.0.1", Port: 2222}, target)
	})

	t.Run("uses last numeric group as port", func(st *testing.T) {
		target, err := netassert.ParseTarget("fe80::1:2022", 22)

		assert.NoError(st, err)
		assert.Equal(st, netassert.Target{Host: "fe80::1", Port: 2022}, target)
	})

	t.Run("strips brackets from ipv6 host", func(st *testing.T) {
		target, err := netassert.ParseTarget("[::1]:22", 2222)

		assert.NoError(st, err)
		assert.Equal(st, netassert.Target{Host: "::1", Port: 22}, target)
		assert.Equal(st, "[::1]:22", target.String())
	})

	t.Run("keeps non numeric suffix as part of host", func(st *testing.T) {
		target, err := netassert.ParseTarget("host:ssh", 22)

		assert.NoError(st, err)
		assert.Equal(st, netassert.Target{Host: "host:ssh", Port: 22}, target)
	})

	t.Run("rejects invalid targets", func(st *testing.T) {
		for _, input := range []string{
			"",
			":22",
			"host:0",
			"host:70000",
			"-oProxyCommand=touch",
			"bad host",
		} {
			_, err := netassert.ParseTarget(input, 22)

			assert.Error(st, err, input)
			assert.True(st, errors.Is(err, exception.ErrInvalidTarget), input)
		}
	})

	t.Run("rejects invalid default port", func(st *testing.T) {
		_, err := netassert.ParseTarget("example.com", 0)

		assert.True(st, errors.Is(err, exception.ErrInvalidTarget))
	})
}
