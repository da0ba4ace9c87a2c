package netassert_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	mock_netassert "github.com/robgonnella/netassert/internal/mock/netassert"
	mock_report "github.com/robgonnella/netassert/internal/mock/report"
	"github.com/robgonnella/netassert/pkg/netassert"
	"github.com/robgonnella/netassert/pkg/report"
	"github.com/stretchr/testify/assert"
)

func TestSocketLoopback(t *testing.T) {
	ctx := context.Background()

	t.Run("reports open while listening and closed after", func(st *testing.T) {
		collector := report.NewCollector()
		a := netassert.New(testConfig(), collector)

		listener, err := net.Listen("tcp", "127.0.0.1:0")

		if err != nil {
			st.Logf("failed to listen on loopback: %s", err.Error())
			st.FailNow()
		}

		port := listener.Addr().(*net.TCPAddr).Port

		assert.True(st, a.SocketOpen(ctx, "127.0.0.1", port, "port open while listening"))
		assert.False(st, a.SocketClosed(ctx, "127.0.0.1", port, "port closed while listening"))

		listener.Close()

		assert.False(st, a.SocketOpen(ctx, "127.0.0.1", port, "port open after close"))
		assert.True(st, a.SocketClosed(ctx, "127.0.0.1", port, "port closed after close"))

		assert.Len(st, collector.Outcomes, 4)
		assert.Equal(st, fmt.Sprintf("connection to 127.0.0.1:%d succeeded", port), collector.Outcomes[1].Diagnostic)
		assert.Contains(st, collector.Outcomes[2].Diagnostic, "connection to 127.0.0.1:")
	})

	t.Run("treats invalid ports as closed", func(st *testing.T) {
		collector := report.NewCollector()
		a := netassert.New(testConfig(), collector)

		assert.False(st, a.SocketOpen(ctx, "127.0.0.1", 0, "port 0 open"))
		assert.True(st, a.SocketClosed(ctx, "127.0.0.1", 70000, "port 70000 closed"))
		assert.False(st, a.SocketOpen(ctx, "", 80, "empty host open"))
		assert.Len(st, collector.Outcomes, 3)
		assert.Contains(st, collector.Outcomes[0].Diagnostic, "invalid target")
	})
}

func TestSocketDialer(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	ctx := context.Background()

	slowDial := func(delay time.Duration) func(context.Context, string, string) (net.Conn, error) {
		return func(ctx context.Context, network, address string) (net.Conn, error) {
			time.Sleep(delay)
			client, server := net.Pipe()
			server.Close()
			return client, nil
		}
	}

	t.Run("slow accept fails under a small timeout and passes under a larger one", func(st *testing.T) {
		f := newFixture(ctrl, testConfig())

		f.dialer.EXPECT().
			DialContext(gomock.Any(), "tcp", "192.0.2.1:443").
			DoAndReturn(slowDial(time.Millisecond * 100)).
			Times(3)

		f.asserter.SetTimeout(time.Millisecond * 20)

		assert.False(st, f.asserter.SocketOpen(ctx, "192.0.2.1", 443, "open under small timeout"))
		assert.True(st, f.asserter.SocketClosed(ctx, "192.0.2.1", 443, "closed under small timeout"))

		f.asserter.SetTimeout(time.Second * 2)

		assert.True(st, f.asserter.SocketOpen(ctx, "192.0.2.1", 443, "open under larger timeout"))

		assert.Len(st, f.collector.Outcomes, 3)
		assert.Contains(st, f.collector.Outcomes[0].Diagnostic, "probe timed out")
	})

	t.Run("counts refused and unreachable as closed", func(st *testing.T) {
		f := newFixture(ctrl, testConfig())

		f.dialer.EXPECT().
			DialContext(gomock.Any(), "tcp", "192.0.2.1:22").
			Return(nil, &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED})
		f.dialer.EXPECT().
			DialContext(gomock.Any(), "tcp", "192.0.2.1:23").
			Return(nil, &net.OpError{Op: "dial", Net: "tcp", Err: syscall.EHOSTUNREACH})
		f.dialer.EXPECT().
			DialContext(gomock.Any(), "tcp", "192.0.2.1:24").
			Return(nil, errors.New("boom"))

		assert.True(st, f.asserter.SocketClosed(ctx, "192.0.2.1", 22, "refused"))
		assert.True(st, f.asserter.SocketClosed(ctx, "192.0.2.1", 23, "unreachable"))
		assert.True(st, f.asserter.SocketClosed(ctx, "192.0.2.1", 24, "error"))
		assert.Len(st, f.collector.Outcomes, 3)
	})

	t.Run("passes deadline to the dialer", func(st *testing.T) {
		f := newFixture(ctrl, testConfig())

		f.dialer.EXPECT().
			DialContext(gomock.Any(), "tcp", "[2001:db8::1]:80").
			DoAndReturn(func(ctx context.Context, network, address string) (net.Conn, error) {
				deadline, ok := ctx.Deadline()
				assert.True(st, ok)
				assert.WithinDuration(st, time.Now().Add(time.Second), deadline, time.Millisecond*200)
				return nil, errors.New("unreachable")
			})

		assert.False(st, f.asserter.SocketOpen(ctx, "2001:db8::1", 80, "ipv6 open"))
	})

	t.Run("reports exactly once per assertion", func(st *testing.T) {
		mockReporter := mock_report.NewMockReporter(ctrl)
		mockDialer := mock_netassert.NewMockDialer(ctrl)

		a := netassert.New(testConfig(), mockReporter, netassert.WithDialer(mockDialer))

		mockDialer.EXPECT().
			DialContext(gomock.Any(), "tcp", gomock.Any()).
			Return(nil, errors.New("refused")).
			Times(2)

		mockReporter.EXPECT().
			Report(report.Outcome{Passed: false, Description: "open", Diagnostic: "connection to 192.0.2.1:80 failed: refused"}).
			Times(1)
		mockReporter.EXPECT().
			Report(report.Outcome{Passed: true, Description: "closed"}).
			Times(1)

		a.SocketOpen(ctx, "192.0.2.1", 80, "open")
		a.SocketClosed(ctx, "192.0.2.1", 80, "closed")
	})
}
