package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"freight-booking/internal/logx"
	"freight-booking/internal/repository/memory"
	testlog "freight-booking/internal/testutil"
)

func containerWithLogger(t *testing.T, l logx.Logger) *dig.Container {
	t.Helper()
	c := dig.New()
	require.NoError(t, c.Provide(func() logx.Logger { return l }))
	return c
}

func TestRunner_MustRun_ShutdownRequested(t *testing.T) {
	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return context.Canceled }}

	r.MustRun(containerWithLogger(t, rec.Logger()))
	require.True(t, rec.Has("info", "shutdown requested, exiting"))
}

func TestRunner_MustRun_StartupTimeout(t *testing.T) {
	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return context.DeadlineExceeded }}

	r.MustRun(containerWithLogger(t, rec.Logger()))
	require.True(t, rec.Has("warn", "startup aborted: startup timeout exceeded"))
}

func TestRunner_MustRun_OtherErrorExits(t *testing.T) {
	orig := exit
	t.Cleanup(func() { exit = orig })
	code := -1
	exit = func(c int) { code = c }

	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return errors.New("boom") }}

	r.MustRun(containerWithLogger(t, rec.Logger()))
	require.Equal(t, 1, code)
	require.True(t, rec.Has("error", "run error"))
}

func TestNewRunner_DefaultFields(t *testing.T) {
	r := NewRunner()
	require.NotNil(t, r.runFn)
	require.Equal(t, fmt.Sprintf("%p", run), fmt.Sprintf("%p", r.runFn))
}

func TestGracefulShutdown_DoesNotPanic(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	require.NotPanics(t, func() {
		gracefulShutdown(srv, logx.Nop(), 100*time.Millisecond)
	})
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	closed := false
	m := memory.New()
	rec := testlog.New()

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return ctx }))
	require.NoError(t, c.Provide(func() logx.Logger { return rec.Logger() }))
	require.NoError(t, c.Provide(func() *http.Server {
		return &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	}))
	require.NoError(t, c.Provide(func() *storeSet {
		return &storeSet{booking: m, drivers: m, dashboard: m, pinger: m, close: func() { closed = true }}
	}))
	require.NoError(t, c.Provide(func() *notifierSet { return &notifierSet{} }))

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := run(c)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, closed)
	require.True(t, rec.Has("info", "shutting down"))
}
