package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"go.uber.org/dig"

	"freight-booking/internal/logx"
)

const shutdownTimeout = 15 * time.Second

var exit = os.Exit

// Runner runs the HTTP service from a DI container.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server and blocks until shutdown; other errors exit the process.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := loggerFrom(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		_ = logger.Sync()
		exit(1)
	}
}

func loggerFrom(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

type appIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Server   *http.Server
	Pprof    *http.Server `name:"pprof_server" optional:"true"`
	Store    *storeSet
	Notifier *notifierSet
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in appIn) error {
	defer closeResources(in.Store, in.Notifier, in.Logger)

	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, "http", errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof", errCh)
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down")
		runErr = in.Ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	return runErr
}

func startServer(srv *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("server listening", logx.String("server", name), logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.String("server", name), logx.Err(err))
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(st *storeSet, ns *notifierSet, logger logx.Logger) {
	if err := ns.Close(); err != nil {
		logger.Error("notifier close error", logx.Err(err))
	}
	st.Close()
}
