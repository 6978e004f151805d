package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/dig"

	"freight-booking/internal/logx"
	"freight-booking/internal/transport/kafka"
)

// WorkerRunner runs the payment callback consumer.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes callbacks until shutdown; other errors panic.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		st *storeSet,
		logger logx.Logger,
		consumer *kafka.Consumer,
		ns *notifierSet,
	) error {
		return workerRun(ctx, st, logger, consumer, ns)
	})
}

func workerRun(
	ctx context.Context,
	st *storeSet,
	logger logx.Logger,
	consumer *kafka.Consumer,
	ns *notifierSet,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(st, logger, consumer, ns)

	logger.Info("booking worker started")
	return consumer.Run(ctx)
}

func closeWorker(st *storeSet, logger logx.Logger, consumer *kafka.Consumer, ns *notifierSet) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if err := ns.Close(); err != nil {
		logger.Error("notifier close error", logx.Err(err))
	}
	st.Close()
}
