package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"freight-booking/internal/app"
	"freight-booking/internal/cli/seeder"
	"freight-booking/internal/config"
	"freight-booking/internal/service/driver"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "seeder:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// flags belong to cobra; config comes from .env and the environment only
	container, err := app.NewContainerBuilder().WithConfig(config.LoadEnv).BuildServices(ctx)
	if err != nil {
		return err
	}
	return container.Invoke(func(svc *driver.Service) error {
		return seeder.NewRootCmd(svc).ExecuteContext(ctx)
	})
}
