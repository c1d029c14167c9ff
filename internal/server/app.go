// Package server wires the stores, services and listeners of the flower
// shop backend and runs them until the process is asked to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/lucy1234dev/server/internal/logging"
	"github.com/lucy1234dev/server/internal/server/api"
	"github.com/lucy1234dev/server/internal/server/config"
	"github.com/lucy1234dev/server/internal/server/notify"
	"github.com/lucy1234dev/server/internal/server/services"
	"github.com/lucy1234dev/server/internal/server/store"

	gs "github.com/lucy1234dev/server/internal/server/grpc"
)

var logOutput io.Writer = os.Stdout

type App struct {
	config  *config.Config
	logger  logging.Logger
	http    *api.HTTPServer
	health  *gs.HealthServer
	closers []func() error
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(logOutput, c.LogLevel)
	ctx := context.Background()

	backend, closeBackend, err := store.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	notifier, closeNotifier, err := notify.New(c, logger)
	if err != nil {
		_ = closeBackend()
		return nil, fmt.Errorf("notifier init error: %w", err)
	}

	as := services.NewAccountService(backend, notifier, logger, c)
	ps := services.NewProductService(backend, logger)

	app := &App{
		config:  c,
		logger:  logger,
		http:    api.NewHTTPServer(c, logger, as, ps),
		closers: []func() error{closeNotifier, closeBackend},
	}
	if c.HealthAddrGRPC != "" {
		app.health = gs.NewHealthServer(c.HealthAddrGRPC, logger)
	}

	logger.Info(ctx, "app initialized", "store", c.StoreBackend, "notifier", c.Notifier)
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHealthServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.health.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a signal arrives, ctx is done or a listener fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.health != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startHealthServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}

// Close releases store connections and notifier writers.
func (app *App) Close() error {
	var errs []error
	for _, c := range app.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
