package application

import (
	"context"
	"time"

	"github.com/PaperMC/website/internal/pkg/shutdown"
	"go.uber.org/zap"
)

// Adapter is a long running component started and stopped with the App,
// such as the HTTP server or the cache eviction subscriber.
type Adapter interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type App struct {
	logger          *zap.Logger
	adapters        []Adapter
	shutdownTimeout time.Duration
}

func New(logger *zap.Logger) *App {
	return &App{
		logger:          logger,
		shutdownTimeout: 5 * time.Second,
	}
}

func (a *App) AddAdapter(adapters ...Adapter) {
	a.adapters = append(a.adapters, adapters...)
}

// WithShutdownTimeout bounds Stop. A non-positive timeout keeps the default.
func (a *App) WithShutdownTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	a.shutdownTimeout = timeout
}

// Run starts every adapter and blocks until a termination signal arrives.
func (a *App) Run(ctx context.Context) {
	for _, adapter := range a.adapters {
		go func(adapter Adapter) {
			if err := adapter.Start(ctx); err != nil {
				a.logger.Fatal("adapter start failed", zap.Error(err))
			}
		}(adapter)
	}

	shutdown.GracefulStop(a.logger, func() {
		a.Stop(ctx)
	})
}

// Stop stops the adapters concurrently, bounded by the shutdown timeout.
func (a *App) Stop(ctx context.Context) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()

	a.logger.Info("shutting down...")

	errCh := make(chan error, len(a.adapters))

	for _, adapter := range a.adapters {
		go func(adapter Adapter) {
			errCh <- adapter.Stop(ctxWithTimeout)
		}(adapter)
	}

	for i := 0; i < len(a.adapters); i++ {
		if err := <-errCh; err != nil {
			a.logger.Error("shutdown failed", zap.Error(err))
		}
	}

	a.logger.Info("graceful stopped")
}
