// Package server wires the catalog backend together: storage, cache,
// services and the HTTP API, and runs it until a shutdown signal.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/server/cache"
	"github.com/dmitrijs2005/gametracker/internal/server/config"
	"github.com/dmitrijs2005/gametracker/internal/server/handler"
	"github.com/dmitrijs2005/gametracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gametracker/internal/server/router"
	"github.com/dmitrijs2005/gametracker/internal/server/services"
)

// App owns the backend resources: database, cache and HTTP server.
type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	cache  cache.Cache
	http   *http.Server
}

// NewApp opens the database, applies migrations, connects the cache and
// builds the HTTP server. Resources opened before a failure are released.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dialect := c.Dialect()

	db, err := repomanager.Open(ctx, dialect, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewRepositoryManager(dialect)
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	cc, err := cache.New(ctx, cache.Options{
		Type:          c.CacheType,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache init error: %w", err)
	}

	svc := services.NewCatalogService(db, rm, cc, c.CacheTTL, logger)
	mux := router.New(router.Config{
		Handler:        handler.New(svc, logger),
		Logger:         logger,
		AllowedOrigins: c.AllowedOrigins,
	})

	logger.Info(ctx, "storage ready", "driver", string(dialect), "cache", c.CacheType)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		cache:  cc,
		http: &http.Server{
			Addr:              c.ListenAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// serve listens on the configured address and blocks until ctx is done,
// then shuts the server down gracefully.
func (app *App) serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.http.Addr)
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())
		errc <- app.http.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	return app.http.Shutdown(shutdownCtx)
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the cache and the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.serve(ctx); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			runErr = err
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.cache.Close(); err != nil {
		app.logger.Warn(ctx, "cache close error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close error", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
	return runErr
}
