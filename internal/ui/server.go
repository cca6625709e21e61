// Package ui provides the web dashboard server.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/datavisbr/painel-salarios/internal/dataset"
	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/translate"
	"github.com/datavisbr/painel-salarios/internal/ui/notifier"
	"github.com/datavisbr/painel-salarios/internal/ui/router"
)

// Server is the dashboard server. It owns the dataset cache and the
// analytical store; every connected session reads from the same store.
type Server struct {
	store      *store.Store
	cache      *dataset.Cache
	dataFile   string
	port       int
	watch      bool
	tableLimit int
	logger     *slog.Logger
	notifier   *notifier.Notifier
}

// Config holds configuration for the dashboard server.
type Config struct {
	Store      *store.Store
	Cache      *dataset.Cache
	DataFile   string
	Port       int
	Watch      bool
	TableLimit int
	Logger     *slog.Logger
}

// NewServer creates a new dashboard server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		store:      cfg.Store,
		cache:      cfg.Cache,
		dataFile:   cfg.DataFile,
		port:       cfg.Port,
		watch:      cfg.Watch,
		tableLimit: cfg.TableLimit,
		logger:     logger,
		notifier:   notifier.New(),
	}
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// Serve starts the dashboard server and blocks until the context is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dashboard server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.store, s.notifier, s.tableLimit); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Reload the dataset when the local source file changes
	if s.watch && s.dataFile != "" {
		eg.Go(func() error {
			return s.watchDataFile(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchDataFile watches the local CSV for changes and refreshes the store.
func (s *Server) watchDataFile(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory; editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(s.dataFile)); err != nil {
		s.logger.Error("failed to watch dataset file", "error", err)
		// Continue without watching
		return nil
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.dataFile) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(200*time.Millisecond, func() {
				s.logger.Debug("dataset file changed, reloading", "file", event.Name)
				if err := s.Reload(context.Background()); err != nil {
					s.logger.Error("reload failed", "error", err)
					return
				}
				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// Reload drops the dataset cache and rebuilds the salary table.
func (s *Server) Reload(ctx context.Context) error {
	s.cache.Invalidate()

	snap, err := s.cache.Load(ctx)
	if err != nil {
		return err
	}
	return s.store.Load(ctx, translate.ApplyAll(snap.Records))
}
