// Package server wires the event-driven daemon components together.
package server

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vidkeep/vidkeep/internal/events"
	"github.com/vidkeep/vidkeep/internal/library"
	"github.com/vidkeep/vidkeep/internal/session"
	"github.com/vidkeep/vidkeep/internal/watcher"
)

// Config for the event-driven server.
type Config struct {
	LibraryRoot  string
	Debounce     time.Duration
	EventsRetain int
}

// Runner manages the daemon's long-running components: the event bus, the
// browsing session, and the library watcher.
type Runner struct {
	db     *sql.DB
	config Config
	logger *slog.Logger

	store    *library.Store
	eventLog *events.EventLog
	bus      *events.Bus
	session  *session.Session
	watcher  *watcher.Watcher
}

// NewRunner creates a new runner. Components are constructed immediately so
// callers can wire the API before Run starts them.
func NewRunner(db *sql.DB, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	store := library.NewStore(db)
	eventLog := events.NewEventLog(db)
	bus := events.NewBus(eventLog, logger.With("component", "bus"))
	sess := session.New(store, bus, logger.With("component", "session"))
	w := watcher.New(cfg.LibraryRoot, store, bus, logger.With("component", "watcher"), cfg.Debounce)

	return &Runner{
		db:       db,
		config:   cfg,
		logger:   logger,
		store:    store,
		eventLog: eventLog,
		bus:      bus,
		session:  sess,
		watcher:  w,
	}
}

// Store returns the catalog store.
func (r *Runner) Store() *library.Store { return r.store }

// EventLog returns the persistent event log.
func (r *Runner) EventLog() *events.EventLog { return r.eventLog }

// Bus returns the event bus.
func (r *Runner) Bus() *events.Bus { return r.bus }

// Session returns the browsing session.
func (r *Runner) Session() *session.Session { return r.session }

// Run scans the library once, loads the session, then runs the watcher and
// the session's notification loop until the context is canceled. Context
// cancellation is a clean shutdown, not an error.
//
// The scan runs before the load so the catalog the session seeds from
// already includes files that appeared while the daemon was down; the scan's
// own notifications replay as no-ops once the loop starts.
func (r *Runner) Run(ctx context.Context) error {
	defer r.bus.Close()

	if err := r.watcher.Scan(ctx); err != nil {
		return err
	}
	if err := r.session.Load(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.watcher.Run(ctx) })
	g.Go(func() error { return r.session.Run(ctx) })
	if r.config.EventsRetain > 0 {
		g.Go(func() error { return r.trimEvents(ctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// trimEvents caps the persistent event log at the configured size, once at
// startup and then hourly. A failed trim is logged, not fatal.
func (r *Runner) trimEvents(ctx context.Context) error {
	trim := func() {
		n, err := r.eventLog.Trim(r.config.EventsRetain)
		if err != nil {
			r.logger.Warn("event log trim failed", "error", err)
			return
		}
		if n > 0 {
			r.logger.Debug("trimmed event log", "removed", n, "retain", r.config.EventsRetain)
		}
	}

	trim()
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			trim()
		}
	}
}
