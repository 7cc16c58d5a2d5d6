// Package maintenance runs the hub's periodic background tasks as Go
// tickers: expiring idle sessions and reporting cache and session usage.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// Sessions is the part of the session store the tasks touch. Implemented by
// *app.Store.
type Sessions interface {
	Sweep() int
	Len() int
}

// StatsSource reports cache statistics. Implemented by *cache.Cache.
type StatsSource interface {
	Stats() map[string]interface{}
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	SessionSweepInterval time.Duration // Drop sessions idle past their TTL
	StatsInterval        time.Duration // Log cache + session counts
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		SessionSweepInterval: 5 * time.Minute,
		StatsInterval:        1 * time.Hour,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, sessions Sessions, stats StatsSource, cfg Config, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Maintenance tickers started",
		"session_sweep", cfg.SessionSweepInterval,
		"stats", cfg.StatsInterval)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	if cfg.SessionSweepInterval > 0 {
		t := time.NewTicker(cfg.SessionSweepInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { sweepSessions(sessions, logger) })
	}

	if cfg.StatsInterval > 0 {
		t := time.NewTicker(cfg.StatsInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { reportStats(sessions, stats, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

func sweepSessions(sessions Sessions, logger *slog.Logger) {
	if n := sessions.Sweep(); n > 0 {
		logger.Info("Sessions expired", "removed", n, "remaining", sessions.Len())
	}
}

func reportStats(sessions Sessions, stats StatsSource, logger *slog.Logger) {
	attrs := []any{"sessions", sessions.Len()}
	if stats != nil {
		s := stats.Stats()
		attrs = append(attrs,
			"cache_active_keys", s["active_keys"],
			"cache_hits", s["hits"],
			"cache_misses", s["misses"])
	}
	logger.Info("Usage", attrs...)
}
