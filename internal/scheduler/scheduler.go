package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type SessionPurgeProvider interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SessionJanitor periodically removes expired refresh sessions. Expired
// rows are also deleted on sight when presented, the janitor only keeps
// the table from accumulating abandoned ones.
type SessionJanitor struct {
	provider SessionPurgeProvider
	interval time.Duration
}

func NewSessionJanitor(provider SessionPurgeProvider, interval time.Duration) *SessionJanitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionJanitor{provider: provider, interval: interval}
}

func (s *SessionJanitor) Start(ctx context.Context) {
	if s.provider == nil {
		slog.Warn("session janitor skipped: no provider configured")
		return
	}
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		s.run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	}()
}

func (s *SessionJanitor) run(ctx context.Context) {
	purged, err := s.provider.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		slog.Error("purge expired sessions failed", "err", err)
		return
	}
	if purged > 0 {
		slog.Info("expired sessions purged", "count", purged)
	}
}
