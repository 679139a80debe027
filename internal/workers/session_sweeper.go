// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
)

const defaultSweepInterval = 10 * time.Minute

// sessionPurger is the part of service.SessionService the sweeper needs.
type sessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionSweeper periodically deletes expired sessions. Expired sessions are
// already rejected on lookup; sweeping only keeps the table small.
type SessionSweeper struct {
	sessions sessionPurger
	interval time.Duration
	logger   *logger.Logger
}

var _ sessionPurger = (service.SessionService)(nil)

// NewSessionSweeper returns a sweeper ticking every interval. A
// non-positive interval falls back to 10 minutes.
func NewSessionSweeper(sessions sessionPurger, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return nil
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one purge. Failures are logged and retried on the next tick.
func (s *SessionSweeper) sweep(ctx context.Context) {
	n, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error purging expired sessions")
		return
	}
	if n > 0 {
		s.logger.Debug().Int64("deleted", n).Msg("expired sessions purged")
	}
}
