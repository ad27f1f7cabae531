// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-stego-channel/internal/logger"
)

// DefaultSweepInterval is used when the configured interval is not positive.
const DefaultSweepInterval = time.Minute

type sessionSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSessionSweeper returns a Worker that calls sweeper.Sweep every
// interval, dropping abandoned handshakes and secrets nobody took. The
// worker is idle until Run is called.
func NewSessionSweeper(sweeper Sweeper, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &sessionSweeper{
		sweeper:  sweeper,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run implements Worker. A running sweeper is stopped first, so Run never
// leaves two tickers behind.
func (s *sessionSweeper) Run(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.sweep()
			}
		}
	}()

	s.logger.Info().
		Str("func", "sessionSweeper.Run").
		Dur("interval", s.interval).
		Msg("session sweeper started")
}

// Stop implements Worker.
func (s *sessionSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *sessionSweeper) sweep() {
	removed := s.sweeper.Sweep(s.now())
	if removed == 0 {
		return
	}
	s.logger.Debug().
		Str("func", "sessionSweeper.sweep").
		Int("removed", removed).
		Int("remaining", s.sweeper.Len()).
		Msg("expired key exchange sessions removed")
}
