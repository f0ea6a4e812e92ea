package session

import (
	"sync"
	"time"

	"github.com/dd0wney/mstviz/pkg/logging"
)

// player is the cancellable repeating task behind auto-advance: a
// ticker goroutine bound to the session's cursor-advance operation.
type player struct {
	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

// Stop cancels the player. Idempotent: stopping an already-stopped
// player is a no-op, not an error.
func (p *player) Stop() {
	p.once.Do(func() {
		close(p.stop)
	})
}

// Play starts auto-advance at the given speed tier ("slow", "normal"
// or "fast"). No-op without an active trace or with the cursor already
// on the last step. Starting while already playing restarts at the new
// tier.
func (s *Session) Play(tier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trace == nil || s.cursor >= len(s.trace)-1 {
		return
	}

	s.stopPlayerLocked()

	p := &player{
		ticker: time.NewTicker(s.cfg.TierDelay(tier)),
		stop:   make(chan struct{}),
	}
	s.player = p
	s.metrics.RecordPlayback(tier)
	s.logger.Debug("playback started", logging.String("tier", tier))

	go s.runPlayer(p)
}

// Pause stops auto-advance. Safe to call at any time, any number of
// times.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopPlayerLocked()
}

// Playing reports whether auto-advance is currently active.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil
}

func (s *Session) stopPlayerLocked() {
	if s.player != nil {
		s.player.Stop()
		s.player = nil
	}
}

// runPlayer advances the cursor on every tick until the trace ends, the
// player is stopped, or the player is replaced.
func (s *Session) runPlayer(p *player) {
	defer p.ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-p.ticker.C:
			s.mu.Lock()
			// A newer player may have taken over between ticks.
			if s.player != p {
				s.mu.Unlock()
				return
			}
			advanced := s.nextLocked()
			if !advanced {
				s.player = nil
				s.mu.Unlock()
				p.Stop()
				return
			}
			atEnd := s.cursor >= len(s.trace)-1
			if atEnd {
				s.player = nil
			}
			s.mu.Unlock()
			if atEnd {
				p.Stop()
				return
			}
		}
	}
}
