package reporter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/statbot/internal/common/clock"
	"github.com/KirkDiggler/statbot/internal/snapshot"
)

// service implements the Service interface
type service struct {
	poster   Poster
	clock    clock.Clock
	cooldown time.Duration

	mu       sync.Mutex
	sending  bool
	lastSent time.Time
	hasSent  bool
}

// New creates a new reporter service in the idle state
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Poster == nil {
		return nil, ErrNilPoster
	}
	if cfg.Cooldown < 0 {
		return nil, ErrNegativeCooldown
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	cooldown := cfg.Cooldown
	if cooldown == 0 {
		cooldown = DefaultCooldown
	}

	return &service{
		poster:   cfg.Poster,
		clock:    c,
		cooldown: cooldown,
	}, nil
}

// Report posts a snapshot. Only one send may be in flight, and a new send is
// refused until the cooldown has passed since the previous one finished.
// A failed post still starts the cooldown.
func (s *service) Report(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, ErrNilSnapshot
	}

	s.mu.Lock()
	switch s.stateLocked() {
	case StateSending:
		s.mu.Unlock()
		return nil, ErrBusy
	case StateCoolingDown:
		s.mu.Unlock()
		return nil, ErrCoolingDown
	}
	s.sending = true
	s.mu.Unlock()

	content := snapshot.Format(input.Snapshot)
	err := s.poster.Post(ctx, content)

	s.mu.Lock()
	s.sending = false
	s.hasSent = true
	s.lastSent = s.clock.Now()
	sentAt := s.lastSent
	s.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("failed to post report: %w", err)
	}

	return &ReportOutput{
		SentAt:  sentAt,
		Content: content,
	}, nil
}

// State returns the current sender state
func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

func (s *service) stateLocked() State {
	if s.sending {
		return StateSending
	}
	if s.hasSent && s.clock.Now().Sub(s.lastSent) < s.cooldown {
		return StateCoolingDown
	}
	return StateIdle
}
