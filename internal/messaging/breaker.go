package messaging

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nando-castro/api-financas/internal/dto"
)

// ErrBrokerUnavailable is returned without touching the broker while the
// breaker is open.
var ErrBrokerUnavailable = errors.New("mail broker unavailable")

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

type BreakerConfig struct {
	MaxFailures       int
	ResetTimeout      time.Duration
	HalfOpenSuccesses int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 2,
	}
}

type passwordResetPublisher interface {
	PublishPasswordReset(ctx context.Context, msg dto.PasswordResetMessage) error
}

// BreakingPublisher stops calling a failing broker after MaxFailures
// consecutive errors and probes it again once ResetTimeout has passed.
type BreakingPublisher struct {
	next   passwordResetPublisher
	config BreakerConfig
	now    func() time.Time

	mu          sync.Mutex
	state       BreakerState
	failures    int
	successes   int
	lastFailure time.Time
}

func NewBreakingPublisher(next passwordResetPublisher, config BreakerConfig) *BreakingPublisher {
	return &BreakingPublisher{next: next, config: config, now: time.Now}
}

func (b *BreakingPublisher) PublishPasswordReset(ctx context.Context, msg dto.PasswordResetMessage) error {
	if !b.allow() {
		return ErrBrokerUnavailable
	}

	if err := b.next.PublishPasswordReset(ctx, msg); err != nil {
		b.recordFailure()
		return err
	}
	b.recordSuccess()
	return nil
}

func (b *BreakingPublisher) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *BreakingPublisher) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen && b.now().Sub(b.lastFailure) > b.config.ResetTimeout {
		b.state = BreakerHalfOpen
		b.successes = 0
	}
	return b.state != BreakerOpen
}

func (b *BreakingPublisher) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailure = b.now()
	switch b.state {
	case BreakerHalfOpen:
		b.state = BreakerOpen
	case BreakerClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = BreakerOpen
		}
	}
}

func (b *BreakingPublisher) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		b.successes++
		if b.successes >= b.config.HalfOpenSuccesses {
			b.state = BreakerClosed
			b.failures = 0
			b.successes = 0
		}
	case BreakerClosed:
		b.failures = 0
	}
}
