package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nando-castro/api-financas/internal/dto"
)

type scriptedPublisher struct {
	errs  []error
	calls int
}

func (p *scriptedPublisher) PublishPasswordReset(context.Context, dto.PasswordResetMessage) error {
	p.calls++
	if len(p.errs) == 0 {
		return nil
	}
	err := p.errs[0]
	p.errs = p.errs[1:]
	return err
}

func newTestBreaker(next passwordResetPublisher, clock *time.Time) *BreakingPublisher {
	b := NewBreakingPublisher(next, BreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenSuccesses: 1})
	b.now = func() time.Time { return *clock }
	return b
}

func TestBreakingPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("connection reset")
	next := &scriptedPublisher{errs: []error{boom, boom}}
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(next, &clock)

	assert.ErrorIs(t, b.PublishPasswordReset(context.Background(), sampleMessage()), boom)
	assert.Equal(t, BreakerClosed, b.State())
	assert.ErrorIs(t, b.PublishPasswordReset(context.Background(), sampleMessage()), boom)
	assert.Equal(t, BreakerOpen, b.State())

	assert.ErrorIs(t, b.PublishPasswordReset(context.Background(), sampleMessage()), ErrBrokerUnavailable)
	assert.Equal(t, 2, next.calls)
}

func TestBreakingPublisher_SuccessResetsFailureCount(t *testing.T) {
	boom := errors.New("timeout")
	next := &scriptedPublisher{errs: []error{boom, nil, boom}}
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(next, &clock)

	for i := 0; i < 3; i++ {
		_ = b.PublishPasswordReset(context.Background(), sampleMessage())
	}

	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreakingPublisher_HalfOpenProbe(t *testing.T) {
	boom := errors.New("refused")
	next := &scriptedPublisher{errs: []error{boom, boom, boom}}
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(next, &clock)

	_ = b.PublishPasswordReset(context.Background(), sampleMessage())
	_ = b.PublishPasswordReset(context.Background(), sampleMessage())
	assert.Equal(t, BreakerOpen, b.State())

	clock = clock.Add(2 * time.Minute)
	assert.ErrorIs(t, b.PublishPasswordReset(context.Background(), sampleMessage()), boom)
	assert.Equal(t, BreakerOpen, b.State(), "failed probe reopens")

	clock = clock.Add(2 * time.Minute)
	assert.NoError(t, b.PublishPasswordReset(context.Background(), sampleMessage()))
	assert.Equal(t, BreakerClosed, b.State())
	assert.Equal(t, 4, next.calls)
}

func TestBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", BreakerClosed.String())
	assert.Equal(t, "open", BreakerOpen.String())
	assert.Equal(t, "half-open", BreakerHalfOpen.String())
}
