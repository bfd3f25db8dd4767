package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nando-castro/api-financas/internal/dto"
)

type recordedPublish struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakePublisher struct {
	calls []recordedPublish
	err   error
}

func (f *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	f.calls = append(f.calls, recordedPublish{exchange: exchange, key: key, msg: msg})
	return f.err
}

type ackCall struct {
	acked   bool
	requeue bool
}

type fakeAcknowledger struct {
	calls []ackCall
	err   error
}

func (f *fakeAcknowledger) Ack(uint64, bool) error {
	f.calls = append(f.calls, ackCall{acked: true})
	return f.err
}

func (f *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	f.calls = append(f.calls, ackCall{requeue: requeue})
	return f.err
}

func (f *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	f.calls = append(f.calls, ackCall{requeue: requeue})
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleMessage() dto.PasswordResetMessage {
	return dto.PasswordResetMessage{
		Email:     gofakeit.Email(),
		Name:      gofakeit.Name(),
		Token:     gofakeit.UUID(),
		ExpiresAt: time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC),
	}
}

func delivery(t *testing.T, ack *fakeAcknowledger, msg any, redelivered bool) amqp091.Delivery {
	t.Helper()
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	return amqp091.Delivery{Acknowledger: ack, Body: body, Redelivered: redelivered}
}

func TestPublishPasswordReset(t *testing.T) {
	pub := &fakePublisher{}
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	client := &Client{
		publisher: pub,
		exchange:  "financas",
		queue:     "financas.mail",
		logger:    discardLogger(),
		now:       func() time.Time { return fixed },
	}
	msg := sampleMessage()

	require.NoError(t, client.PublishPasswordReset(context.Background(), msg))

	require.Len(t, pub.calls, 1)
	call := pub.calls[0]
	assert.Equal(t, "financas", call.exchange)
	assert.Equal(t, "financas.mail", call.key)
	assert.Equal(t, "application/json", call.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, call.msg.DeliveryMode)
	assert.Equal(t, TypePasswordReset, call.msg.Type)
	assert.Equal(t, fixed, call.msg.Timestamp)

	decoded, err := decodePasswordReset(call.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, msg.Email, decoded.Email)
	assert.Equal(t, msg.Token, decoded.Token)
	assert.True(t, msg.ExpiresAt.Equal(decoded.ExpiresAt))
}

func TestPublishPasswordReset_BrokerError(t *testing.T) {
	brokerErr := errors.New("channel/connection is not open")
	client := &Client{
		publisher: &fakePublisher{err: brokerErr},
		logger:    discardLogger(),
		now:       time.Now,
	}

	err := client.PublishPasswordReset(context.Background(), sampleMessage())

	assert.ErrorIs(t, err, brokerErr)
}

func TestHandleDelivery(t *testing.T) {
	handlerErr := errors.New("smtp down")

	tests := []struct {
		name        string
		body        any
		redelivered bool
		handlerErr  error
		wantCalled  bool
		want        ackCall
	}{
		{name: "success acks", body: sampleMessage(), wantCalled: true, want: ackCall{acked: true}},
		{name: "first failure requeues", body: sampleMessage(), handlerErr: handlerErr, wantCalled: true, want: ackCall{requeue: true}},
		{name: "second failure drops", body: sampleMessage(), redelivered: true, handlerErr: handlerErr, wantCalled: true, want: ackCall{}},
		{name: "missing token drops", body: map[string]string{"email": "a@b.com"}, want: ackCall{}},
		{name: "not json drops", body: "plain text", want: ackCall{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAcknowledger{}
			called := false
			handler := func(context.Context, dto.PasswordResetMessage) error {
				called = true
				return tt.handlerErr
			}

			handleDelivery(context.Background(), discardLogger(), delivery(t, ack, tt.body, tt.redelivered), handler)

			assert.Equal(t, tt.wantCalled, called)
			require.Len(t, ack.calls, 1)
			assert.Equal(t, tt.want, ack.calls[0])
		})
	}
}

func TestHandleDelivery_LogsSettleFailures(t *testing.T) {
	closed := errors.New("channel/connection is not open")

	tests := []struct {
		name   string
		body   any
		wantOp string
	}{
		{name: "ack", body: sampleMessage(), wantOp: "op=ack"},
		{name: "nack", body: "plain text", wantOp: "op=nack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&out, nil))
			ack := &fakeAcknowledger{err: closed}

			handleDelivery(context.Background(), logger, delivery(t, ack, tt.body, false),
				func(context.Context, dto.PasswordResetMessage) error { return nil })

			assert.Contains(t, out.String(), "level=WARN")
			assert.Contains(t, out.String(), "failed to settle mail delivery")
			assert.Contains(t, out.String(), tt.wantOp)
			assert.Contains(t, out.String(), closed.Error())
		})
	}
}

func TestConsume_StopsWhenChannelCloses(t *testing.T) {
	deliveries := make(chan amqp091.Delivery, 2)
	ack := &fakeAcknowledger{}
	deliveries <- delivery(t, ack, sampleMessage(), false)
	deliveries <- delivery(t, ack, sampleMessage(), false)
	close(deliveries)

	var handled int
	err := consume(context.Background(), discardLogger(), deliveries, func(context.Context, dto.PasswordResetMessage) error {
		handled++
		return nil
	})

	assert.ErrorIs(t, err, ErrDeliveriesClosed)
	assert.Equal(t, 2, handled)
	assert.Len(t, ack.calls, 2)
}

func TestConsume_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := consume(ctx, discardLogger(), make(chan amqp091.Delivery), func(context.Context, dto.PasswordResetMessage) error {
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogPublisher(t *testing.T) {
	assert.NoError(t, NewLogPublisher(discardLogger()).PublishPasswordReset(context.Background(), sampleMessage()))
}
