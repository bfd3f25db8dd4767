package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/nando-castro/api-financas/internal/config"
	"github.com/nando-castro/api-financas/internal/dto"
)

const publishTimeout = 5 * time.Second

// ErrDeliveriesClosed is returned by Consume when the broker closes the
// delivery channel.
var ErrDeliveriesClosed = errors.New("delivery channel closed")

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Client owns one AMQP connection and channel bound to the mail queue.
type Client struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	publisher publisher
	exchange  string
	queue     string
	logger    *slog.Logger
	now       func() time.Time
}

// NewClient dials the broker and declares the direct exchange and the
// durable mail queue bound to it.
func NewClient(cfg *config.MessagingConfig, logger *slog.Logger) (*Client, error) {
	conn, err := amqp091.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	c := &Client{
		conn:      conn,
		channel:   channel,
		publisher: channel,
		exchange:  cfg.Exchange,
		queue:     cfg.MailQueue,
		logger:    logger,
		now:       time.Now,
	}

	if err := c.setup(); err != nil {
		c.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return c, nil
}

func (c *Client) setup() error {
	if err := c.channel.ExchangeDeclare(c.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := c.channel.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	// routing key equals the queue name on a direct exchange
	if err := c.channel.QueueBind(c.queue, c.queue, c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishPasswordReset queues a reset mail for the mailer process.
func (c *Client) PublishPasswordReset(ctx context.Context, msg dto.PasswordResetMessage) error {
	body, err := encodePasswordReset(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.publisher.PublishWithContext(ctx, c.exchange, c.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Type:         TypePasswordReset,
		Timestamp:    c.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	c.logger.InfoContext(ctx, "published password reset mail",
		"exchange", c.exchange,
		"queue", c.queue)
	return nil
}

// ConsumePasswordResets blocks handing each reset message to handler until
// ctx is cancelled or the broker closes the channel.
func (c *Client) ConsumePasswordResets(ctx context.Context, handler func(context.Context, dto.PasswordResetMessage) error) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}

	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.InfoContext(ctx, "started consuming mail queue", "queue", c.queue)
	return consume(ctx, c.logger, deliveries, handler)
}

func consume(ctx context.Context, logger *slog.Logger, deliveries <-chan amqp091.Delivery, handler func(context.Context, dto.PasswordResetMessage) error) error {
	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "stopping mail consumption", "reason", ctx.Err())
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			handleDelivery(ctx, logger, d, handler)
		}
	}
}

// handleDelivery acks on success and drops malformed bodies. A failed send
// is requeued once; a second failure drops the message.
func handleDelivery(ctx context.Context, logger *slog.Logger, d amqp091.Delivery, handler func(context.Context, dto.PasswordResetMessage) error) {
	msg, err := decodePasswordReset(d.Body)
	if err != nil {
		logger.ErrorContext(ctx, "dropping malformed mail message", "error", err)
		settle(ctx, logger, "nack", d.Nack(false, false))
		return
	}

	if err := handler(ctx, msg); err != nil {
		logger.ErrorContext(ctx, "failed to handle mail message",
			"error", err,
			"redelivered", d.Redelivered)
		settle(ctx, logger, "nack", d.Nack(false, !d.Redelivered))
		return
	}

	settle(ctx, logger, "ack", d.Ack(false))
}

func settle(ctx context.Context, logger *slog.Logger, op string, err error) {
	if err != nil {
		logger.WarnContext(ctx, "failed to settle mail delivery", "op", op, "error", err)
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// LogPublisher stands in for the broker when AMQP is not configured. It only
// records that a reset was requested.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishPasswordReset(ctx context.Context, msg dto.PasswordResetMessage) error {
	p.logger.WarnContext(ctx, "AMQP disabled, password reset mail not sent",
		"expires_at", msg.ExpiresAt)
	return nil
}
