package handler

import (
	"context"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type record func(ctx context.Context, ev kafka.AuditEvent) error

const (
	defaultStoreAttempts = 3
	defaultRetryBackoff  = 500 * time.Millisecond
)

type Consumer struct {
	recordHandler record
	log           *zap.Logger
	ready         chan bool
	attempts      int
	backoff       time.Duration
}

type ConsumerOption func(*Consumer)

// WithRetry sets how many times a store is attempted and the initial delay
// between attempts. The delay doubles after every failure.
func WithRetry(attempts int, backoff time.Duration) ConsumerOption {
	return func(c *Consumer) {
		if attempts > 0 {
			c.attempts = attempts
		}
		c.backoff = backoff
	}
}

func NewConsumer(record record, log *zap.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
		attempts:      defaultStoreAttempts,
		backoff:       defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks poison messages so they are skipped. A store that keeps
// failing ends the claim without marking the message: offsets commit
// cumulatively, so the session has to restart from the last committed offset
// for the event to be delivered again.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			ev, err := kafka.DecodeAuditEvent(message.Value)
			if err != nil {
				consumer.log.Error("decode audit event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}

			if err = consumer.store(session.Context(), ev); err != nil {
				consumer.log.Error("consumer.recordHandler", zap.String("id", ev.ID), zap.Int64("offset", message.Offset), zap.Error(err))
				return errors.Wrapf(err, "store event %s at offset %d", ev.ID, message.Offset)
			}

			consumer.log.Debug("Message claimed:", zap.String("action", string(ev.Action)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) store(ctx context.Context, ev kafka.AuditEvent) error {
	delay := consumer.backoff
	var err error
	for attempt := 1; ; attempt++ {
		if err = consumer.recordHandler(ctx, ev); err == nil {
			return nil
		}
		if attempt >= consumer.attempts {
			return err
		}
		consumer.log.Warn("store failed, retrying", zap.String("id", ev.ID), zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return err
		}
		delay *= 2
	}
}
