package service

import (
	"context"
	"strconv"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"go.uber.org/zap"
)

// Publisher delivers audit events after commit. Delivery is best effort and
// never fails the operation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, ev kafka.AuditEvent)
}

type kafkaPublisher struct {
	enq kafka.Enqueuer
	log *zap.Logger
}

func NewKafkaPublisher(enq kafka.Enqueuer, log *zap.Logger) Publisher {
	return &kafkaPublisher{enq: enq, log: log.Named("audit")}
}

func (p *kafkaPublisher) Publish(_ context.Context, ev kafka.AuditEvent) {
	key := strconv.FormatInt(ev.BookID, 10)
	if err := p.enq.Enqueue(kafka.AuditTopic, key, ev); err != nil {
		p.log.Warn("audit event dropped",
			zap.String("action", string(ev.Action)),
			zap.String("id", ev.ID),
			zap.Error(err))
	}
}

type logPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) Publisher {
	return &logPublisher{log: log.Named("audit")}
}

func (p *logPublisher) Publish(_ context.Context, ev kafka.AuditEvent) {
	p.log.Info("audit",
		zap.String("action", string(ev.Action)),
		zap.String("id", ev.ID),
		zap.Int64("loan_id", ev.LoanID),
		zap.Int64("reservation_id", ev.ReservationID),
		zap.Int64("patron_id", ev.PatronID),
		zap.Int64("book_id", ev.BookID),
		zap.String("amount", ev.Amount))
}
