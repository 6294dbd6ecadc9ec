package service

import (
	"context"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	libraryRepo "github.com/FortunatoE/SistemaBiblioteca/library/internal/repository"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	repo   libraryRepo.Repository
	policy Policy
	audit  Publisher
	tracer trace.Tracer
	now    func() time.Time
}

type Option func(s *Service)

func WithPolicy(p Policy) Option {
	return func(s *Service) { s.policy = p }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.audit = p }
}

// WithClock replaces time.Now; only the calendar date in UTC is used.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo libraryRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		policy: DefaultPolicy(),
		tracer: otel.Tracer("library/service"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.audit == nil {
		s.audit = NewLogPublisher(s.log)
	}
	return s
}

func (s *Service) Policy() Policy {
	return s.policy
}

func (s *Service) today() model.Date {
	return model.NewDate(s.now().UTC())
}

// fail records err on the span and logs it when it is not a domain error.
func (s *Service) fail(span trace.Span, op string, err error) error {
	span.RecordError(err)
	if errs.KindOf(err) == errs.KindInternal {
		span.SetStatus(codes.Error, op)
		s.log.Error(op, zap.Error(err))
	}
	return err
}

func (s *Service) publish(ctx context.Context, ev kafka.AuditEvent) {
	ev.ID = ulid.Make().String()
	ev.OccurredAt = s.now().UTC()
	s.audit.Publish(ctx, ev)
}

func parseDate(field, value string) (model.Date, error) {
	d, err := model.ParseDate(value)
	if err != nil {
		return model.Date{}, errs.Validation("invalid %s %q, expected YYYY-MM-DD", field, value)
	}
	return d, nil
}
