package service

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/model"
	auditRepo "github.com/FortunatoE/SistemaBiblioteca/audit/internal/repository"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

var (
	ErrInvalidEvent  = errors.New("invalid audit event")
	ErrInvalidAction = errors.New("invalid action")
)

var knownActions = map[kafka.Action]struct{}{
	kafka.ActionLoanOpened:           {},
	kafka.ActionLoanClosed:           {},
	kafka.ActionFineWaived:           {},
	kafka.ActionFinePaid:             {},
	kafka.ActionReservationCreated:   {},
	kafka.ActionReservationUpdated:   {},
	kafka.ActionReservationCancelled: {},
}

type Service struct {
	log  *zap.Logger
	repo auditRepo.Repository
}

func NewService(repo auditRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

// Record stores one consumed event.
func (s *Service) Record(ctx context.Context, ev kafka.AuditEvent) error {
	if ev.ID == "" || ev.OccurredAt.IsZero() {
		return errors.Wrap(ErrInvalidEvent, "missing id or timestamp")
	}
	if _, ok := knownActions[ev.Action]; !ok {
		return errors.Wrapf(ErrInvalidEvent, "unknown action %q", ev.Action)
	}
	return s.repo.Store(ctx, ev)
}

// List returns the newest events first.
func (s *Service) List(ctx context.Context, f model.Filter) (model.EventList, error) {
	if f.Action != "" {
		if _, ok := knownActions[kafka.Action(f.Action)]; !ok {
			return model.EventList{}, errors.Wrapf(ErrInvalidAction, "%q", f.Action)
		}
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	events, err := s.repo.List(ctx, f)
	if err != nil {
		return model.EventList{}, err
	}
	if events == nil {
		events = []model.Event{}
	}
	return model.EventList{Items: events}, nil
}
