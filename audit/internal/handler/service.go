package handler

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/model"
	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/service"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuditService interface {
	List(ctx context.Context, f model.Filter) (model.EventList, error)
	Record(ctx context.Context, ev kafka.AuditEvent) error
}

var _ AuditService = (*service.Service)(nil)
