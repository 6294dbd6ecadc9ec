package service

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/shopspring/decimal"
)

// ListFines classifies every loan carrying fine state; loans with no fine are left out.
func (s *Service) ListFines(ctx context.Context, f model.FineFilter) (model.FineReport, error) {
	switch f.Status {
	case "", model.FinePending, model.FinePaid, model.FineWaived:
	default:
		return model.FineReport{}, errs.Validation("invalid fine status %q, must be one of pending, paid, waived", f.Status)
	}

	today := s.today()
	loans, err := s.repo.ListFineCandidates(ctx, f, today)
	if err != nil {
		return model.FineReport{}, err
	}

	report := model.FineReport{
		Items:        make([]model.FineEntry, 0, len(loans)),
		TotalPending: decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalWaived:  decimal.Zero,
	}
	for _, l := range loans {
		e := s.policy.ClassifyFine(l, today)
		if e.FineStatus == model.FineNone || (f.Status != "" && e.FineStatus != f.Status) {
			continue
		}
		switch e.FineStatus {
		case model.FinePending:
			report.TotalPending = report.TotalPending.Add(e.Amount)
		case model.FinePaid:
			report.TotalPaid = report.TotalPaid.Add(e.Amount)
		case model.FineWaived:
			report.TotalWaived = report.TotalWaived.Add(e.Amount)
		}
		report.Items = append(report.Items, e)
	}
	return report, nil
}
