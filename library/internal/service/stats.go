package service

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTopBorrowed = 10
	defaultSeriesDays  = 30
	maxSeriesDays      = 366
)

var dashboardMetrics = []model.Metric{
	model.MetricBooks,
	model.MetricActiveLoans,
	model.MetricActiveReservations,
	model.MetricOverdueLoans,
	model.MetricActivePatrons,
	model.MetricAvailableCopies,
}

func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	today := s.today()
	vals := make([]int64, len(dashboardMetrics))

	gg, gctx := errgroup.WithContext(ctx)
	for i, m := range dashboardMetrics {
		i, m := i, m
		gg.Go(func() error {
			n, err := s.repo.CountMetric(gctx, m, today)
			vals[i] = n
			return err
		})
	}
	if err := gg.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	return model.Dashboard{
		TotalBooks:         vals[0],
		ActiveLoans:        vals[1],
		ActiveReservations: vals[2],
		OverdueLoans:       vals[3],
		ActivePatrons:      vals[4],
		AvailableCopies:    vals[5],
	}, nil
}

func (s *Service) CollectionStats(ctx context.Context) (model.CollectionStats, error) {
	return s.repo.CollectionStats(ctx)
}

func (s *Service) CategoryDistribution(ctx context.Context) ([]model.CategoryCount, error) {
	return s.repo.CategoryDistribution(ctx)
}

func (s *Service) TopBorrowed(ctx context.Context, limit int) ([]model.BookCount, error) {
	if limit <= 0 {
		limit = defaultTopBorrowed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.TopBorrowed(ctx, limit)
}

func (s *Service) DailyLoans(ctx context.Context, from, to string) ([]model.DailyCount, error) {
	start, end, err := s.dateRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.repo.DailyLoans(ctx, start, end)
}

func (s *Service) FinesCollected(ctx context.Context, from, to string) (model.FinesCollected, error) {
	start, end, err := s.dateRange(from, to)
	if err != nil {
		return model.FinesCollected{}, err
	}
	return s.repo.FinesCollected(ctx, start, end)
}

// dateRange defaults to the last 30 days ending today.
func (s *Service) dateRange(from, to string) (model.Date, model.Date, error) {
	end := s.today()
	if to != "" {
		d, err := parseDate("to", to)
		if err != nil {
			return model.Date{}, model.Date{}, err
		}
		end = d
	}
	start := end.AddDays(-(defaultSeriesDays - 1))
	if from != "" {
		d, err := parseDate("from", from)
		if err != nil {
			return model.Date{}, model.Date{}, err
		}
		start = d
	}
	if start.After(end) {
		return model.Date{}, model.Date{}, errs.Validation("from %s is after to %s", start, end)
	}
	if start.DaysUntil(end) >= maxSeriesDays {
		return model.Date{}, model.Date{}, errs.Validation("date range cannot exceed %d days", maxSeriesDays)
	}
	return start, end, nil
}
