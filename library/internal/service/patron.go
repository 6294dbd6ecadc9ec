package service

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
)

func validRole(r model.Role) bool {
	switch r {
	case model.RoleStudent, model.RoleFaculty, model.RoleStaff:
		return true
	}
	return false
}

func (s *Service) CreatePatron(ctx context.Context, in model.PatronInput) (model.Patron, error) {
	if !validRole(in.Role) {
		return model.Patron{}, errs.Validation("invalid role %q, must be one of student, faculty, staff", in.Role)
	}
	return s.repo.CreatePatron(ctx, in)
}

func (s *Service) GetPatron(ctx context.Context, id int64) (model.Patron, error) {
	return s.repo.GetPatron(ctx, id)
}

func (s *Service) ListPatrons(ctx context.Context, f model.PatronFilter) ([]model.Patron, error) {
	if f.Role != "" && !validRole(f.Role) {
		return nil, errs.Validation("invalid role %q", f.Role)
	}
	return s.repo.ListPatrons(ctx, f)
}

func (s *Service) UpdatePatron(ctx context.Context, id int64, in model.PatronInput) (model.Patron, error) {
	if !validRole(in.Role) {
		return model.Patron{}, errs.Validation("invalid role %q, must be one of student, faculty, staff", in.Role)
	}
	return s.repo.UpdatePatron(ctx, id, in)
}

// DeactivatePatron soft-deletes; loan and reservation history stays intact.
func (s *Service) DeactivatePatron(ctx context.Context, id int64) error {
	return s.repo.DeactivatePatron(ctx, id)
}
