package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/model"
	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/service"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/FortunatoE/SistemaBiblioteca/audit/internal/repository/mocks"
)

func TestService_Record(t *testing.T) {
	t.Parallel()
	valid := kafka.AuditEvent{
		ID:         "01HZX3",
		OccurredAt: time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC),
		Action:     kafka.ActionFinePaid,
		LoanID:     7,
		PatronID:   3,
		BookID:     2,
		Amount:     "40.00",
	}

	tests := []struct {
		name    string
		ev      func() kafka.AuditEvent
		store   bool
		wantErr error
	}{
		{
			name:  "ok",
			ev:    func() kafka.AuditEvent { return valid },
			store: true,
		},
		{
			name:    "missing id",
			ev:      func() kafka.AuditEvent { ev := valid; ev.ID = ""; return ev },
			wantErr: service.ErrInvalidEvent,
		},
		{
			name:    "unknown action",
			ev:      func() kafka.AuditEvent { ev := valid; ev.Action = "book_burned"; return ev },
			wantErr: service.ErrInvalidEvent,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			repo := repo_mocks.NewMockRepository(c)
			svc := service.NewService(repo, zap.NewExample().Named("test"))
			ev := tt.ev()
			if tt.store {
				repo.EXPECT().Store(gomock.Any(), ev).Return(nil)
			}

			err := svc.Record(context.Background(), ev)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_List(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewService(repo, zap.NewExample().Named("test"))
		repo.EXPECT().List(gomock.Any(), model.Filter{PatronID: 3, Limit: 50}).Return(nil, nil)

		list, err := svc.List(context.Background(), model.Filter{PatronID: 3})
		require.NoError(t, err)
		require.NotNil(t, list.Items)
		require.Empty(t, list.Items)
	})

	t.Run("limit capped", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewService(repo, zap.NewExample().Named("test"))
		repo.EXPECT().List(gomock.Any(), model.Filter{Action: "loan_opened", Limit: 500}).
			Return([]model.Event{{ID: "a", Action: "loan_opened"}}, nil)

		list, err := svc.List(context.Background(), model.Filter{Action: "loan_opened", Limit: 10000})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
	})

	t.Run("unknown action", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		svc := service.NewService(repo_mocks.NewMockRepository(c), zap.NewExample().Named("test"))
		_, err := svc.List(context.Background(), model.Filter{Action: "nope"})
		require.ErrorIs(t, err, service.ErrInvalidAction)
	})
}
