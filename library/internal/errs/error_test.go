package errs_test

import (
	"fmt"
	"testing"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "not found", err: errs.NotFound("loan %d not found", 3), want: errs.KindNotFound},
		{name: "wrapped validation", err: errors.Wrap(errs.Validation("bad date"), "service"), want: errs.KindValidation},
		{name: "fmt wrapped conflict", err: fmt.Errorf("tx: %w", errs.Conflict("no copies available")), want: errs.KindConflict},
		{name: "sentinel", err: errs.ErrNotFound, want: errs.KindNotFound},
		{name: "other", err: errors.New("connection reset"), want: errs.KindInternal},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestError_Message(t *testing.T) {
	t.Parallel()
	err := errs.Conflict("patron %d already has book %d on loan", 1, 2)
	require.EqualError(t, err, "patron 1 already has book 2 on loan")
	require.ErrorIs(t, err, errs.ErrConflict)
	require.NotErrorIs(t, err, errs.ErrNotFound)
}
