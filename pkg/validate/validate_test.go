package validate_test

import (
	"testing"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	type req struct {
		PatronID int64  `validate:"required,gt=0"`
		Date     string `validate:"omitempty,date"`
		Method   string `validate:"omitempty,oneof=cash card pix transfer"`
	}
	tests := []struct {
		name    string
		in      req
		wantErr bool
	}{
		{name: "ok", in: req{PatronID: 1, Date: "2026-01-31", Method: "pix"}},
		{name: "ok. optional fields", in: req{PatronID: 1}},
		{name: "err. missing patron", in: req{Date: "2026-01-31"}, wantErr: true},
		{name: "err. bad date", in: req{PatronID: 1, Date: "31/01/2026"}, wantErr: true},
		{name: "err. bad method", in: req{PatronID: 1, Method: "cheque"}, wantErr: true},
	}
	v := validate.NewCustomValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
