package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/handler"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/FortunatoE/SistemaBiblioteca/library/internal/handler/mocks"
)

func mustDate(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func serve(h *handler.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.NewRouter().ServeHTTP(w, r)
	return w
}

func TestHandler_OpenLoan(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	loan := model.LoanDetails{
		Loan: model.Loan{
			ID: 1, PatronID: 3, BookID: 2, Status: model.LoanActive,
			LoanDate: mustDate("2025-03-20"), DueDate: mustDate("2025-04-04"),
		},
		PatronName: "Ana Souza", BookTitle: "Dune",
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"patronId":3,"bookId":2}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					OpenLoan(gomock.Any(), model.OpenLoanRequest{PatronID: 3, BookID: 2}).
					Return(loan, nil)
			},
			response: response{expectedCode: http.StatusCreated},
		},
		{
			name:         "err. bad body",
			body:         `{"patronId":"x"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"error":"validation","message":"invalid request body"}`,
			},
		},
		{
			name:         "err. bad due date",
			body:         `{"patronId":3,"bookId":2,"dueDate":"04/04/2025"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "err. no copies",
			body: `{"patronId":3,"bookId":2}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					OpenLoan(gomock.Any(), gomock.Any()).
					Return(model.LoanDetails{}, errs.Conflict("book 2 has no available copies"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"error":"conflict","message":"book 2 has no available copies"}`,
			},
		},
		{
			name: "err. patron not found",
			body: `{"patronId":3,"bookId":2}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					OpenLoan(gomock.Any(), gomock.Any()).
					Return(model.LoanDetails{}, errs.NotFound("patron 3 not found"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"success":false,"error":"not_found","message":"patron 3 not found"}`,
			},
		},
		{
			name: "err. internal",
			body: `{"patronId":3,"bookId":2}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					OpenLoan(gomock.Any(), gomock.Any()).
					Return(model.LoanDetails{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"success":false,"error":"internal","message":"internal error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			tt.mockBehavior(svc)
			w := serve(h, http.MethodPost, "/api/v1/loans", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.NotEmpty(t, w.Header().Get(echo.HeaderXRequestID))
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			if w.Code == http.StatusCreated {
				require.Contains(t, w.Body.String(), `"success":true`)
				require.Contains(t, w.Body.String(), `"dueDate":"2025-04-04"`)
				require.Contains(t, w.Body.String(), `"message":"loan opened, due 2025-04-04"`)
			}
		})
	}
}

func TestHandler_CloseLoan(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name        string
		target      string
		fine        decimal.Decimal
		call        bool
		code        int
		wantMessage string
	}{
		{
			name:        "on time",
			target:      "/api/v1/loans/7/return",
			fine:        decimal.Zero,
			call:        true,
			code:        http.StatusOK,
			wantMessage: `"message":"book returned on time"`,
		},
		{
			name:        "late",
			target:      "/api/v1/loans/7/return",
			fine:        decimal.NewFromInt(40),
			call:        true,
			code:        http.StatusOK,
			wantMessage: `"message":"book returned late, fine of 40.00 assessed"`,
		},
		{
			name:        "err. bad id",
			target:      "/api/v1/loans/abc/return",
			code:        http.StatusBadRequest,
			wantMessage: `"message":"invalid id \"abc\""`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))
			if tt.call {
				svc.EXPECT().CloseLoan(gomock.Any(), int64(7)).
					Return(model.LoanDetails{Loan: model.Loan{ID: 7, Status: model.LoanReturned, FineAmount: tt.fine}}, nil)
			}

			w := serve(h, http.MethodPut, tt.target, "")
			require.Equal(t, tt.code, w.Code)
			require.Contains(t, w.Body.String(), tt.wantMessage)
		})
	}
}

func TestHandler_WaiveFine(t *testing.T) {
	t.Parallel()

	t.Run("reason required", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		svc := service_mocks.NewMockLibraryService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))

		w := serve(h, http.MethodPut, "/api/v1/loans/7/waive", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), `"error":"validation"`)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		svc := service_mocks.NewMockLibraryService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))
		svc.EXPECT().WaiveFine(gomock.Any(), int64(7), "lost in flood").
			Return(model.LoanDetails{Loan: model.Loan{ID: 7, Waived: true}}, nil)

		w := serve(h, http.MethodPut, "/api/v1/loans/7/waive", `{"reason":"lost in flood"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"waived":true`)
		require.Contains(t, w.Body.String(), `"message":"fine waived"`)
	})
}

func TestHandler_RecordPayment(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	w := serve(h, http.MethodPut, "/api/v1/loans/7/pay", `{"method":"cheque"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	svc.EXPECT().RecordPayment(gomock.Any(), int64(7), model.PaymentRequest{Method: model.PaymentPix}).
		Return(model.LoanDetails{}, errs.Conflict("nothing to pay for loan 7"))
	w = serve(h, http.MethodPut, "/api/v1/loans/7/pay", `{"method":"pix"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"success":false,"error":"conflict","message":"nothing to pay for loan 7"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ListLoans(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	svc.EXPECT().ListLoans(gomock.Any(), model.LoanFilter{
		Status: model.LoanActive, PatronID: 3, Overdue: true, Limit: 20,
	}).Return([]model.LoanDetails{}, nil)
	w := serve(h, http.MethodGet, "/api/v1/loans?status=active&patronId=3&overdue=true&limit=20", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"success":true,"data":[]}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(h, http.MethodGet, "/api/v1/loans?patronId=-1", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"success":false,"error":"validation","message":"invalid patronId \"-1\""}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Reservations(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		svc := service_mocks.NewMockLibraryService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))
		svc.EXPECT().CreateReservation(gomock.Any(), model.ReservationRequest{
			PatronID: 3, BookID: 2, ExpiryDate: "2025-03-25",
		}).Return(model.ReservationDetails{Reservation: model.Reservation{
			ID: 5, Status: model.ReservationActive, ExpiryDate: mustDate("2025-03-25"),
		}}, nil)

		w := serve(h, http.MethodPost, "/api/v1/reservations", `{"patronId":3,"bookId":2,"expiryDate":"2025-03-25"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, w.Body.String(), `"message":"reservation created, expires 2025-03-25"`)
	})

	t.Run("window rejected", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		svc := service_mocks.NewMockLibraryService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))
		svc.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(model.ReservationDetails{}, errs.Validation("expiry date cannot be more than 7 days after reservation date, got 8"))

		w := serve(h, http.MethodPost, "/api/v1/reservations",
			`{"patronId":3,"bookId":2,"reservationDate":"2025-03-20","expiryDate":"2025-03-28"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t,
			`{"success":false,"error":"validation","message":"expiry date cannot be more than 7 days after reservation date, got 8"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		svc := service_mocks.NewMockLibraryService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))
		cancelled := model.ReservationCancelled
		svc.EXPECT().UpdateReservation(gomock.Any(), int64(5), model.ReservationPatch{Status: &cancelled}).
			Return(model.ReservationDetails{Reservation: model.Reservation{ID: 5, Status: cancelled}}, nil)

		w := serve(h, http.MethodPut, "/api/v1/reservations/5", `{"status":"cancelled"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"status":"cancelled"`)
	})

	t.Run("cancel", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		svc := service_mocks.NewMockLibraryService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))
		gomock.InOrder(
			svc.EXPECT().CancelReservation(gomock.Any(), int64(5)).Return(nil),
			svc.EXPECT().CancelReservation(gomock.Any(), int64(5)).Return(errs.NotFound("reservation 5 not found")),
		)

		w := serve(h, http.MethodDelete, "/api/v1/reservations/5", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `{"success":true,"message":"reservation cancelled"}`, strings.Trim(w.Body.String(), "\n"))

		w = serve(h, http.MethodDelete, "/api/v1/reservations/5", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, `{"success":false,"error":"not_found","message":"reservation 5 not found"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_Stats(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	svc.EXPECT().Categories(gomock.Any()).Return([]string{"Computing", "History"}, nil)
	w := serve(h, http.MethodGet, "/api/v1/stats/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"success":true,"data":["Computing","History"]}`, strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().Dashboard(gomock.Any()).Return(model.Dashboard{TotalBooks: 3, ActiveLoans: 1}, nil)
	w = serve(h, http.MethodGet, "/api/v1/stats/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"success":true,"data":{"totalBooks":3,"activeLoans":1,"activeReservations":0,"overdueLoans":0,"activePatrons":0,"availableCopies":0}}`,
		strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().DailyLoans(gomock.Any(), "2025-03-01", "2025-03-10").Return([]model.DailyCount{}, nil)
	w = serve(h, http.MethodGet, "/api/v1/stats/daily-loans?from=2025-03-01&to=2025-03-10", "")
	require.Equal(t, http.StatusOK, w.Code)

	svc.EXPECT().TopBorrowed(gomock.Any(), 5).Return(nil, context.DeadlineExceeded)
	w = serve(h, http.MethodGet, "/api/v1/stats/top-borrowed?limit=5", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_StaffToken(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewExample().Named("test"), handler.WithStaffToken("s3cret"))

	w := serve(h, http.MethodDelete, "/api/v1/books/2", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"success":false,"error":"unauthorized","message":"No Authorization Header"}`, strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().DeleteBook(gomock.Any(), int64(2)).Return(nil)
	w = serve(h, http.MethodDelete, "/api/v1/books/2", "", echo.HeaderAuthorization, "Bearer s3cret")
	require.Equal(t, http.StatusOK, w.Code)

	svc.EXPECT().GetBook(gomock.Any(), int64(2)).Return(model.Book{ID: 2, Title: "Dune"}, nil)
	w = serve(h, http.MethodGet, "/api/v1/books/2", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	h := handler.New(service_mocks.NewMockLibraryService(c), zap.NewExample().Named("test"))

	w := serve(h, http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
