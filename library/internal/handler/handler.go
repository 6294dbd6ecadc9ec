package handler

import (
	"net/http"

	_ "github.com/FortunatoE/SistemaBiblioteca/library/swagger"
	md "github.com/FortunatoE/SistemaBiblioteca/pkg/middleware"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/validate"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	librarySvc LibraryService
	staffToken string
	log        *zap.Logger
}

type Option func(h *Handler)

// WithStaffToken guards mutating endpoints with a shared bearer token.
func WithStaffToken(token string) Option {
	return func(h *Handler) { h.staffToken = token }
}

func New(librarySvc LibraryService, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HTTPErrorHandler = h.errorHandler
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
		md.StaffToken(h.staffToken),
	)

	api.POST("/loans", h.OpenLoan)
	api.GET("/loans", h.ListLoans)
	api.GET("/loans/recent", h.RecentLoans)
	api.GET("/loans/:id", h.GetLoan)
	api.PUT("/loans/:id/return", h.CloseLoan)
	api.PUT("/loans/:id/waive", h.WaiveFine)
	api.PUT("/loans/:id/pay", h.RecordPayment)

	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations", h.ListReservations)
	api.GET("/reservations/:id", h.GetReservation)
	api.PUT("/reservations/:id", h.UpdateReservation)
	api.DELETE("/reservations/:id", h.CancelReservation)

	api.GET("/fines", h.ListFines)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.POST("/patrons", h.CreatePatron)
	api.GET("/patrons", h.ListPatrons)
	api.GET("/patrons/:id", h.GetPatron)
	api.PUT("/patrons/:id", h.UpdatePatron)
	api.DELETE("/patrons/:id", h.DeactivatePatron)
	api.GET("/patrons/:id/loans", h.PatronLoans)
	api.GET("/patrons/:id/reservations", h.PatronReservations)

	stats := api.Group("/stats")
	stats.GET("/dashboard", h.Dashboard)
	stats.GET("/collection", h.CollectionStats)
	stats.GET("/categories", h.Categories)
	stats.GET("/category-distribution", h.CategoryDistribution)
	stats.GET("/top-borrowed", h.TopBorrowed)
	stats.GET("/daily-loans", h.DailyLoans)
	stats.GET("/fines-collected", h.FinesCollected)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
