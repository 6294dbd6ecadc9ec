package handler

import (
	"net/http"
	"strconv"

	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/model"
	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/service"
	md "github.com/FortunatoE/SistemaBiblioteca/pkg/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	auditSvc AuditService
	log      *zap.Logger
}

func New(auditSvc AuditService, log *zap.Logger) *Handler {
	return &Handler{
		auditSvc: auditSvc,
		log:      log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/audit", h.ListEvents)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListEvents(c echo.Context) error {
	var (
		f   model.Filter
		err error
	)
	if v := c.QueryParam("patronId"); v != "" {
		if f.PatronID, err = strconv.ParseInt(v, 10, 64); err != nil || f.PatronID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "patronId is invalid")
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if f.Limit, err = strconv.Atoi(v); err != nil || f.Limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
	}
	f.Action = c.QueryParam("action")

	list, err := h.auditSvc.List(c.Request().Context(), f)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAction) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.log.Error("List", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, list)
}
