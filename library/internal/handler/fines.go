package handler

import (
	"net/http"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListFines(c echo.Context) error {
	f := model.FineFilter{Status: model.FineStatus(c.QueryParam("status"))}
	var err error
	if f.PatronID, err = queryID(c, "patronId"); err != nil {
		return h.fail(c, err)
	}
	report, err := h.librarySvc.ListFines(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, report, "")
}
