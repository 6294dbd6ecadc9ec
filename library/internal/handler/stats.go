package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.librarySvc.Dashboard(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, d, "")
}

func (h *Handler) CollectionStats(c echo.Context) error {
	st, err := h.librarySvc.CollectionStats(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, st, "")
}

func (h *Handler) Categories(c echo.Context) error {
	cats, err := h.librarySvc.Categories(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, cats, "")
}

func (h *Handler) CategoryDistribution(c echo.Context) error {
	dist, err := h.librarySvc.CategoryDistribution(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, dist, "")
}

func (h *Handler) TopBorrowed(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return h.fail(c, err)
	}
	top, err := h.librarySvc.TopBorrowed(c.Request().Context(), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, top, "")
}

func (h *Handler) DailyLoans(c echo.Context) error {
	series, err := h.librarySvc.DailyLoans(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, series, "")
}

func (h *Handler) FinesCollected(c echo.Context) error {
	fc, err := h.librarySvc.FinesCollected(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, fc, "")
}
