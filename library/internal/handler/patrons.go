package handler

import (
	"net/http"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreatePatron(c echo.Context) error {
	var in model.PatronInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	patron, err := h.librarySvc.CreatePatron(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusCreated, patron, "patron created")
}

func (h *Handler) GetPatron(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	patron, err := h.librarySvc.GetPatron(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, patron, "")
}

func (h *Handler) ListPatrons(c echo.Context) error {
	f := model.PatronFilter{Role: model.Role(c.QueryParam("role"))}
	var err error
	if f.IncludeInactive, err = queryBool(c, "all"); err != nil {
		return h.fail(c, err)
	}
	patrons, err := h.librarySvc.ListPatrons(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, patrons, "")
}

func (h *Handler) UpdatePatron(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in model.PatronInput
	if err = bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	patron, err := h.librarySvc.UpdatePatron(c.Request().Context(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, patron, "patron updated")
}

func (h *Handler) DeactivatePatron(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err = h.librarySvc.DeactivatePatron(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, nil, "patron deactivated")
}
