package handler

import (
	"net/http"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.ReservationRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	res, err := h.librarySvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusCreated, res, "reservation created, expires "+res.ExpiryDate.String())
}

func (h *Handler) UpdateReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var patch model.ReservationPatch
	if err = bind(c, &patch); err != nil {
		return h.fail(c, err)
	}
	res, err := h.librarySvc.UpdateReservation(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, res, "reservation updated")
}

func (h *Handler) CancelReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err = h.librarySvc.CancelReservation(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, nil, "reservation cancelled")
}

func (h *Handler) GetReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	res, err := h.librarySvc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, res, "")
}

func (h *Handler) ListReservations(c echo.Context) error {
	var (
		f   model.ReservationFilter
		err error
	)
	f.Status = model.ReservationStatus(c.QueryParam("status"))
	if f.PatronID, err = queryID(c, "patronId"); err != nil {
		return h.fail(c, err)
	}
	if f.BookID, err = queryID(c, "bookId"); err != nil {
		return h.fail(c, err)
	}
	list, err := h.librarySvc.ListReservations(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) PatronReservations(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	list, err := h.librarySvc.ListPatronReservations(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, list, "")
}
