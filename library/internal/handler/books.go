package handler

import (
	"net/http"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var in model.BookInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusCreated, book, "book created")
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, book, "")
}

func (h *Handler) ListBooks(c echo.Context) error {
	f := model.BookFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	var err error
	if f.AvailableOnly, err = queryBool(c, "available"); err != nil {
		return h.fail(c, err)
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, books, "")
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in model.BookInput
	if err = bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	book, err := h.librarySvc.UpdateBook(c.Request().Context(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, book, "book updated")
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err = h.librarySvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, nil, "book deleted")
}
