package handler

import (
	"net/http"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) OpenLoan(c echo.Context) error {
	var req model.OpenLoanRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	loan, err := h.librarySvc.OpenLoan(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusCreated, loan, "loan opened, due "+loan.DueDate.String())
}

func (h *Handler) CloseLoan(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	loan, err := h.librarySvc.CloseLoan(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	msg := "book returned on time"
	if loan.FineAmount.IsPositive() {
		msg = "book returned late, fine of " + loan.FineAmount.StringFixed(2) + " assessed"
	}
	return ok(c, http.StatusOK, loan, msg)
}

func (h *Handler) WaiveFine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req model.WaiveRequest
	if err = bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	loan, err := h.librarySvc.WaiveFine(c.Request().Context(), id, req.Reason)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, loan, "fine waived")
}

func (h *Handler) RecordPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req model.PaymentRequest
	if err = bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	loan, err := h.librarySvc.RecordPayment(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, loan, "payment of "+loan.FineAmount.StringFixed(2)+" recorded")
}

func (h *Handler) GetLoan(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	loan, err := h.librarySvc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, loan, "")
}

func (h *Handler) ListLoans(c echo.Context) error {
	var (
		f   model.LoanFilter
		err error
	)
	f.Status = model.LoanStatus(c.QueryParam("status"))
	if f.PatronID, err = queryID(c, "patronId"); err != nil {
		return h.fail(c, err)
	}
	if f.BookID, err = queryID(c, "bookId"); err != nil {
		return h.fail(c, err)
	}
	if f.Overdue, err = queryBool(c, "overdue"); err != nil {
		return h.fail(c, err)
	}
	if f.Limit, err = queryInt(c, "limit"); err != nil {
		return h.fail(c, err)
	}
	loans, err := h.librarySvc.ListLoans(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, loans, "")
}

func (h *Handler) RecentLoans(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return h.fail(c, err)
	}
	loans, err := h.librarySvc.RecentLoans(c.Request().Context(), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, loans, "")
}

func (h *Handler) PatronLoans(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	loans, err := h.librarySvc.ListPatronLoans(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, loans, "")
}
