package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// response is the envelope of every API reply.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(c echo.Context, code int, data any, msg string) error {
	return c.JSON(code, response{Success: true, Data: data, Message: msg})
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindValidation, errs.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope. Internal causes are logged, never sent.
func (h *Handler) fail(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	msg := err.Error()
	if kind == errs.KindInternal {
		h.log.Error("request failed",
			zap.String("URI", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
		msg = "internal error"
	}
	return c.JSON(statusOf(kind), response{Error: string(kind), Message: msg})
}

// errorHandler renders echo errors (routing, binding, rate limits, auth)
// in the same envelope.
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, isHTTP := err.(*echo.HTTPError)
	if !isHTTP {
		_ = h.fail(c, err) //nolint:errcheck
		return
	}
	kind := "http_error"
	switch he.Code {
	case http.StatusBadRequest:
		kind = string(errs.KindValidation)
	case http.StatusNotFound:
		kind = string(errs.KindNotFound)
	case http.StatusUnauthorized:
		kind = "unauthorized"
	case http.StatusTooManyRequests:
		kind = "rate_limited"
	}
	if he.Code >= http.StatusInternalServerError {
		h.log.Error("echo", zap.Error(err))
	}
	resp := response{Error: kind, Message: fmt.Sprint(he.Message)}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code) //nolint:errcheck
		return
	}
	_ = c.JSON(he.Code, resp) //nolint:errcheck
}

// bind decodes and validates the request body.
func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return errs.Validation("invalid request body")
	}
	if err := c.Validate(v); err != nil {
		if he, isHTTP := err.(*echo.HTTPError); isHTTP {
			return errs.Validation("%v", he.Message)
		}
		return errs.Validation("%s", err.Error())
	}
	return nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Validation("invalid %s %q", name, c.Param(name))
	}
	return id, nil
}

func queryID(c echo.Context, name string) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Validation("invalid %s %q", name, v)
	}
	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errs.Validation("%s is invalid", name)
	}
	return n, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errs.Validation("%s is invalid", name)
	}
	return b, nil
}
