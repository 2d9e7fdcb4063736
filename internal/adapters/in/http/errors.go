package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// clientErrors are answered with 400 and the error message.
var clientErrors = []error{
	order.ErrInvalidQuantity,
	order.ErrOrderMustHaveAtLeastOneOrderLine,
	order.ErrOrderCannotBeCanceled,
	order.ErrOrderLineCannotBeModified,
	order.ErrInvalidStatusTransition,
	errs.ErrValueIsRequired,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
}

// StatusCode maps a use case error to the HTTP status returned for it.
// A missing order on update is a failed save, so ErrSaveFailed wins over
// ErrObjectNotFound.
func StatusCode(err error) int {
	switch {
	// Checked before ErrObjectNotFound: an order removed between load and save
	// is reported as a failed save, not as a missing order.
	case errors.Is(err, ports.ErrSaveFailed):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	}

	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

func (s *Server) respondError(ctx echo.Context, err error, fallback string) error {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), fallback, "error", err)
		return ctx.JSON(code, servers.Error{Code: code, Message: fallback})
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func respondMessage(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Message{Message: message})
}

// ErrorHandler renders errors returned by handlers and middleware, such as
// unknown routes and parameter binding failures, as Error bodies.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	var writeErr error
	if ctx.Request().Method == http.MethodHead {
		writeErr = ctx.NoContent(code)
	} else {
		writeErr = ctx.JSON(code, servers.Error{Code: code, Message: message})
	}
	if writeErr != nil {
		ctx.Logger().Error(writeErr)
	}
}
