package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/adapters/in/http/servers"
	"marketplace/internal/pkg/errs"
)

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}

// StatusCode maps an application error to the HTTP status returned for it.
func StatusCode(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, order.ErrUnauthorizedActor):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOrderNotEligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCancellationWindowClosed),
		errors.Is(err, order.ErrOrderNotAssignable),
		errors.Is(err, order.ErrNoRefundRequested),
		errors.Is(err, partner.ErrPartnerUnavailable),
		errors.Is(err, services.ErrNoPartnerAvailable),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, cart.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error as a servers.Error body. Internal
// failures are logged and their details hidden from the caller.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := StatusCode(err)
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}
		if code >= http.StatusInternalServerError && code != http.StatusGatewayTimeout {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = http.StatusText(code)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if respErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", respErr)
		}
	}
}
