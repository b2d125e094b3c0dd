package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/nivahq/niva/internal/middleware"
)

// setupErrorHandling installs the central error handler. Echo HTTP errors
// keep their status; anything else is logged with a stack trace and answered
// with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := appmiddleware.FromContext(c.Request().Context())
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				logger.Warn("Request failed", "status", he.Code, "error", he.Internal)
			}
			if respErr := respond(c, he.Code, he.Message); respErr != nil {
				logger.Error("Failed to send error response", "error", respErr)
			}
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"stack_trace", string(debug.Stack()),
		)
		if respErr := respond(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)); respErr != nil {
			logger.Error("Failed to send error response", "error", respErr)
		}
	}
}

func respond(c echo.Context, code int, message any) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}
	if msg, ok := message.(string); ok {
		return c.String(code, msg)
	}
	return c.JSON(code, message)
}
