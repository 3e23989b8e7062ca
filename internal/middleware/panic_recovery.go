package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"teller-desk/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery recovers from handler panics, logs the stack with the trace
// ID and answers with SYSTEM_001
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.ErrorContext(c.Request().Context(), "panic recovered",
					slog.String("trace_id", traceID),
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("stack_trace", string(debug.Stack())),
					slog.String("path", c.Request().URL.Path),
					slog.String("method", c.Request().Method),
				)

				if c.Response().Committed {
					return
				}

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if sendErr := c.JSON(http.StatusInternalServerError, errorResponse); sendErr != nil {
					logger.Error("failed to send panic recovery response",
						slog.String("trace_id", traceID),
						slog.String("error", sendErr.Error()),
					)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
