package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "soapbox/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Middleware records per-route request counts and latency. It uses the
// matched route pattern as the path label to keep cardinality bounded.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request().Method

		// Errors have not reached the error handler yet, so the response
		// status is still unset for them; resolve it from the error itself.
		status := c.Response().Status
		if err != nil {
			var appErr domainerrors.AppError
			var httpErr *echo.HTTPError
			switch {
			case errors.As(err, &appErr):
				status = appErr.HTTPCode()
			case errors.As(err, &httpErr):
				status = httpErr.Code
			default:
				status = http.StatusInternalServerError
			}
		}

		RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}
