package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"content-service/app/metrics"
)

// MetricsMiddleware records request counts and latencies per route.
// The registered route pattern is used as the path label so slugs do not
// explode the label cardinality.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			metrics.RecordHTTPRequest(
				c.Request().Method,
				path,
				strconv.Itoa(status),
				time.Since(start),
			)

			return err
		}
	}
}
