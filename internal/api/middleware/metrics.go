// Package middleware provides Echo middleware for the hela-notan API server.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/hela-notan/internal/metrics"
)

// unmatchedPath labels requests that matched no route, so arbitrary URLs
// cannot grow the label set.
const unmatchedPath = "unmatched"

// metricsSkipPrefixes are operational endpoints excluded from request
// metrics. Probes report through their own gauges.
var metricsSkipPrefixes = []string{
	"/metrics",
	"/healthz",
	"/readyz",
	"/swagger",
	"/openapi",
}

// Metrics returns Echo middleware that records request duration and count by
// route pattern and status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipMetrics(c.Request().URL.Path) {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is final.
				c.Error(err)
			}

			path := c.Path()
			if path == "" || path == "/*" {
				path = unmatchedPath
			}
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

func skipMetrics(path string) bool {
	for _, p := range metricsSkipPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
