package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID returns the request ID stored in ctx by RequestLog.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// probePaths are logged once on success and then only while failing, so
// kubelet polling does not drown the request log.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs each request with structured
// fields. It reuses an incoming X-Request-ID or generates one, echoes it in
// the response and stores it in the request context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu        sync.Mutex
		probeSeen = map[string]bool{}
	)

	// quiet reports whether a successful probe was already logged, and
	// resets the path on failure.
	quiet := func(path string, status int) bool {
		if _, ok := probePaths[path]; !ok {
			return false
		}
		mu.Lock()
		defer mu.Unlock()
		if status >= http.StatusBadRequest {
			probeSeen[path] = false
			return false
		}
		seen := probeSeen[path]
		probeSeen[path] = true
		return seen
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			ctx := context.WithValue(req.Context(), requestIDKey{}, reqID)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			status := c.Response().Status
			path := req.URL.Path
			if quiet(path, status) {
				return err
			}

			log.Log(c.Request().Context(), levelFor(status), "request",
				"method", req.Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
				"remote_ip", c.RealIP(),
			)

			return err
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
