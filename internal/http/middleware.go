package http

import (
	"github.com/labstack/echo/v4"

	"nifresolver/pkg/logger"
)

// RequestLogger logs one line per request through pkg/logger.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			args := []any{
				"module", "http",
				"method", req.Method,
				"uri", req.RequestURI,
				"status", res.Status,
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}
			if err != nil {
				logger.Warn("request", append(args, "error", err)...)
				return nil
			}
			logger.Debug("request", args...)
			return nil
		}
	}
}
