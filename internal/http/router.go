package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"nifresolver/internal/handler"
)

type RouterOptions struct {
	// StaticDir, when set, is served ahead of the bootstrap page.
	StaticDir string
	// RateLimit is requests per second per client IP; zero disables it.
	RateLimit float64
}

func NewRouter(resolveHandler *handler.ResolveHandler, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger())
	if opts.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimit))))
	}

	resolveHandler.RegisterRoutes(e)
	registerFallback(e, opts.StaticDir, resolveHandler.Bootstrap)

	return e
}
