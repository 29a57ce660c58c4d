// Package api assembles the Echo server and the Huma API served by
// hela-notan.
package api

import (
	"log/slog"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/hela-notan/api/openapi"
	"github.com/donaldgifford/hela-notan/internal/api/handlers"
	"github.com/donaldgifford/hela-notan/internal/api/middleware"
	"github.com/donaldgifford/hela-notan/internal/ranking"
	"github.com/donaldgifford/hela-notan/internal/store"
	"github.com/donaldgifford/hela-notan/pkg/tco"
)

// Title is the API title shown in the OpenAPI document and Swagger UI.
const Title = "Hela Notan API"

// Deps are the collaborators wired into the HTTP surface.
type Deps struct {
	Store      store.Store
	Models     handlers.ModelSource
	Calculator *tco.Calculator
	Refresher  handlers.Refresher
	Log        *slog.Logger
	Version    string

	// RequestTimeout bounds the context of every request. Zero disables it.
	RequestTimeout time.Duration
	// RateLimit enables per-client limiting when non-nil.
	RateLimit *middleware.RateLimitConfig
}

// NewServer builds the Echo instance with middleware, operational routes and
// every API operation registered.
func NewServer(d Deps) *echo.Echo {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Tracing())
	e.Use(middleware.Metrics())
	if d.RateLimit != nil {
		e.Use(middleware.RateLimit(*d.RateLimit))
	}
	if d.RequestTimeout > 0 {
		e.Use(echomw.ContextTimeout(d.RequestTimeout))
	}

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(d.Store))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig(Title, d.Version)
	cfg.OpenAPIPath = openapi.SpecPath
	cfg.DocsPath = ""
	humaAPI := humaecho.New(e, cfg)

	rank := ranking.NewEngine(d.Store, d.Models, ranking.WithLogger(log))

	handlers.RegisterCarsRoutes(humaAPI, handlers.NewCarsHandler(rank))
	handlers.RegisterModelRoutes(humaAPI, handlers.NewModelsHandler(d.Models))
	handlers.RegisterPredictRoutes(humaAPI, handlers.NewPredictHandler(d.Models))
	handlers.RegisterTCORoutes(humaAPI, handlers.NewTCOHandler(d.Models, d.Calculator))
	handlers.RegisterCacheRoutes(humaAPI, handlers.NewCacheHandler(d.Store))
	if d.Refresher != nil {
		handlers.RegisterTriggerRoutes(humaAPI, handlers.NewTriggerHandler(d.Refresher))
	}

	openapi.RegisterRoutes(e, Title)

	return e
}
