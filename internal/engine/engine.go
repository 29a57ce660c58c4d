// Package engine runs the background jobs of hela-notan: the per-model
// summary refresh and the regression snapshot warm-up.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/hela-notan/internal/metrics"
	"github.com/donaldgifford/hela-notan/internal/store"
)

var tracer = otel.Tracer("github.com/donaldgifford/hela-notan/internal/engine")

// ModelRefresher reloads the regression snapshot.
type ModelRefresher interface {
	Refresh(ctx context.Context) error
}

// Engine orchestrates the summary and model refresh jobs.
type Engine struct {
	store   store.Store
	models  ModelRefresher
	log     *slog.Logger
	nowFunc func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithModels sets the regression snapshot cache refreshed by RunModelWarmup.
func WithModels(m ModelRefresher) EngineOption {
	return func(e *Engine) {
		e.models = m
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:   s,
		log:     slog.Default(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// RunSummaryRefresh recomputes the per-model summary from every plausible
// listing and stores it under the summary cache key.
func (eng *Engine) RunSummaryRefresh(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "engine.RunSummaryRefresh")
	start := time.Now()
	defer func() {
		metrics.SummaryDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.SummaryErrorsTotal.Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	listings, err := eng.store.ListCars(ctx, &store.CarQuery{All: true})
	if err != nil {
		return fmt.Errorf("listing cars: %w", err)
	}

	summary := Summarize(listings)

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	if err := eng.store.PutCacheEntry(ctx, store.KeySummary, data); err != nil {
		return fmt.Errorf("storing summary: %w", err)
	}

	metrics.SummaryLastSuccessTimestamp.Set(float64(eng.nowFunc().Unix()))
	span.SetAttributes(
		attribute.Int("listings", len(listings)),
		attribute.Int("models", len(summary)),
	)

	eng.log.Info("summary refreshed",
		"listings", len(listings),
		"models", len(summary),
		"duration", time.Since(start),
	)

	return nil
}

// RunModelWarmup refreshes the regression snapshot so requests never pay
// for the fetch. It is a no-op without a model cache.
func (eng *Engine) RunModelWarmup(ctx context.Context) error {
	if eng.models == nil {
		return nil
	}
	if err := eng.models.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing models: %w", err)
	}
	return nil
}
