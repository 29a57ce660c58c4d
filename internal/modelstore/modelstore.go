// Package modelstore caches the regression snapshot read from the
// aggregates cache row. Snapshots are swapped atomically; a stale cache
// refetches on the caller's goroutine and serves the previous snapshot when
// the fetch fails.
package modelstore

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/hela-notan/internal/metrics"
	"github.com/donaldgifford/hela-notan/pkg/predict"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// DefaultTTL is how long a fetched snapshot is served before refetching.
const DefaultTTL = 5 * time.Minute

var tracer = otel.Tracer("github.com/donaldgifford/hela-notan/internal/modelstore")

// Source fetches the decoded aggregates blob.
type Source interface {
	FetchAggregates(ctx context.Context) (*domain.Aggregates, error)
}

// Snapshot is one immutable, compiled view of the aggregates blob.
type Snapshot struct {
	FetchedAt time.Time

	models map[string]*predict.Model
	raw    map[string]domain.RegressionModel
	curves map[string]map[string][]domain.CurvePoint
	config map[string]domain.ModelMeta
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		models: map[string]*predict.Model{},
		raw:    map[string]domain.RegressionModel{},
		curves: map[string]map[string][]domain.CurvePoint{},
		config: map[string]domain.ModelMeta{},
	}
}

// Model returns the compiled model for key.
func (s *Snapshot) Model(key string) (*predict.Model, bool) {
	m, ok := s.models[key]
	return m, ok
}

// Raw returns the wire model for key, including its fit statistics.
func (s *Snapshot) Raw(key string) (domain.RegressionModel, bool) {
	r, ok := s.raw[key]
	return r, ok
}

// Curve returns the depreciation curve for key and fuel, falling back to
// the model's "all" curve.
func (s *Snapshot) Curve(key string, fuel domain.Fuel) ([]domain.CurvePoint, bool) {
	byFuel, ok := s.curves[key]
	if !ok {
		return nil, false
	}
	if pts, ok := byFuel[string(fuel)]; ok && len(pts) > 0 {
		return pts, true
	}
	pts, ok := byFuel[domain.CurveAll]
	return pts, ok && len(pts) > 0
}

// Curves returns every depreciation curve for key, by fuel.
func (s *Snapshot) Curves(key string) map[string][]domain.CurvePoint {
	return s.curves[key]
}

// ModelConfig returns presentation metadata for key, or the default.
func (s *Snapshot) ModelConfig(key string) domain.ModelMeta {
	if meta, ok := s.config[key]; ok {
		if len(meta.FuelOptions) == 0 {
			meta.FuelOptions = domain.DefaultModelMeta(key).FuelOptions
		}
		if meta.Label == "" {
			meta.Label = key
		}
		return meta
	}
	return domain.DefaultModelMeta(key)
}

// Keys returns the compiled model keys in sorted order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.models))
	for k := range s.models {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of compiled models.
func (s *Snapshot) Len() int {
	return len(s.models)
}

type state struct {
	snapshot  *Snapshot
	fetchedAt time.Time
}

func (st *state) isStale(now time.Time, ttl time.Duration) bool {
	if st == nil || st.snapshot == nil {
		return true
	}
	return now.Sub(st.fetchedAt) >= ttl
}

// Cache serves regression snapshots with a TTL.
type Cache struct {
	source  Source
	ttl     time.Duration
	log     *slog.Logger
	nowFunc func() time.Time // for testing

	state atomic.Pointer[state]
}

// Option configures the Cache.
type Option func(*Cache)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Cache) {
		c.nowFunc = f
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		c.log = l
	}
}

// New creates a Cache reading from source.
func New(source Source, opts ...Option) *Cache {
	c := &Cache{
		source:  source,
		ttl:     DefaultTTL,
		log:     slog.Default(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current snapshot, fetching a new one first when the
// cached one is missing or expired. It never fails: on fetch errors the
// previous snapshot is returned, or an empty one if there is none.
func (c *Cache) Snapshot(ctx context.Context) *Snapshot {
	cur := c.state.Load()
	if !cur.isStale(c.nowFunc(), c.ttl) {
		return cur.snapshot
	}

	snap, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn("regression snapshot refresh failed", "error", err)
		if cur != nil && cur.snapshot != nil {
			return cur.snapshot
		}
		return emptySnapshot()
	}
	return snap
}

// Model returns the compiled model for key from the current snapshot.
func (c *Cache) Model(ctx context.Context, key string) (*predict.Model, bool) {
	return c.Snapshot(ctx).Model(key)
}

// Curve returns the depreciation curve for key and fuel from the current
// snapshot.
func (c *Cache) Curve(ctx context.Context, key string, fuel domain.Fuel) ([]domain.CurvePoint, bool) {
	return c.Snapshot(ctx).Curve(key, fuel)
}

// Refresh fetches a new snapshot regardless of age.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err := c.fetch(ctx)
	return err
}

// Loaded reports whether a snapshot has ever been fetched successfully.
func (c *Cache) Loaded() bool {
	st := c.state.Load()
	return st != nil && st.snapshot != nil
}

func (c *Cache) fetch(ctx context.Context) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "modelstore.fetch")
	defer span.End()

	agg, err := c.source.FetchAggregates(ctx)
	if err != nil {
		metrics.ModelRefreshFailuresTotal.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("fetching aggregates: %w", err)
	}

	now := c.nowFunc()
	snap := c.compile(agg)
	snap.FetchedAt = now

	c.state.Store(&state{snapshot: snap, fetchedAt: now})

	metrics.ModelRefreshesTotal.Inc()
	metrics.ModelsLoaded.Set(float64(snap.Len()))
	metrics.ModelSnapshotTimestamp.Set(float64(now.Unix()))
	span.SetAttributes(attribute.Int("models", snap.Len()))

	c.log.Debug("regression snapshot refreshed", "models", snap.Len())

	return snap, nil
}

func (c *Cache) compile(agg *domain.Aggregates) *Snapshot {
	snap := emptySnapshot()
	if agg == nil {
		return snap
	}

	for key, raw := range agg.Regression {
		m, err := predict.Compile(raw)
		if err != nil {
			metrics.ModelCompileFailuresTotal.Inc()
			c.log.Warn("skipping malformed regression model", "model_key", key, "error", err)
			continue
		}
		snap.models[key] = m
		snap.raw[key] = raw
	}
	if agg.PredictionCurves != nil {
		snap.curves = agg.PredictionCurves
	}
	if agg.ModelConfig != nil {
		snap.config = agg.ModelConfig
	}

	return snap
}
