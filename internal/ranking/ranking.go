// Package ranking filters, ranks and paginates car listings, scoring each
// listing against its model's regression to derive deal ratings.
package ranking

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/donaldgifford/hela-notan/internal/metrics"
	"github.com/donaldgifford/hela-notan/internal/modelstore"
	"github.com/donaldgifford/hela-notan/internal/store"
	"github.com/donaldgifford/hela-notan/pkg/deal"
	"github.com/donaldgifford/hela-notan/pkg/normalize"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

const instrumentation = "github.com/donaldgifford/hela-notan/internal/ranking"

var (
	tracer = otel.Tracer(instrumentation)
	meter  = otel.Meter(instrumentation)
)

// Repository supplies listings that pass the static sanity predicates.
type Repository interface {
	ListCars(ctx context.Context, q *store.CarQuery) ([]domain.Listing, error)
	CountCars(ctx context.Context, q *store.CarQuery) (int, error)
}

// ModelSource supplies regression snapshots.
type ModelSource interface {
	Snapshot(ctx context.Context) *modelstore.Snapshot
}

// Page is one page of ranked listings.
type Page struct {
	Items     []domain.RankedListing `json:"items"`
	Total     int                    `json:"total"`
	Page      int                    `json:"page"`
	PageCount int                    `json:"pageCount"`
	PageSize  int                    `json:"pageSize"`
}

// Engine executes listing queries.
type Engine struct {
	repo      Repository
	models    ModelSource
	log       *slog.Logger
	pageItems metric.Int64Histogram
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// NewEngine creates an Engine.
func NewEngine(repo Repository, models ModelSource, opts ...EngineOption) *Engine {
	e := &Engine{
		repo:   repo,
		models: models,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	h, err := meter.Int64Histogram("hn.ranking.page_items",
		metric.WithDescription("Listings returned per ranking page."),
	)
	if err != nil {
		e.log.Warn("creating page size instrument", "error", err)
	}
	e.pageItems = h
	return e
}

// Run plans and executes q.
func (e *Engine) Run(ctx context.Context, q Query) (*Page, error) {
	strategy := Plan(q)
	mode := strategy.Mode()

	ctx, span := tracer.Start(ctx, "ranking.Run")
	defer span.End()
	span.SetAttributes(attribute.String("mode", mode))

	start := time.Now()
	metrics.RankingRequestsTotal.WithLabelValues(mode).Inc()
	defer func() {
		metrics.RankingDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	}()

	var (
		page *Page
		err  error
	)
	switch s := strategy.(type) {
	case DirectQuery:
		page, err = e.runDirect(ctx, s.Query)
	case DealAwareQuery:
		page, err = e.runDealAware(ctx, s.Query)
	default:
		err = fmt.Errorf("unknown strategy %T", strategy)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("total", page.Total))
	if e.pageItems != nil {
		e.pageItems.Record(ctx, int64(len(page.Items)), metric.WithAttributes(attribute.String("mode", mode)))
	}
	return page, nil
}

func (e *Engine) runDirect(ctx context.Context, q Query) (*Page, error) {
	cq := q.carQuery()
	cq.Limit = q.PageSize
	cq.Offset = q.offset()

	listings, err := e.repo.ListCars(ctx, cq)
	if err != nil {
		return nil, fmt.Errorf("listing cars: %w", err)
	}

	total, err := e.repo.CountCars(ctx, cq)
	if err != nil {
		return nil, fmt.Errorf("counting cars: %w", err)
	}

	snap := e.models.Snapshot(ctx)
	items := make([]domain.RankedListing, len(listings))
	for i := range listings {
		items[i] = rank(&listings[i], snap)
	}

	return newPage(items, total, q), nil
}

func (e *Engine) runDealAware(ctx context.Context, q Query) (*Page, error) {
	cq := q.carQuery()
	cq.All = true

	listings, err := e.repo.ListCars(ctx, cq)
	if err != nil {
		return nil, fmt.Errorf("listing cars: %w", err)
	}
	metrics.RankingCandidates.Observe(float64(len(listings)))

	// One snapshot for the whole candidate set.
	snap := e.models.Snapshot(ctx)

	ranked := make([]domain.RankedListing, 0, len(listings))
	for i := range listings {
		r := rank(&listings[i], snap)
		if q.Deal.Matches(r.Deal) {
			ranked = append(ranked, r)
		}
	}

	if q.Sort == SortDeal {
		slices.SortStableFunc(ranked, compareDeal)
	} else {
		slices.SortStableFunc(ranked, func(a, b domain.RankedListing) int {
			return compareListings(&a.Listing, &b.Listing, q.Sort, q.Desc)
		})
	}

	e.log.Debug("deal-aware query",
		"candidates", len(listings),
		"matched", len(ranked),
		"deal", string(q.Deal),
		"sort", string(q.Sort),
	)

	total := len(ranked)
	lo := min(q.offset(), total)
	hi := min(lo+q.PageSize, total)

	return newPage(ranked[lo:hi], total, q), nil
}

func rank(l *domain.Listing, snap *modelstore.Snapshot) domain.RankedListing {
	m, _ := snap.Model(l.ModelKey)
	res := deal.Score(l, m)
	metrics.DealClassificationsTotal.WithLabelValues(string(res.Rating)).Inc()

	lst := *l
	lst.URL = l.ListingURL()
	return domain.RankedListing{
		Listing:   lst,
		Fuel:      normalize.Fuel(l.FuelType),
		Predicted: res.Predicted,
		Residual:  res.Residual,
		Deal:      res.Rating,
	}
}

func newPage(items []domain.RankedListing, total int, q Query) *Page {
	if items == nil {
		items = []domain.RankedListing{}
	}
	return &Page{
		Items:     items,
		Total:     total,
		Page:      q.Page,
		PageCount: (total + q.PageSize - 1) / q.PageSize,
		PageSize:  q.PageSize,
	}
}

// compareDeal orders by rating best first, then by residual ascending with
// missing residuals last, then by listing ID.
func compareDeal(a, b domain.RankedListing) int {
	if c := cmp.Compare(a.Deal.Rank(), b.Deal.Rank()); c != 0 {
		return c
	}
	switch {
	case a.Residual != nil && b.Residual != nil:
		if c := cmp.Compare(*a.Residual, *b.Residual); c != 0 {
			return c
		}
	case a.Residual != nil:
		return -1
	case b.Residual != nil:
		return 1
	}
	return cmp.Compare(a.ID, b.ID)
}

// compareListings orders by the sort key in the given direction, then by
// listing ID ascending.
func compareListings(a, b *domain.Listing, key SortKey, desc bool) int {
	c := cmp.Compare(sortValue(a, key), sortValue(b, key))
	if desc {
		c = -c
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func sortValue(l *domain.Listing, key SortKey) int {
	switch key {
	case SortYear:
		return l.ModelYear
	case SortMileage:
		return l.MileageMil
	case SortHorsepower:
		return l.Horsepower
	default:
		return l.PriceSEK
	}
}
