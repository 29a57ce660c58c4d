package ranking

import (
	"context"
	"slices"

	"github.com/donaldgifford/hela-notan/internal/store"
	"github.com/donaldgifford/hela-notan/pkg/normalize"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// SliceRepository is a Repository over an in-memory listing collection. It
// applies the same sanity predicates, filters, order and page bounds as the
// Postgres repository.
type SliceRepository struct {
	listings []domain.Listing
}

// NewSliceRepository creates a SliceRepository. The slice is not copied.
func NewSliceRepository(listings []domain.Listing) *SliceRepository {
	return &SliceRepository{listings: listings}
}

// ListCars implements Repository.
func (r *SliceRepository) ListCars(_ context.Context, q *store.CarQuery) ([]domain.Listing, error) {
	out := r.filter(q)

	slices.SortStableFunc(out, func(a, b domain.Listing) int {
		return compareListings(&a, &b, SortKey(q.SortBy), q.Desc)
	})

	if q.All {
		return out, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)
	lo := min(max(q.Offset, 0), len(out))
	hi := min(lo+limit, len(out))

	return out[lo:hi], nil
}

// CountCars implements Repository.
func (r *SliceRepository) CountCars(_ context.Context, q *store.CarQuery) (int, error) {
	return len(r.filter(q)), nil
}

func (r *SliceRepository) filter(q *store.CarQuery) []domain.Listing {
	out := make([]domain.Listing, 0, len(r.listings))
	for i := range r.listings {
		l := &r.listings[i]
		if !plausible(l) {
			continue
		}
		if len(q.ModelKeys) > 0 && !slices.Contains(q.ModelKeys, l.ModelKey) {
			continue
		}
		if q.Fuel != "" && string(normalize.Fuel(l.FuelType)) != q.Fuel {
			continue
		}
		out = append(out, *l)
	}
	return out
}

func plausible(l *domain.Listing) bool {
	return l.PriceSEK >= 20000 && l.ModelYear >= 2005 && l.MileageMil > 0
}
