package ranking

import (
	"github.com/donaldgifford/hela-notan/internal/store"
	"github.com/donaldgifford/hela-notan/pkg/deal"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// Page size bounds.
const (
	DefaultPageSize = 30
	MaxPageSize     = 100
)

// SortKey selects the listing order.
type SortKey string

// Sort keys. SortDeal orders by deal rating, then by residual.
const (
	SortPrice      SortKey = store.SortPrice
	SortYear       SortKey = store.SortYear
	SortMileage    SortKey = store.SortMileage
	SortHorsepower SortKey = store.SortHorsepower
	SortDeal       SortKey = "deal"
)

// ParseSortKey validates a sort key. The empty string selects SortPrice.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case "":
		return SortPrice, true
	case SortPrice, SortYear, SortMileage, SortHorsepower, SortDeal:
		return k, true
	default:
		return "", false
	}
}

// Filter restricts the candidate listings.
type Filter struct {
	ModelKeys []string
	Fuel      domain.Fuel // empty for all fuels
}

// Query is one listing request.
type Query struct {
	Filter
	Deal     deal.Filter
	Sort     SortKey
	Desc     bool
	Page     int
	PageSize int
}

// Strategy is how a Query is executed: DirectQuery or DealAwareQuery.
type Strategy interface {
	Mode() string
	query() Query
}

// DirectQuery pushes sorting and pagination down to the repository. Deal
// fields are computed for the returned page only.
type DirectQuery struct {
	Query
}

// Mode implements Strategy.
func (DirectQuery) Mode() string { return "direct" }

func (d DirectQuery) query() Query { return d.Query }

// DealAwareQuery scores the whole candidate set in memory so it can filter
// and sort on the derived deal fields before paginating.
type DealAwareQuery struct {
	Query
}

// Mode implements Strategy.
func (DealAwareQuery) Mode() string { return "deal" }

func (d DealAwareQuery) query() Query { return d.Query }

// Plan normalizes q and selects its strategy. A deal filter or a deal sort
// needs the derived fields of every candidate.
func Plan(q Query) Strategy {
	q = normalizeQuery(q)
	if q.Deal != deal.FilterNone || q.Sort == SortDeal {
		return DealAwareQuery{Query: q}
	}
	return DirectQuery{Query: q}
}

func normalizeQuery(q Query) Query {
	if q.Sort == "" {
		q.Sort = SortPrice
	}
	q.Page = max(q.Page, 1)
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	q.PageSize = min(q.PageSize, MaxPageSize)
	return q
}

func (q Query) offset() int {
	return (q.Page - 1) * q.PageSize
}

// carQuery maps the static part of q onto a repository query.
func (q Query) carQuery() *store.CarQuery {
	cq := &store.CarQuery{
		ModelKeys: q.ModelKeys,
		Fuel:      string(q.Fuel),
		SortBy:    string(q.Sort),
		Desc:      q.Desc,
	}
	if q.Sort == SortDeal {
		cq.SortBy = store.SortPrice
		cq.Desc = false
	}
	return cq
}
