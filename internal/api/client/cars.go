package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/donaldgifford/hela-notan/internal/ranking"
)

// ListCarsParams defines query parameters for listing cars.
type ListCarsParams struct {
	Models []string
	Fuel   string
	Deal   string
	Sort   string
	Order  string
	Page   int
	Limit  int
}

func (p *ListCarsParams) values() url.Values {
	q := url.Values{}
	if len(p.Models) > 0 {
		q.Set("models", strings.Join(p.Models, ","))
	}
	if p.Fuel != "" {
		q.Set("fuel", p.Fuel)
	}
	if p.Deal != "" {
		q.Set("deal", p.Deal)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Order != "" {
		q.Set("order", p.Order)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// ListCars returns one page of ranked listings.
func (c *Client) ListCars(ctx context.Context, params *ListCarsParams) (*ranking.Page, error) {
	path := "/api/v1/cars"
	if q := params.values(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page ranking.Page
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
