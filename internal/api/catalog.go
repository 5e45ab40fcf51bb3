package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
)

// ProductQuery holds the catalog listing filters. Zero values are omitted.
type ProductQuery struct {
	Search   string
	Category string
	Brand    string
	SortBy   string
	Page     int
	Limit    int
}

func (q ProductQuery) encode() string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Brand != "" {
		values.Set("brand", q.Brand)
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

func (c *Client) Products(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/api/products"+query.encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Product(ctx context.Context, productID string) (*domain.Product, error) {
	var resp struct {
		Product domain.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products/"+productID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *Client) Brands(ctx context.Context) ([]string, error) {
	var resp struct {
		Brands []string `json:"brands"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products/brands", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Brands, nil
}
