package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
)

// CatalogAPI is the slice of the marketplace client the catalog handler needs.
type CatalogAPI interface {
	Products(ctx context.Context, query api.ProductQuery) (*api.ProductPage, error)
	Product(ctx context.Context, productID string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
}

type CatalogHandler struct {
	catalog CatalogAPI
	timeout time.Duration
}

func NewCatalogHandler(catalog CatalogAPI, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.catalog.Products(ctx, api.ProductQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		SortBy:   q.Get("sortBy"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	product, err := h.catalog.Product(ctx, chi.URLParam(r, "productID"))
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	brands, err := h.catalog.Brands(ctx)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"brands": brands})
}
