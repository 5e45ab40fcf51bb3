package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
)

func newTestServer(t *testing.T, configure func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	configure(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/api/users/cart", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
			gotRequestID = req.Header.Get("X-Request-ID")
			json.NewEncoder(w).Encode(domain.Cart{})
		})
	})

	sut := NewClient(srv.URL, StaticToken("tok-123"), 5*time.Second)
	_, err := sut.GetCart(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoBearerWhenTokenEmpty(t *testing.T) {
	var gotAuth string
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
			json.NewEncoder(w).Encode(AuthResponse{Token: "fresh"})
		})
	})

	sut := NewClient(srv.URL, StaticToken(""), 5*time.Second)
	resp, err := sut.Login(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
	assert.Equal(t, "fresh", resp.Token)
}

func TestClient_DecodesServerRejection(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/api/users/cart/add", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Insufficient stock"})
		})
	})

	sut := NewClient(srv.URL, StaticToken("tok"), 5*time.Second)
	_, err := sut.AddCartItem(context.Background(), "P1", 10)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Insufficient stock", apiErr.Message)
	assert.True(t, IsRejection(err))
}

func TestClient_RejectionWithoutBodyFallsBackToStatusText(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/api/auth/me", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	})

	sut := NewClient(srv.URL, StaticToken("expired"), 5*time.Second)
	_, err := sut.Me(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestClient_CartMutationRoundTrip(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Put("/api/users/cart/update", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				ProductID string `json:"productId"`
				Quantity  int    `json:"quantity"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "P1", body.ProductID)
			assert.Equal(t, 4, body.Quantity)

			json.NewEncoder(w).Encode(CartResponse{
				Cart: domain.Cart{
					Items:      []domain.CartItem{{Product: domain.Product{ID: "P1", Price: 25}, Quantity: 4}},
					TotalItems: 4,
					TotalPrice: 100,
				},
				Message: "Cart updated",
			})
		})
	})

	sut := NewClient(srv.URL, StaticToken("tok"), 5*time.Second)
	resp, err := sut.UpdateCartItem(context.Background(), "P1", 4)
	require.NoError(t, err)

	assert.Equal(t, "Cart updated", resp.Message)
	assert.Equal(t, 4, resp.Cart.TotalItems)
	assert.True(t, resp.Cart.ConsistentTotals())
}

func TestClient_RemoveUsesPathParam(t *testing.T) {
	var gotID string
	srv := newTestServer(t, func(r chi.Router) {
		r.Delete("/api/users/cart/remove/{productID}", func(w http.ResponseWriter, req *http.Request) {
			gotID = chi.URLParam(req, "productID")
			json.NewEncoder(w).Encode(CartResponse{Message: "Item removed"})
		})
	})

	sut := NewClient(srv.URL, StaticToken("tok"), 5*time.Second)
	resp, err := sut.RemoveCartItem(context.Background(), "P42")
	require.NoError(t, err)

	assert.Equal(t, "P42", gotID)
	assert.Equal(t, "Item removed", resp.Message)
}

func TestClient_BreakerOpensOnTransportFailures(t *testing.T) {
	// A closed server produces genuine transport failures, a 5xx body would
	// still decode as a structured rejection.
	srv := newTestServer(t, func(r chi.Router) {})
	srv.Close()

	sut := NewClient(srv.URL, StaticToken("tok"), 5*time.Second)

	for i := 0; i < 5; i++ {
		_, err := sut.GetCart(context.Background())
		require.Error(t, err)
		assert.False(t, IsRejection(err))
	}

	_, err := sut.GetCart(context.Background())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestClient_RejectionsDoNotTripBreaker(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/api/users/cart/add", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "Insufficient stock"})
		})
	})

	sut := NewClient(srv.URL, StaticToken("tok"), 5*time.Second)
	for i := 0; i < 10; i++ {
		_, err := sut.AddCartItem(context.Background(), "P1", 999)
		require.True(t, IsRejection(err))
	}
}

func TestClient_ProductsQueryEncoding(t *testing.T) {
	var gotQuery string
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/api/products", func(w http.ResponseWriter, req *http.Request) {
			gotQuery = req.URL.RawQuery
			json.NewEncoder(w).Encode(ProductPage{Products: []domain.Product{{ID: "P1"}}, Total: 1})
		})
	})

	sut := NewClient(srv.URL, StaticToken(""), 5*time.Second)
	page, err := sut.Products(context.Background(), ProductQuery{Search: "lamp", Limit: 8, SortBy: "rating.average"})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "search=lamp")
	assert.Contains(t, gotQuery, "limit=8")
	assert.Len(t, page.Products, 1)
}
