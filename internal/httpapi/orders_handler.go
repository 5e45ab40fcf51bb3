package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/cart"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/session"
)

// OrdersAPI is the slice of the marketplace client the orders handler needs.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, req api.OrderRequest) (*api.OrderResponse, error)
	MyOrders(ctx context.Context) ([]api.Order, error)
}

type OrdersHandler struct {
	orders   OrdersAPI
	engine   *cart.Engine
	sessions *session.Store
	timeout  time.Duration
}

func NewOrdersHandler(orders OrdersAPI, engine *cart.Engine, sessions *session.Store, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:   orders,
		engine:   engine,
		sessions: sessions,
		timeout:  timeout,
	}
}

// Create places an order from the current cart. The marketplace empties the
// cart server-side, so the local snapshot is reloaded afterwards.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return
	}
	if h.engine.TotalItems() == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty, nothing to order")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req api.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	resp, err := h.orders.CreateOrder(ctx, req)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}

	// The order went through either way, a stale snapshot is not worth a 5xx.
	if res := h.engine.Load(ctx); !res.Success {
		log.Printf("cart reload after order failed: %s", res.Message)
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.orders.MyOrders(ctx)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]api.Order{"orders": orders})
}
