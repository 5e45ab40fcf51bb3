package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/cart"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/session"
)

type CartHandler struct {
	engine   *cart.Engine
	sessions *session.Store
	timeout  time.Duration
}

func NewCartHandler(engine *cart.Engine, sessions *session.Store, timeout time.Duration) *CartHandler {
	return &CartHandler{
		engine:   engine,
		sessions: sessions,
		timeout:  timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartViewDTO is the cart snapshot plus the derived pricing breakdown.
type CartViewDTO struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
	Shipping   float64           `json:"shipping"`
	Tax        float64           `json:"tax"`
	Total      float64           `json:"total"`
}

func (h *CartHandler) view() CartViewDTO {
	snap := h.engine.Snapshot()
	return CartViewDTO{
		Items:      snap.Items,
		TotalItems: snap.TotalItems,
		TotalPrice: snap.TotalPrice,
		Shipping:   domain.Shipping(snap.TotalPrice),
		Tax:        domain.Tax(snap.TotalPrice),
		Total:      domain.Total(snap.TotalPrice),
	}
}

func (h *CartHandler) requireCustomer(w http.ResponseWriter) bool {
	if !h.sessions.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return false
	}
	if user := h.sessions.User(); user == nil || user.Role != domain.RoleCustomer {
		respondError(w, http.StatusForbidden, "not_a_customer", "only customers have a cart")
		return false
	}
	return true
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	if !h.requireCustomer(w) {
		return
	}
	respondJSON(w, http.StatusOK, h.view())
}

// Reload re-fetches the authoritative cart from the marketplace.
func (h *CartHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !h.requireCustomer(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if res := h.engine.Load(ctx); !res.Success {
		respondError(w, http.StatusBadGateway, "load_failed", res.Message)
		return
	}
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireCustomer(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	res := h.engine.AddItem(ctx, req.ProductID, req.Quantity)
	if !res.Success {
		respondError(w, http.StatusBadRequest, "add_failed", res.Message)
		return
	}
	respondJSON(w, http.StatusCreated, h.view())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if !h.requireCustomer(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "productID")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	res := h.engine.UpdateQuantity(ctx, productID, req.Quantity)
	if !res.Success {
		respondError(w, http.StatusBadRequest, "update_failed", res.Message)
		return
	}
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireCustomer(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "productID")

	res := h.engine.RemoveItem(ctx, productID)
	if !res.Success {
		respondError(w, http.StatusBadRequest, "remove_failed", res.Message)
		return
	}
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if !h.requireCustomer(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res := h.engine.Clear(ctx)
	if !res.Success {
		respondError(w, http.StatusBadRequest, "clear_failed", res.Message)
		return
	}
	respondJSON(w, http.StatusOK, h.view())
}
