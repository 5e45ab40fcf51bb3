package api

import (
	"context"
	"net/http"
	"time"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
)

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderRequest places an order from the server-side cart.
type OrderRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes,omitempty"`
}

// Order is the server's record of a placed order.
type Order struct {
	ID        string            `json:"_id"`
	Status    string            `json:"status"`
	Items     []domain.CartItem `json:"items"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"createdAt"`
}

// OrderResponse wraps order creation.
type OrderResponse struct {
	Order   Order  `json:"order"`
	Message string `json:"message"`
}

// CreateOrder checks out the current cart. The server empties the cart as a
// side effect, callers should reload the local snapshot afterwards.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var resp struct {
		Orders []Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/orders/my-orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}
