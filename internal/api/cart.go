package api

import (
	"context"
	"net/http"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
)

type cartMutation struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartResponse wraps every cart mutation: the server's authoritative cart
// plus a confirmation message.
type CartResponse struct {
	Cart    domain.Cart `json:"cart"`
	Message string      `json:"message"`
}

func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.do(ctx, http.MethodGet, "/api/users/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) (*CartResponse, error) {
	var resp CartResponse
	err := c.do(ctx, http.MethodPost, "/api/users/cart/add", cartMutation{ProductID: productID, Quantity: quantity}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) (*CartResponse, error) {
	var resp CartResponse
	err := c.do(ctx, http.MethodPut, "/api/users/cart/update", cartMutation{ProductID: productID, Quantity: quantity}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, productID string) (*CartResponse, error) {
	var resp CartResponse
	err := c.do(ctx, http.MethodDelete, "/api/users/cart/remove/"+productID, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearCart deletes the whole cart. The result is deterministic (empty), so
// no cart payload comes back.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/users/cart/clear", nil, nil)
}
