package domain

// Product is the denormalized product snapshot carried inside a cart item.
// Price and Stock reflect the catalog at the time the server built the cart.
type Product struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Image string  `json:"image,omitempty"`
}

// CartItem is one (product, quantity) line. Items are keyed by product ID,
// there is never more than one line per product.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the server-authoritative cart snapshot. TotalItems and TotalPrice
// come from the server alongside Items and mirror what ItemCount/Subtotal
// compute locally.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

// ItemCount sums the quantities of all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Subtotal sums price*quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// ConsistentTotals reports whether the stored totals match the item set.
func (c *Cart) ConsistentTotals() bool {
	return c.TotalItems == c.ItemCount() && c.TotalPrice == c.Subtotal()
}

// ItemFor returns the line for the given product, if present.
func (c *Cart) ItemFor(productID string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// Clone returns a deep copy so readers can hold a snapshot while the
// engine replaces the live one.
func (c *Cart) Clone() Cart {
	out := Cart{
		Items:      make([]CartItem, len(c.Items)),
		TotalItems: c.TotalItems,
		TotalPrice: c.TotalPrice,
	}
	copy(out.Items, c.Items)
	return out
}
