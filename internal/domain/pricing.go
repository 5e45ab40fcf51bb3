package domain

// Storefront pricing rules. The server recomputes these on checkout; the
// client applies the same constants for display.
const (
	// FreeShippingThreshold: orders strictly above this subtotal ship free.
	// A subtotal of exactly 500 still pays the flat fee.
	FreeShippingThreshold = 500.0
	// FlatShippingFee applies below the free-shipping threshold.
	FlatShippingFee = 50.0
	// TaxRate is a flat fraction of the subtotal.
	TaxRate = 0.10
)

// Shipping returns the shipping fee for the given subtotal.
func Shipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// Tax returns the tax owed on the given subtotal.
func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// Total returns subtotal plus shipping plus tax.
func Total(subtotal float64) float64 {
	return subtotal + Shipping(subtotal) + Tax(subtotal)
}
