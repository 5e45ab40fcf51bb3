package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShipping_BelowThreshold(t *testing.T) {
	assert.Equal(t, 50.0, Shipping(0))
	assert.Equal(t, 50.0, Shipping(499.99))
}

func TestShipping_ExactlyAtThreshold_PaysFlatFee(t *testing.T) {
	// strict >, 500 is not free
	assert.Equal(t, 50.0, Shipping(500))
}

func TestShipping_AboveThreshold_Free(t *testing.T) {
	assert.Equal(t, 0.0, Shipping(500.01))
	assert.Equal(t, 0.0, Shipping(1200))
}

func TestTax_FlatTenPercent(t *testing.T) {
	assert.Equal(t, 0.0, Tax(0))
	assert.Equal(t, 50.0, Tax(500))
	assert.InDelta(t, 9.999, Tax(99.99), 1e-9)
}

func TestTotal_IncludesShippingAndTax(t *testing.T) {
	// 100 + 50 shipping + 10 tax
	assert.Equal(t, 160.0, Total(100))
	// boundary subtotal of 500 still pays the flat fee
	assert.Equal(t, 600.0, Total(500))
	// above threshold only tax is added
	assert.Equal(t, 1100.0, Total(1000))
}
