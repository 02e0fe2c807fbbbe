package cart

import (
	"github.com/shopspring/decimal"

	"github.com/florawhisper/storefront-gateway/pkg/types"
)

var (
	shippingFee = decimal.RequireFromString("5.99")
	taxRate     = decimal.RequireFromString("0.08")
)

// OrderTotals is the order cost breakdown shown at checkout.
type OrderTotals struct {
	Subtotal types.Money `json:"subtotal"`
	Shipping types.Money `json:"shipping"`
	Tax      types.Money `json:"tax"`
	Total    types.Money `json:"total"`
}

// OrderTotal computes shipping, tax, and the grand total for a cart
// subtotal. Shipping is a flat fee and tax is a fixed rate on the
// subtotal, both rounded to cents.
func OrderTotal(subtotal types.Money) OrderTotals {
	shipping := types.NewMoney(shippingFee)
	tax := types.NewMoney(subtotal.Decimal.Mul(taxRate))
	total := subtotal.Add(shipping).Add(tax)
	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}
}
