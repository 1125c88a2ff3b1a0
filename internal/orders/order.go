// Package orders records placed orders to a flat append-only CSV log.
package orders

import (
	"encoding/json"
	"strings"

	"fashionous/internal/catalog"
)

// Product is one ordered catalog item as submitted by the client. The price
// is kept raw: the log writes whatever the client sent, while the order
// total coerces non-numeric values to 0.
type Product struct {
	Title    string          `json:"title"`
	DesignID string          `json:"design_id"`
	PriceINR json.RawMessage `json:"price_inr"`
}

// Order is a validated, priced order ready for the log. Append-only: an
// order is written once and never updated.
type Order struct {
	ID       string
	Name     string
	Phone    string
	Address  string
	Products []Product

	// TotalAmount is fixed at placement time as the sum of the product
	// prices, with non-numeric prices contributing 0. It is never
	// recomputed later.
	TotalAmount int

	// CoercedPrices counts products whose price could not be parsed and
	// contributed 0 to the total.
	CoercedPrices int
}

// New builds an order with the given id and derives its total.
func New(id, name, phone, address string, products []Product) Order {
	o := Order{
		ID:       id,
		Name:     name,
		Phone:    phone,
		Address:  address,
		Products: products,
	}
	for _, p := range products {
		amount, coerced := catalog.CoercePrice(p.PriceINR)
		o.TotalAmount += amount
		if coerced {
			o.CoercedPrices++
		}
	}
	return o
}

// rawPrice renders the submitted price for the log: string contents as-is,
// numeric literals by their text, absent values as "0".
func rawPrice(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "0"
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return trimmed
}
