package models

import "math"

// DefaultItemImage is used when an add-to-cart trigger carries no image.
const DefaultItemImage = "images/ss.jpg"

// LineItem is one purchase intent in a cart. Adding the same product twice
// yields two line items.
type LineItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Valid reports whether the price is a finite, non-negative number.
func (l LineItem) Valid() bool {
	return !math.IsNaN(l.Price) && !math.IsInf(l.Price, 0) && l.Price >= 0
}

// CartTotal sums the prices of items.
func CartTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return total
}
