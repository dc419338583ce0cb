package model

import (
	"math"
	"sort"
)

// DeliveryFeeRate is the share of the subtotal paid to the deliverer.
const DeliveryFeeRate = 0.10

// Round rounds to the given number of decimal places. Exact halves go to the
// even neighbour, so 2.25 becomes 2.2 and 0.125 becomes 0.12.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}

// CartLine is a priced entry of an order snapshot.
type CartLine struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Name     string  `json:"name"`
}

// CartSnapshot maps item identifiers to priced lines captured at placement time.
type CartSnapshot map[string]CartLine

// Subtotal sums quantity times price over all lines.
func (c CartSnapshot) Subtotal() float64 {
	var total float64
	for _, line := range c {
		total += float64(line.Quantity) * line.Price
	}
	return total
}

// TotalItems sums quantities over all lines.
func (c CartSnapshot) TotalItems() int {
	var n int
	for _, line := range c {
		n += line.Quantity
	}
	return n
}

// ItemIDs returns line identifiers in lexical order.
func (c CartSnapshot) ItemIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Totals is the price breakdown shown to shoppers and deliverers.
type Totals struct {
	Subtotal    float64
	DeliveryFee float64
	Total       float64
}

// PriceOf derives fee and total from a subtotal.
func PriceOf(subtotal float64) Totals {
	fee := Round(subtotal*DeliveryFeeRate, 2)
	return Totals{
		Subtotal:    Round(subtotal, 2),
		DeliveryFee: fee,
		Total:       Round(subtotal+fee, 2),
	}
}

// Earnings is the deliverer payout, equal to the delivery fee.
func (t Totals) Earnings() float64 {
	return t.DeliveryFee
}
