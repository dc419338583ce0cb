package dto

// UpdateCartRequest sets an absolute quantity.
type UpdateCartRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is one priced cart entry.
type CartLineResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// TotalsResponse is the price breakdown of a cart or order.
type TotalsResponse struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// CartResponse is the live cart.
type CartResponse struct {
	Items   []CartLineResponse `json:"items"`
	Missing []string           `json:"missing,omitempty"`
	Count   int                `json:"count"`
	TotalsResponse
}

// CartCountResponse reports the number of distinct items in the cart.
type CartCountResponse struct {
	Count int `json:"count"`
}

// CartQuantityResponse reports an item quantity after a change.
type CartQuantityResponse struct {
	Success  bool   `json:"success"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}
