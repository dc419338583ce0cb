package model

// Item is a catalog entry served by the data service.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Catalog indexes items by identifier.
type Catalog map[string]Item

// Cart maps item identifiers to quantities for one shopper.
type Cart map[string]int

// Empty reports whether the cart has no items.
func (c Cart) Empty() bool {
	return len(c) == 0
}

// Count is the number of distinct items in the cart.
func (c Cart) Count() int {
	return len(c)
}

// Snapshot prices the cart against the catalog. Unknown items are reported by id.
func (c Cart) Snapshot(catalog Catalog) (CartSnapshot, []string) {
	snapshot := make(CartSnapshot, len(c))
	var missing []string
	for id, qty := range c {
		item, ok := catalog[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		snapshot[id] = CartLine{Quantity: qty, Price: item.Price, Name: item.Name}
	}
	return snapshot, missing
}
