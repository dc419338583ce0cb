package dto

// ItemResponse is a catalog entry as seen by the requesting user.
type ItemResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	IsFavorite bool    `json:"is_favorite"`
}

// CategoriesResponse lists category display names.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ItemsResponse wraps a list of items.
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
}
