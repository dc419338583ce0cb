package dto

// RatingRequest rates the other party of a delivered order.
type RatingRequest struct {
	OrderID     int64  `json:"order_id" binding:"required"`
	RatedUserID string `json:"rated_user_id" binding:"required"`
	RaterRole   string `json:"rater_role" binding:"required"`
	Rating      int    `json:"rating"`
}

// RoleRatingResponse is one rating aggregate. Average is null until rated.
type RoleRatingResponse struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// RatingsResponse holds both aggregates of a user.
type RatingsResponse struct {
	UserID    string             `json:"user_id"`
	Shopper   RoleRatingResponse `json:"shopper"`
	Deliverer RoleRatingResponse `json:"deliverer"`
}

// ProfileRequest edits contact details.
type ProfileRequest struct {
	VenmoHandle string `json:"venmo_handle"`
	PhoneNumber string `json:"phone_number"`
}

// UserResponse is the public part of a user record.
type UserResponse struct {
	UserID          string `json:"user_id"`
	VenmoHandle     string `json:"venmo_handle"`
	PhoneNumber     string `json:"phone_number"`
	ProfileComplete bool   `json:"profile_complete"`
}

// StatsResponse summarizes a shopper's history.
type StatsResponse struct {
	TotalOrders int     `json:"total_orders"`
	TotalSpent  float64 `json:"total_spent"`
	TotalItems  int     `json:"total_items"`
}

// ProfileResponse is the profile page payload.
type ProfileResponse struct {
	UserResponse
	Stats     StatsResponse   `json:"stats"`
	Orders    []OrderResponse `json:"orders"`
	Favorites []ItemResponse  `json:"favorites"`
	Ratings   RatingsResponse `json:"ratings"`
}
