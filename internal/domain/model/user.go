package model

import "time"

// User is a campus member identified by CAS netid.
type User struct {
	ID              string
	Name            string
	VenmoHandle     string
	PhoneNumber     string
	ShopperRating   RatingStats
	DelivererRating RatingStats
	CreatedAt       time.Time
}

// Rating returns the aggregate stored under the role's columns.
func (u User) Rating(role RatingRole) RatingStats {
	if role == RoleShopper {
		return u.ShopperRating
	}
	return u.DelivererRating
}

// ProfileComplete reports whether contact details needed for payment are filled in.
func (u User) ProfileComplete() bool {
	return u.VenmoHandle != "" && u.PhoneNumber != ""
}

// Contact is the editable part of a profile.
type Contact struct {
	VenmoHandle string
	PhoneNumber string
}

// ShopperStats summarizes a user's order history.
type ShopperStats struct {
	TotalOrders int
	TotalSpent  float64
	TotalItems  int
}

// StatsOf aggregates order history; spending excludes delivery fees.
func StatsOf(orders []Order) ShopperStats {
	var stats ShopperStats
	var spent float64
	for _, o := range orders {
		stats.TotalItems += o.TotalItems
		spent += o.Cart.Subtotal()
	}
	stats.TotalOrders = len(orders)
	stats.TotalSpent = Round(spent, 2)
	return stats
}
