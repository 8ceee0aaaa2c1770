package models

import "time"

// Service is a bookable offering owned by a shop. Its availability map is
// mutated only through the catalog service; the booking engine reads it.
type Service struct {
	ID           string             `bson:"id" json:"id"`
	ShopID       string             `bson:"shopId" json:"shopId"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Availability WeeklyAvailability `bson:"availability" json:"availability"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
