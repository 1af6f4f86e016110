package entity

import (
	"github.com/google/uuid"
)

// Quote is a priced estimate for hauling a set of item categories, optionally
// backed by an uploaded photo. CustomerID is referential but unenforced.
type Quote struct {
	Base
	CustomerID      uuid.UUID `db:"customer_id"`
	Categories      string    `db:"categories"`
	EstimatedVolume float64   `db:"estimated_volume"`
	PriceEstimate   float64   `db:"price_estimate"`
	Accepted        bool      `db:"accepted"`
	PhotoPath       *string   `db:"photo_path"`
}
