package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a scheduled service commitment. Categories are copied from the
// quote at conversion time; the booking is immutable after creation.
type Booking struct {
	Base
	CustomerID    uuid.UUID `db:"customer_id"`
	QuoteID       uuid.UUID `db:"quote_id"`
	ScheduledDate time.Time `db:"scheduled_date"`
	Address       string    `db:"address"`
	Categories    string    `db:"categories"`
}
