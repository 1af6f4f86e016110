package response

import (
	"time"

	"junk-hauling/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	QuoteID       string    `json:"quote_id"`
	ScheduledDate string    `json:"scheduled_date"`
	Address       string    `json:"address"`
	Categories    string    `json:"categories"`
	CreatedAt     time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		CustomerID:    booking.CustomerID.String(),
		QuoteID:       booking.QuoteID.String(),
		ScheduledDate: booking.ScheduledDate.Format("2006-01-02"),
		Address:       booking.Address,
		Categories:    booking.Categories,
		CreatedAt:     booking.CreatedAt,
	}
}
