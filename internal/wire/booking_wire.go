package wire

import (
	"junk-hauling/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// GET /bookings - list bookings (paginated, ?page=&per_page=)
	r.Get("/bookings", bookingHandler.GetBookings)

	// POST /bookings - direct booking create (no quote conversion)
	r.Post("/bookings", bookingHandler.CreateBooking)
}
