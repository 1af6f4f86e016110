package wire

import (
	"junk-hauling/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler) {
	// Dashboard pages plus form actions, grouped under /admin
	r.Route("/admin", func(r chi.Router) {
		r.Get("/quotes", adminHandler.ViewQuotes)
		r.Get("/bookings", adminHandler.ViewBookings)

		r.Post("/quotes/{quote_id}/approve", adminHandler.ApproveQuote)
		r.Post("/quotes/{quote_id}/convert", adminHandler.ConvertQuote)
	})
}
