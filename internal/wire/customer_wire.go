package wire

import (
	"junk-hauling/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler) {
	// GET /customers - list all customers
	r.Get("/customers", customerHandler.GetCustomers)

	// POST /customers - create customer
	r.Post("/customers", customerHandler.CreateCustomer)
}
