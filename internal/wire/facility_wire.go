package wire

import (
	"junk-hauling/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFacility(r chi.Router, facilityHandler *adaptor.FacilityHandler) {
	// GET /disposal-facilities - list facilities
	r.Get("/disposal-facilities", facilityHandler.GetFacilities)

	// POST /disposal-facilities - register facility
	r.Post("/disposal-facilities", facilityHandler.CreateFacility)
}
