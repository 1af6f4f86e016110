package wire

import (
	"junk-hauling/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTruck(r chi.Router, truckHandler *adaptor.TruckHandler) {
	// GET /trucks - list trucks
	r.Get("/trucks", truckHandler.GetTrucks)

	// POST /trucks - register truck
	r.Post("/trucks", truckHandler.CreateTruck)
}
