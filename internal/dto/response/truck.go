package response

import (
	"time"

	"junk-hauling/internal/data/entity"
)

type TruckResponse struct {
	ID           string    `json:"id"`
	Capacity     float64   `json:"capacity"`
	CurrentRoute *string   `json:"current_route,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func TruckToResponse(truck *entity.Truck) TruckResponse {
	return TruckResponse{
		ID:           truck.ID.String(),
		Capacity:     truck.Capacity,
		CurrentRoute: truck.CurrentRoute,
		CreatedAt:    truck.CreatedAt,
	}
}
