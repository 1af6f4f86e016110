package response

import (
	"time"

	"junk-hauling/internal/data/entity"
)

type FacilityResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Location           string    `json:"location"`
	AcceptedCategories string    `json:"accepted_categories"`
	CreatedAt          time.Time `json:"created_at"`
}

func FacilityToResponse(facility *entity.DisposalFacility) FacilityResponse {
	return FacilityResponse{
		ID:                 facility.ID.String(),
		Name:               facility.Name,
		Location:           facility.Location,
		AcceptedCategories: facility.AcceptedCategories,
		CreatedAt:          facility.CreatedAt,
	}
}
