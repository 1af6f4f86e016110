package request

type FacilityRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=100"`
	Location           string `json:"location" validate:"required,min=1,max=200"`
	AcceptedCategories string `json:"accepted_categories" validate:"required"`
}
