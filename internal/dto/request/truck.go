package request

type TruckRequest struct {
	Capacity     float64 `json:"capacity" validate:"required"`
	CurrentRoute *string `json:"current_route,omitempty"`
}
