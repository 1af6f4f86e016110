package entity

// Truck capacity is in cubic yards. CurrentRoute is opaque free text and is
// never interpreted anywhere.
type Truck struct {
	Base
	Capacity     float64 `db:"capacity"`
	CurrentRoute *string `db:"current_route"`
}
