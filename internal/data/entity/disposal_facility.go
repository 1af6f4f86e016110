package entity

type DisposalFacility struct {
	Base
	Name               string `db:"name"`
	Location           string `db:"location"`
	AcceptedCategories string `db:"accepted_categories"`
}
