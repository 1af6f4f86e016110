package repository

import (
	"junk-hauling/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Customer CustomerRepository
	Quote    QuoteRepository
	Booking  BookingRepository
	Truck    TruckRepository
	Facility FacilityRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Customer: NewCustomerRepository(db, log),
		Quote:    NewQuoteRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Truck:    NewTruckRepository(db, log),
		Facility: NewFacilityRepository(db, log),
	}
}
