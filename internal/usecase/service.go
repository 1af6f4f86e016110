package usecase

import (
	"junk-hauling/internal/data/repository"
	"junk-hauling/pkg/filestore"

	"go.uber.org/zap"
)

type Service struct {
	Customer CustomerService
	Quote    QuoteService
	Booking  BookingService
	Truck    TruckService
	Facility FacilityService
	Admin    AdminService
}

func NewService(repo *repository.Repository, photos filestore.FileStore, log *zap.Logger) *Service {
	return &Service{
		Customer: NewCustomerService(repo.Customer, log),
		Quote:    NewQuoteService(repo, photos, log),
		Booking:  NewBookingService(repo.Booking, log),
		Truck:    NewTruckService(repo.Truck, log),
		Facility: NewFacilityService(repo.Facility, log),
		Admin:    NewAdminService(repo, log),
	}
}
