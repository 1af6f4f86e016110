package usecase

import (
	"context"
	"fmt"

	"junk-hauling/internal/data/entity"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests.

type fakeCustomerRepo struct {
	customers []*entity.Customer
	createErr error
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	return f.customers, nil
}

type fakeQuoteRepo struct {
	quotes        []*entity.Quote
	acceptedCalls int
}

func (f *fakeQuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	f.quotes = append(f.quotes, quote)
	return nil
}

func (f *fakeQuoteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	for _, quote := range f.quotes {
		if quote.ID == id {
			return quote, nil
		}
	}
	return nil, nil
}

func (f *fakeQuoteRepo) FindAll(ctx context.Context) ([]*entity.Quote, error) {
	return f.quotes, nil
}

func (f *fakeQuoteRepo) FindPage(ctx context.Context, limit, offset int) ([]*entity.Quote, error) {
	if offset >= len(f.quotes) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.quotes) {
		end = len(f.quotes)
	}
	return f.quotes[offset:end], nil
}

func (f *fakeQuoteRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.quotes)), nil
}

func (f *fakeQuoteRepo) SetAccepted(ctx context.Context, id uuid.UUID) error {
	f.acceptedCalls++
	for _, quote := range f.quotes {
		if quote.ID == id {
			quote.Accepted = true
			return nil
		}
	}
	return fmt.Errorf("quote %s not found", id.String())
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) FindPage(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	if offset >= len(f.bookings) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.bookings) {
		end = len(f.bookings)
	}
	return f.bookings[offset:end], nil
}

func (f *fakeBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

type fakeTruckRepo struct {
	trucks []*entity.Truck
}

func (f *fakeTruckRepo) Create(ctx context.Context, truck *entity.Truck) error {
	f.trucks = append(f.trucks, truck)
	return nil
}

func (f *fakeTruckRepo) FindAll(ctx context.Context) ([]*entity.Truck, error) {
	return f.trucks, nil
}

type fakeFacilityRepo struct {
	facilities []*entity.DisposalFacility
}

func (f *fakeFacilityRepo) Create(ctx context.Context, facility *entity.DisposalFacility) error {
	f.facilities = append(f.facilities, facility)
	return nil
}

func (f *fakeFacilityRepo) FindAll(ctx context.Context) ([]*entity.DisposalFacility, error) {
	return f.facilities, nil
}
