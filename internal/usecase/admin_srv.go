package usecase

import (
	"context"
	"fmt"

	"junk-hauling/internal/data/repository"
	"junk-hauling/internal/dto/response"

	"go.uber.org/zap"
)

// AdminService builds the read-only projections behind the admin dashboard.
// Full-table scans on every view are accepted at the expected data volume.
type AdminService interface {
	GetQuotesView(ctx context.Context) ([]response.QuoteRow, error)
	GetBookingsView(ctx context.Context) ([]response.BookingRow, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

// GetQuotesView joins every quote with its customer through an in-memory
// lookup. A missing customer leaves the row's Customer nil instead of failing.
func (s *adminService) GetQuotesView(ctx context.Context) ([]response.QuoteRow, error) {
	quotes, err := s.repo.Quote.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get quotes for admin view: %w", err)
	}

	customers, err := s.repo.Customer.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customers for admin view: %w", err)
	}

	customersByID := make(map[string]response.CustomerResponse, len(customers))
	for _, customer := range customers {
		customersByID[customer.ID.String()] = response.CustomerToResponse(customer)
	}

	rows := make([]response.QuoteRow, len(quotes))
	for i, quote := range quotes {
		row := response.QuoteRow{Quote: response.QuoteToResponse(quote)}
		if customer, ok := customersByID[quote.CustomerID.String()]; ok {
			row.Customer = &customer
		}
		rows[i] = row
	}

	s.log.Info("Admin quotes view built",
		zap.Int("quote_count", len(quotes)),
		zap.Int("customer_count", len(customers)),
	)

	return rows, nil
}

// GetBookingsView joins bookings against customers and quotes the same way.
func (s *adminService) GetBookingsView(ctx context.Context) ([]response.BookingRow, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings for admin view: %w", err)
	}

	customers, err := s.repo.Customer.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customers for admin view: %w", err)
	}

	quotes, err := s.repo.Quote.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get quotes for admin view: %w", err)
	}

	customersByID := make(map[string]response.CustomerResponse, len(customers))
	for _, customer := range customers {
		customersByID[customer.ID.String()] = response.CustomerToResponse(customer)
	}

	quotesByID := make(map[string]response.QuoteResponse, len(quotes))
	for _, quote := range quotes {
		quotesByID[quote.ID.String()] = response.QuoteToResponse(quote)
	}

	rows := make([]response.BookingRow, len(bookings))
	for i, booking := range bookings {
		row := response.BookingRow{Booking: response.BookingToResponse(booking)}
		if customer, ok := customersByID[booking.CustomerID.String()]; ok {
			row.Customer = &customer
		}
		if quote, ok := quotesByID[booking.QuoteID.String()]; ok {
			row.Quote = &quote
		}
		rows[i] = row
	}

	s.log.Info("Admin bookings view built",
		zap.Int("booking_count", len(bookings)),
	)

	return rows, nil
}
