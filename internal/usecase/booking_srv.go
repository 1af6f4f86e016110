package usecase

import (
	"context"
	"fmt"
	"time"

	"junk-hauling/internal/data/entity"
	"junk-hauling/internal/data/repository"
	"junk-hauling/internal/dto/request"
	"junk-hauling/internal/dto/response"
	"junk-hauling/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.FindPage(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings from repository",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

// CreateBooking is the direct path: customer_id and quote_id are stored as
// given, never checked against their tables.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
	}

	quoteID, err := uuid.Parse(req.QuoteID)
	if err != nil {
		return nil, fmt.Errorf("invalid quote ID format %s: %w", req.QuoteID, err)
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduled date %s: %w", req.ScheduledDate, err)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:    customerID,
		QuoteID:       quoteID,
		ScheduledDate: scheduledDate,
		Address:       req.Address,
		Categories:    req.Categories,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("quote_id", req.QuoteID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", req.CustomerID),
		zap.String("quote_id", req.QuoteID),
	)

	bookingResp := response.BookingToResponse(booking)
	return &bookingResp, nil
}
