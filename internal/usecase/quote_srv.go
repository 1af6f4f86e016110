package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"junk-hauling/internal/data/entity"
	"junk-hauling/internal/data/repository"
	"junk-hauling/internal/dto/request"
	"junk-hauling/internal/dto/response"
	"junk-hauling/pkg/filestore"
	"junk-hauling/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuoteService interface {
	CreateQuoteWithPhoto(ctx context.Context, req *request.QuoteRequest, filename string, photo io.Reader) (*response.QuoteResponse, error)
	GetQuotes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.QuoteResponse], error)
	GetQuotePhoto(ctx context.Context, quoteID string) (io.ReadCloser, string, error)
	ApproveQuote(ctx context.Context, quoteID string) error
	ConvertQuoteToBooking(ctx context.Context, quoteID string, req *request.QuoteConvertRequest) (*response.BookingResponse, error)
}

type quoteService struct {
	repo   *repository.Repository // quote + booking repos for conversion
	photos filestore.FileStore
	log    *zap.Logger
}

func NewQuoteService(repo *repository.Repository, photos filestore.FileStore, log *zap.Logger) QuoteService {
	return &quoteService{
		repo:   repo,
		photos: photos,
		log:    log.With(zap.String("service", "quote")),
	}
}

// CreateQuoteWithPhoto stores the photo first, then inserts the quote record
// pointing at it. The two writes are not linked transactionally; a crash in
// between leaves an orphan file on disk. Customer existence is not checked.
func (s *quoteService) CreateQuoteWithPhoto(ctx context.Context, req *request.QuoteRequest, filename string, photo io.Reader) (*response.QuoteResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
	}

	storedPath, err := s.photos.Save(ctx, filename, photo)
	if err != nil {
		s.log.Error("Failed to store quote photo",
			zap.Error(err),
			zap.String("filename", filename),
		)
		return nil, fmt.Errorf("store quote photo: %w", err)
	}

	now := time.Now()
	quote := &entity.Quote{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:      customerID,
		Categories:      req.Categories,
		EstimatedVolume: req.EstimatedVolume,
		PriceEstimate:   req.PriceEstimate,
		Accepted:        false,
		PhotoPath:       &storedPath,
	}

	if err := s.repo.Quote.Create(ctx, quote); err != nil {
		s.log.Error("Failed to create quote",
			zap.Error(err),
			zap.String("customer_id", req.CustomerID),
		)
		return nil, fmt.Errorf("create quote: %w", err)
	}

	s.log.Info("Quote created",
		zap.String("quote_id", quote.ID.String()),
		zap.String("customer_id", req.CustomerID),
		zap.String("photo_path", storedPath),
	)

	quoteResp := response.QuoteToResponse(quote)
	return &quoteResp, nil
}

func (s *quoteService) GetQuotes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.QuoteResponse], error) {
	quotes, err := s.repo.Quote.FindPage(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get quotes from repository",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get quotes: %w", err)
	}

	total, err := s.repo.Quote.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count quotes", zap.Error(err))
		return nil, fmt.Errorf("count quotes: %w", err)
	}

	quoteResponses := make([]response.QuoteResponse, len(quotes))
	for i, quote := range quotes {
		quoteResponses[i] = response.QuoteToResponse(quote)
	}

	return response.NewPaginatedResponse(quoteResponses, req.Page, req.PerPage, total), nil
}

func (s *quoteService) GetQuotePhoto(ctx context.Context, quoteID string) (io.ReadCloser, string, error) {
	id, err := uuid.Parse(quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("invalid quote ID format %s: %w", quoteID, err)
	}

	quote, err := s.repo.Quote.FindByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get quote %s: %w", quoteID, err)
	}
	if quote == nil || quote.PhotoPath == nil {
		return nil, "", fmt.Errorf("quote %s photo not found", quoteID)
	}

	reader, contentType, err := s.photos.Open(ctx, *quote.PhotoPath)
	if err != nil {
		s.log.Warn("Failed to open quote photo",
			zap.Error(err),
			zap.String("quote_id", quoteID),
			zap.String("photo_path", *quote.PhotoPath),
		)
		return nil, "", fmt.Errorf("quote %s photo not found", quoteID)
	}

	return reader, contentType, nil
}

// ApproveQuote flips accepted to true. Approving an already approved quote is
// a no-op in effect; there is no transition back.
func (s *quoteService) ApproveQuote(ctx context.Context, quoteID string) error {
	id, err := uuid.Parse(quoteID)
	if err != nil {
		return fmt.Errorf("invalid quote ID format %s: %w", quoteID, err)
	}

	quote, err := s.repo.Quote.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get quote %s: %w", quoteID, err)
	}
	if quote == nil {
		return fmt.Errorf("quote %s not found", quoteID)
	}

	if err := s.repo.Quote.SetAccepted(ctx, id); err != nil {
		s.log.Error("Failed to approve quote",
			zap.Error(err),
			zap.String("quote_id", quoteID),
		)
		return fmt.Errorf("approve quote %s: %w", quoteID, err)
	}

	s.log.Info("Quote approved", zap.String("quote_id", quoteID))
	return nil
}

// ConvertQuoteToBooking creates a booking copying customer_id and categories
// from the quote. Approval is not required, and the quote is not marked
// converted: converting twice yields two independent bookings.
func (s *quoteService) ConvertQuoteToBooking(ctx context.Context, quoteID string, req *request.QuoteConvertRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Convert quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(quoteID)
	if err != nil {
		return nil, fmt.Errorf("invalid quote ID format %s: %w", quoteID, err)
	}

	quote, err := s.repo.Quote.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quote %s: %w", quoteID, err)
	}
	if quote == nil {
		return nil, fmt.Errorf("quote %s not found", quoteID)
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
		CustomerID:    quote.CustomerID,
		QuoteID:       quote.ID,
		ScheduledDate: scheduledDate,
		Address:       req.Address,
		Categories:    quote.Categories,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking from quote",
			zap.Error(err),
			zap.String("quote_id", quoteID),
		)
		return nil, fmt.Errorf("convert quote %s: %w", quoteID, err)
	}

	s.log.Info("Quote converted to booking",
		zap.String("quote_id", quoteID),
		zap.String("booking_id", booking.ID.String()),
		zap.Bool("accepted", quote.Accepted),
	)

	bookingResp := response.BookingToResponse(booking)
	return &bookingResp, nil
}
