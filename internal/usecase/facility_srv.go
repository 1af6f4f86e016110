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

type FacilityService interface {
	GetFacilities(ctx context.Context) ([]response.FacilityResponse, error)
	CreateFacility(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error)
}

type facilityService struct {
	repo repository.FacilityRepository
	log  *zap.Logger
}

func NewFacilityService(repo repository.FacilityRepository, log *zap.Logger) FacilityService {
	return &facilityService{
		repo: repo,
		log:  log.With(zap.String("service", "facility")),
	}
}

func (s *facilityService) GetFacilities(ctx context.Context) ([]response.FacilityResponse, error) {
	facilities, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get disposal facilities from repository", zap.Error(err))
		return nil, fmt.Errorf("get disposal facilities: %w", err)
	}

	facilityResponses := make([]response.FacilityResponse, len(facilities))
	for i, facility := range facilities {
		facilityResponses[i] = response.FacilityToResponse(facility)
	}

	return facilityResponses, nil
}

func (s *facilityService) CreateFacility(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create disposal facility validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	facility := &entity.DisposalFacility{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:               req.Name,
		Location:           req.Location,
		AcceptedCategories: req.AcceptedCategories,
	}

	if err := s.repo.Create(ctx, facility); err != nil {
		s.log.Error("Failed to create disposal facility",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create disposal facility: %w", err)
	}

	s.log.Info("Disposal facility created",
		zap.String("facility_id", facility.ID.String()),
		zap.String("name", facility.Name),
	)

	facilityResp := response.FacilityToResponse(facility)
	return &facilityResp, nil
}
