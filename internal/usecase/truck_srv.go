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

type TruckService interface {
	GetTrucks(ctx context.Context) ([]response.TruckResponse, error)
	CreateTruck(ctx context.Context, req *request.TruckRequest) (*response.TruckResponse, error)
}

type truckService struct {
	repo repository.TruckRepository
	log  *zap.Logger
}

func NewTruckService(repo repository.TruckRepository, log *zap.Logger) TruckService {
	return &truckService{
		repo: repo,
		log:  log.With(zap.String("service", "truck")),
	}
}

func (s *truckService) GetTrucks(ctx context.Context) ([]response.TruckResponse, error) {
	trucks, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get trucks from repository", zap.Error(err))
		return nil, fmt.Errorf("get trucks: %w", err)
	}

	truckResponses := make([]response.TruckResponse, len(trucks))
	for i, truck := range trucks {
		truckResponses[i] = response.TruckToResponse(truck)
	}

	return truckResponses, nil
}

// CreateTruck stores the truck as given. CurrentRoute stays opaque free text;
// nothing dispatches against it.
func (s *truckService) CreateTruck(ctx context.Context, req *request.TruckRequest) (*response.TruckResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create truck validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	truck := &entity.Truck{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Capacity:     req.Capacity,
		CurrentRoute: req.CurrentRoute,
	}

	if err := s.repo.Create(ctx, truck); err != nil {
		s.log.Error("Failed to create truck", zap.Error(err))
		return nil, fmt.Errorf("create truck: %w", err)
	}

	s.log.Info("Truck created",
		zap.String("truck_id", truck.ID.String()),
		zap.Float64("capacity", truck.Capacity),
	)

	truckResp := response.TruckToResponse(truck)
	return &truckResp, nil
}
