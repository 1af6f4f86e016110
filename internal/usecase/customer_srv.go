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

type CustomerService interface {
	GetCustomers(ctx context.Context) ([]response.CustomerResponse, error)
	CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error)
}

type customerService struct {
	repo repository.CustomerRepository
	log  *zap.Logger
}

func NewCustomerService(repo repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

// GetCustomers returns every customer, store order. No pagination.
func (s *customerService) GetCustomers(ctx context.Context) ([]response.CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get customers from repository", zap.Error(err))
		return nil, fmt.Errorf("get customers: %w", err)
	}

	customerResponses := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		customerResponses[i] = response.CustomerToResponse(customer)
	}

	return customerResponses, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name),
	)

	customerResp := response.CustomerToResponse(customer)
	return &customerResp, nil
}
