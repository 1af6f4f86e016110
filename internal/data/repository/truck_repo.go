package repository

import (
	"context"
	"fmt"

	"junk-hauling/internal/data/entity"
	"junk-hauling/pkg/database"

	"go.uber.org/zap"
)

type TruckRepository interface {
	Create(ctx context.Context, truck *entity.Truck) error
	FindAll(ctx context.Context) ([]*entity.Truck, error)
}

type truckRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTruckRepository(db database.PgxIface, log *zap.Logger) TruckRepository {
	return &truckRepository{
		db:  db,
		log: log.With(zap.String("repository", "truck")),
	}
}

func (r *truckRepository) Create(ctx context.Context, truck *entity.Truck) error {
	query := `
		INSERT INTO trucks (id, capacity, current_route, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		truck.ID,
		truck.Capacity,
		truck.CurrentRoute,
		truck.CreatedAt,
		truck.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create truck",
			zap.Error(err),
			zap.Float64("capacity", truck.Capacity),
		)
		return fmt.Errorf("create truck: %w", err)
	}

	return nil
}

func (r *truckRepository) FindAll(ctx context.Context) ([]*entity.Truck, error) {
	query := `
		SELECT id, capacity, current_route, created_at, updated_at
		FROM trucks
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all trucks", zap.Error(err))
		return nil, fmt.Errorf("find all trucks: %w", err)
	}
	defer rows.Close()

	var trucks []*entity.Truck
	for rows.Next() {
		var truck entity.Truck
		err := rows.Scan(
			&truck.ID,
			&truck.Capacity,
			&truck.CurrentRoute,
			&truck.CreatedAt,
			&truck.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan truck row", zap.Error(err))
			return nil, fmt.Errorf("scan truck row: %w", err)
		}
		trucks = append(trucks, &truck)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate truck rows: %w", err)
	}

	return trucks, nil
}
