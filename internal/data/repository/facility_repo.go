package repository

import (
	"context"
	"fmt"

	"junk-hauling/internal/data/entity"
	"junk-hauling/pkg/database"

	"go.uber.org/zap"
)

type FacilityRepository interface {
	Create(ctx context.Context, facility *entity.DisposalFacility) error
	FindAll(ctx context.Context) ([]*entity.DisposalFacility, error)
}

type facilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFacilityRepository(db database.PgxIface, log *zap.Logger) FacilityRepository {
	return &facilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "facility")),
	}
}

func (r *facilityRepository) Create(ctx context.Context, facility *entity.DisposalFacility) error {
	query := `
		INSERT INTO disposal_facilities (id, name, location, accepted_categories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		facility.ID,
		facility.Name,
		facility.Location,
		facility.AcceptedCategories,
		facility.CreatedAt,
		facility.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create disposal facility",
			zap.Error(err),
			zap.String("name", facility.Name),
		)
		return fmt.Errorf("create disposal facility %s: %w", facility.Name, err)
	}

	return nil
}

func (r *facilityRepository) FindAll(ctx context.Context) ([]*entity.DisposalFacility, error) {
	query := `
		SELECT id, name, location, accepted_categories, created_at, updated_at
		FROM disposal_facilities
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all disposal facilities", zap.Error(err))
		return nil, fmt.Errorf("find all disposal facilities: %w", err)
	}
	defer rows.Close()

	var facilities []*entity.DisposalFacility
	for rows.Next() {
		var facility entity.DisposalFacility
		err := rows.Scan(
			&facility.ID,
			&facility.Name,
			&facility.Location,
			&facility.AcceptedCategories,
			&facility.CreatedAt,
			&facility.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan disposal facility row", zap.Error(err))
			return nil, fmt.Errorf("scan disposal facility row: %w", err)
		}
		facilities = append(facilities, &facility)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate disposal facility rows: %w", err)
	}

	return facilities, nil
}
