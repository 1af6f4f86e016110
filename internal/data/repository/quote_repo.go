package repository

import (
	"context"
	"fmt"

	"junk-hauling/internal/data/entity"
	"junk-hauling/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	FindAll(ctx context.Context) ([]*entity.Quote, error)
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Quote, error)
	CountAll(ctx context.Context) (int64, error)

	// SetAccepted flips the accepted flag to true. Repeat calls are no-ops in
	// effect; there is no transition back.
	SetAccepted(ctx context.Context, id uuid.UUID) error
}

type quoteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewQuoteRepository(db database.PgxIface, log *zap.Logger) QuoteRepository {
	return &quoteRepository{
		db:  db,
		log: log.With(zap.String("repository", "quote")),
	}
}

func (r *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, customer_id, categories, estimated_volume, price_estimate, accepted, photo_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		quote.ID,
		quote.CustomerID,
		quote.Categories,
		quote.EstimatedVolume,
		quote.PriceEstimate,
		quote.Accepted,
		quote.PhotoPath,
		quote.CreatedAt,
		quote.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create quote",
			zap.Error(err),
			zap.String("customer_id", quote.CustomerID.String()),
		)
		return fmt.Errorf("create quote for customer %s: %w", quote.CustomerID.String(), err)
	}

	return nil
}

func (r *quoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	query := `
		SELECT id, customer_id, categories, estimated_volume, price_estimate, accepted, photo_path, created_at, updated_at
		FROM quotes
		WHERE id = $1
	`

	var quote entity.Quote
	err := r.db.QueryRow(ctx, query, id).Scan(
		&quote.ID,
		&quote.CustomerID,
		&quote.Categories,
		&quote.EstimatedVolume,
		&quote.PriceEstimate,
		&quote.Accepted,
		&quote.PhotoPath,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find quote by ID",
			zap.Error(err),
			zap.String("quote_id", id.String()),
		)
		return nil, fmt.Errorf("find quote by ID %s: %w", id.String(), err)
	}

	return &quote, nil
}

func (r *quoteRepository) FindAll(ctx context.Context) ([]*entity.Quote, error) {
	query := `
		SELECT id, customer_id, categories, estimated_volume, price_estimate, accepted, photo_path, created_at, updated_at
		FROM quotes
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all quotes", zap.Error(err))
		return nil, fmt.Errorf("find all quotes: %w", err)
	}
	defer rows.Close()

	return scanQuotes(rows, r.log)
}

func (r *quoteRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT id, customer_id, categories, estimated_volume, price_estimate, accepted, photo_path, created_at, updated_at
		FROM quotes
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find quote page",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find quotes limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return scanQuotes(rows, r.log)
}

func (r *quoteRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM quotes`

	var total int64
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count quotes", zap.Error(err))
		return 0, fmt.Errorf("count all quotes: %w", err)
	}

	return total, nil
}

func (r *quoteRepository) SetAccepted(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE quotes SET accepted = TRUE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to set quote accepted",
			zap.Error(err),
			zap.String("quote_id", id.String()),
		)
		return fmt.Errorf("set quote %s accepted: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("quote %s not found", id.String())
	}

	return nil
}

func scanQuotes(rows pgx.Rows, log *zap.Logger) ([]*entity.Quote, error) {
	var quotes []*entity.Quote
	for rows.Next() {
		var quote entity.Quote
		err := rows.Scan(
			&quote.ID,
			&quote.CustomerID,
			&quote.Categories,
			&quote.EstimatedVolume,
			&quote.PriceEstimate,
			&quote.Accepted,
			&quote.PhotoPath,
			&quote.CreatedAt,
			&quote.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan quote row", zap.Error(err))
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		quotes = append(quotes, &quote)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate quote rows: %w", err)
	}

	return quotes, nil
}
