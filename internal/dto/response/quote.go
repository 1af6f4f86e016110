package response

import (
	"time"

	"junk-hauling/internal/data/entity"
)

type QuoteResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	Categories      string    `json:"categories"`
	EstimatedVolume float64   `json:"estimated_volume"`
	PriceEstimate   float64   `json:"price_estimate"`
	Accepted        bool      `json:"accepted"`
	PhotoPath       *string   `json:"photo_path,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func QuoteToResponse(quote *entity.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              quote.ID.String(),
		CustomerID:      quote.CustomerID.String(),
		Categories:      quote.Categories,
		EstimatedVolume: quote.EstimatedVolume,
		PriceEstimate:   quote.PriceEstimate,
		Accepted:        quote.Accepted,
		PhotoPath:       quote.PhotoPath,
		CreatedAt:       quote.CreatedAt,
	}
}
