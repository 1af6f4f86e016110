package request

// QuoteRequest carries the multipart form fields of a quote submission. The
// photo itself travels separately as the uploaded file. CustomerID is parsed
// but its existence is never checked.
type QuoteRequest struct {
	CustomerID      string  `json:"customer_id" validate:"required,uuid"`
	Categories      string  `json:"categories" validate:"required"`
	EstimatedVolume float64 `json:"estimated_volume"`
	PriceEstimate   float64 `json:"price_estimate"`
}

// QuoteConvertRequest carries the admin convert form fields.
type QuoteConvertRequest struct {
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Address       string `json:"address" validate:"required"`
}
