package request

// BookingRequest is the direct-create path. Neither customer_id nor quote_id
// existence is checked on this path; only the convert flow reads the quote.
type BookingRequest struct {
	CustomerID    string `json:"customer_id" validate:"required,uuid"`
	QuoteID       string `json:"quote_id" validate:"required,uuid"`
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Address       string `json:"address" validate:"required"`
	Categories    string `json:"categories" validate:"required"`
}
