package response

// QuoteRow joins a quote with its customer for the admin quotes page.
// Customer is nil when the referenced customer does not exist; the page
// renders the row anyway.
type QuoteRow struct {
	Quote    QuoteResponse
	Customer *CustomerResponse
}

// BookingRow joins a booking with its customer and source quote for the admin
// bookings page. Either side may be nil for dangling references.
type BookingRow struct {
	Booking  BookingResponse
	Customer *CustomerResponse
	Quote    *QuoteResponse
}
