package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"junk-hauling/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdminRouter(admin *fakeAdminService, quotes *fakeQuoteService) *chi.Mux {
	h := NewAdminHandler(admin, quotes, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/admin/quotes", h.ViewQuotes)
	r.Get("/admin/bookings", h.ViewBookings)
	r.Post("/admin/quotes/{quote_id}/approve", h.ApproveQuote)
	r.Post("/admin/quotes/{quote_id}/convert", h.ConvertQuote)
	return r
}

func TestViewQuotesRendersRows(t *testing.T) {
	quoteID := uuid.New().String()
	photoPath := "uploads/abc_photo.jpg"
	admin := &fakeAdminService{
		quoteRows: []response.QuoteRow{
			{
				Quote: response.QuoteResponse{
					ID:              quoteID,
					CustomerID:      uuid.New().String(),
					Categories:      "furniture",
					EstimatedVolume: 10.5,
					PriceEstimate:   150,
					Accepted:        false,
					PhotoPath:       &photoPath,
					CreatedAt:       time.Now(),
				},
				Customer: &response.CustomerResponse{Name: "Alice", Phone: "555-0100"},
			},
			{
				// Dangling customer reference still renders
				Quote: response.QuoteResponse{
					ID:         uuid.New().String(),
					Categories: "appliances",
					Accepted:   true,
				},
			},
		},
	}

	r := newAdminRouter(admin, &fakeQuoteService{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/quotes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "555-0100")
	assert.Contains(t, body, "furniture")
	assert.Contains(t, body, "pending")
	assert.Contains(t, body, "approved")
	assert.Contains(t, body, fmt.Sprintf("/admin/quotes/%s/approve", quoteID))
	assert.Contains(t, body, fmt.Sprintf("/quotes/%s/photo", quoteID))
}

func TestViewBookingsRendersRows(t *testing.T) {
	admin := &fakeAdminService{
		bookingRows: []response.BookingRow{
			{
				Booking: response.BookingResponse{
					ID:            uuid.New().String(),
					ScheduledDate: "2024-03-15",
					Address:       "123 Main St",
					Categories:    "yard waste",
				},
				Customer: &response.CustomerResponse{Name: "Bob"},
				Quote:    &response.QuoteResponse{PriceEstimate: 200},
			},
		},
	}

	r := newAdminRouter(admin, &fakeQuoteService{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/bookings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Bob")
	assert.Contains(t, body, "2024-03-15")
	assert.Contains(t, body, "123 Main St")
}

func TestApproveQuoteRedirects(t *testing.T) {
	quotes := &fakeQuoteService{}
	r := newAdminRouter(&fakeAdminService{}, quotes)

	quoteID := uuid.New().String()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/quotes/"+quoteID+"/approve", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/quotes", rec.Header().Get("Location"))
	assert.Equal(t, []string{quoteID}, quotes.approvedIDs)
}

func TestApproveQuoteNotFound(t *testing.T) {
	quotes := &fakeQuoteService{approveErr: fmt.Errorf("quote %s not found", uuid.New())}
	r := newAdminRouter(&fakeAdminService{}, quotes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/quotes/"+uuid.New().String()+"/approve", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestConvertQuoteRedirects(t *testing.T) {
	quotes := &fakeQuoteService{}
	r := newAdminRouter(&fakeAdminService{}, quotes)

	quoteID := uuid.New().String()
	form := url.Values{
		"scheduled_date": {"2024-03-15"},
		"address":        {"123 Main St"},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/quotes/"+quoteID+"/convert", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/quotes", rec.Header().Get("Location"))
	assert.Equal(t, []string{quoteID}, quotes.convertedIDs)
	require.NotNil(t, quotes.lastConvertReq)
	assert.Equal(t, "2024-03-15", quotes.lastConvertReq.ScheduledDate)
	assert.Equal(t, "123 Main St", quotes.lastConvertReq.Address)
}

func TestConvertQuoteNotFound(t *testing.T) {
	quotes := &fakeQuoteService{convertErr: fmt.Errorf("quote %s not found", uuid.New())}
	r := newAdminRouter(&fakeAdminService{}, quotes)

	form := url.Values{"scheduled_date": {"2024-03-15"}, "address": {"123 Main St"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/quotes/"+uuid.New().String()+"/convert", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
