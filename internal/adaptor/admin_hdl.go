package adaptor

import (
	"embed"
	"html/template"
	"net/http"

	"junk-hauling/internal/dto/request"
	"junk-hauling/internal/usecase"
	"junk-hauling/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// AdminHandler serves the server-rendered dashboard: the two listing pages
// plus the approve and convert form actions, which redirect back to the
// quotes page on success.
type AdminHandler struct {
	admin  usecase.AdminService
	quotes usecase.QuoteService
	tmpl   *template.Template
	log    *zap.Logger
}

func NewAdminHandler(admin usecase.AdminService, quotes usecase.QuoteService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		quotes: quotes,
		tmpl:   template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		log:    log.With(zap.String("handler", "admin")),
	}
}

// ViewQuotes handles GET /admin/quotes
func (h *AdminHandler) ViewQuotes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.admin.GetQuotesView(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "view quotes")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "quotes.html", map[string]any{"Rows": rows}); err != nil {
		h.log.Error("Failed to render quotes page", zap.Error(err))
	}
}

// ViewBookings handles GET /admin/bookings
func (h *AdminHandler) ViewBookings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.admin.GetBookingsView(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "view bookings")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "bookings.html", map[string]any{"Rows": rows}); err != nil {
		h.log.Error("Failed to render bookings page", zap.Error(err))
	}
}

// ApproveQuote handles POST /admin/quotes/{quote_id}/approve
func (h *AdminHandler) ApproveQuote(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "quote_id")
	if quoteID == "" {
		utils.ResponseBadRequest(w, "Quote ID is required", nil)
		return
	}

	if err := h.quotes.ApproveQuote(r.Context(), quoteID); err != nil {
		handleServiceError(h.log, w, err, "approve quote")
		return
	}

	http.Redirect(w, r, "/admin/quotes", http.StatusSeeOther)
}

// ConvertQuote handles POST /admin/quotes/{quote_id}/convert
func (h *AdminHandler) ConvertQuote(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "quote_id")
	if quoteID == "" {
		utils.ResponseBadRequest(w, "Quote ID is required", nil)
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form", nil)
		return
	}

	req := &request.QuoteConvertRequest{
		ScheduledDate: r.FormValue("scheduled_date"),
		Address:       r.FormValue("address"),
	}

	if _, err := h.quotes.ConvertQuoteToBooking(r.Context(), quoteID, req); err != nil {
		handleServiceError(h.log, w, err, "convert quote")
		return
	}

	http.Redirect(w, r, "/admin/quotes", http.StatusSeeOther)
}
