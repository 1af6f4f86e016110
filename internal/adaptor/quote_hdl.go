package adaptor

import (
	"io"
	"net/http"
	"strconv"

	"junk-hauling/internal/dto/request"
	"junk-hauling/internal/usecase"
	"junk-hauling/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// 32 MB, matching the default multipart memory threshold
const maxUploadMemory = 32 << 20

type QuoteHandler struct {
	service usecase.QuoteService
	log     *zap.Logger
}

func NewQuoteHandler(service usecase.QuoteService, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		log:     log.With(zap.String("handler", "quote")),
	}
}

// GetQuotes handles GET /quotes
func (h *QuoteHandler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	quotes, err := h.service.GetQuotes(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get quotes")
		return
	}

	utils.ResponseSuccess(w, "success", quotes)
}

// CreateQuote handles POST /quotes (multipart form with photo upload)
func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	estimatedVolume, err := strconv.ParseFloat(r.FormValue("estimated_volume"), 64)
	if err != nil {
		utils.ResponseBadRequest(w, "estimated_volume must be a number", nil)
		return
	}

	priceEstimate, err := strconv.ParseFloat(r.FormValue("price_estimate"), 64)
	if err != nil {
		utils.ResponseBadRequest(w, "price_estimate must be a number", nil)
		return
	}

	req := &request.QuoteRequest{
		CustomerID:      r.FormValue("customer_id"),
		Categories:      r.FormValue("categories"),
		EstimatedVolume: estimatedVolume,
		PriceEstimate:   priceEstimate,
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Photo file is required", nil)
		return
	}
	defer file.Close()

	quote, err := h.service.CreateQuoteWithPhoto(r.Context(), req, header.Filename, file)
	if err != nil {
		handleServiceError(h.log, w, err, "create quote")
		return
	}

	utils.ResponseCreated(w, "success", quote)
}

// GetQuotePhoto handles GET /quotes/{quote_id}/photo
func (h *QuoteHandler) GetQuotePhoto(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "quote_id")
	if quoteID == "" {
		utils.ResponseBadRequest(w, "Quote ID is required", nil)
		return
	}

	reader, contentType, err := h.service.GetQuotePhoto(r.Context(), quoteID)
	if err != nil {
		handleServiceError(h.log, w, err, "get quote photo")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, reader); err != nil {
		h.log.Warn("Failed to stream quote photo",
			zap.Error(err),
			zap.String("quote_id", quoteID),
		)
	}
}
