package wire

import (
	"junk-hauling/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireQuote(r chi.Router, quoteHandler *adaptor.QuoteHandler) {
	// GET /quotes - list quotes (paginated, ?page=&per_page=)
	r.Get("/quotes", quoteHandler.GetQuotes)

	// POST /quotes - submit quote with photo (multipart form)
	r.Post("/quotes", quoteHandler.CreateQuote)

	// GET /quotes/{quote_id}/photo - stream the stored photo
	r.Get("/quotes/{quote_id}/photo", quoteHandler.GetQuotePhoto)
}
