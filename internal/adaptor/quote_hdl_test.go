package adaptor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"junk-hauling/internal/dto/response"
	"junk-hauling/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuoteRouter(svc *fakeQuoteService) *chi.Mux {
	h := NewQuoteHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/quotes", h.GetQuotes)
	r.Post("/quotes", h.CreateQuote)
	r.Get("/quotes/{quote_id}/photo", h.GetQuotePhoto)
	return r
}

func quoteMultipartBody(t *testing.T, fields map[string]string, filename string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestCreateQuoteHandler(t *testing.T) {
	customerID := uuid.New().String()
	svc := &fakeQuoteService{
		createResp: &response.QuoteResponse{
			ID:         uuid.New().String(),
			CustomerID: customerID,
			Categories: "furniture",
			Accepted:   false,
		},
	}
	r := newQuoteRouter(svc)

	body, contentType := quoteMultipartBody(t, map[string]string{
		"customer_id":      customerID,
		"categories":       "furniture",
		"estimated_volume": "10.5",
		"price_estimate":   "150.0",
	}, "couch.jpg")

	req := httptest.NewRequest(http.MethodPost, "/quotes", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.True(t, envelope.Status)

	require.NotNil(t, svc.lastCreateReq)
	assert.Equal(t, customerID, svc.lastCreateReq.CustomerID)
	assert.Equal(t, 10.5, svc.lastCreateReq.EstimatedVolume)
	assert.Equal(t, 150.0, svc.lastCreateReq.PriceEstimate)
	assert.Equal(t, "couch.jpg", svc.lastFilename)
}

func TestCreateQuoteMissingFile(t *testing.T) {
	svc := &fakeQuoteService{}
	r := newQuoteRouter(svc)

	body, contentType := quoteMultipartBody(t, map[string]string{
		"customer_id":      uuid.New().String(),
		"categories":       "furniture",
		"estimated_volume": "10.5",
		"price_estimate":   "150.0",
	}, "")

	req := httptest.NewRequest(http.MethodPost, "/quotes", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastCreateReq)
}

func TestCreateQuoteBadVolume(t *testing.T) {
	svc := &fakeQuoteService{}
	r := newQuoteRouter(svc)

	body, contentType := quoteMultipartBody(t, map[string]string{
		"customer_id":      uuid.New().String(),
		"categories":       "furniture",
		"estimated_volume": "lots",
		"price_estimate":   "150.0",
	}, "couch.jpg")

	req := httptest.NewRequest(http.MethodPost, "/quotes", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "estimated_volume")
}

func TestGetQuotesPaginatedEnvelope(t *testing.T) {
	svc := &fakeQuoteService{
		quotes: []response.QuoteResponse{
			{ID: uuid.New().String(), Categories: "furniture"},
			{ID: uuid.New().String(), Categories: "appliances"},
		},
	}
	r := newQuoteRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes?page=1&per_page=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\"total\":2")
	assert.Contains(t, rec.Body.String(), "furniture")
}

func TestGetQuotePhotoStreams(t *testing.T) {
	svc := &fakeQuoteService{photoBody: "png bytes", photoType: "image/png"}
	r := newQuoteRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes/"+uuid.New().String()+"/photo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	data, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestGetQuotePhotoNotFound(t *testing.T) {
	svc := &fakeQuoteService{photoErr: fmt.Errorf("photo for quote %s not found", uuid.New())}
	r := newQuoteRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes/"+uuid.New().String()+"/photo", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
