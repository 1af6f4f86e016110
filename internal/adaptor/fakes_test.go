package adaptor

import (
	"context"
	"io"
	"strings"

	"junk-hauling/internal/dto/request"
	"junk-hauling/internal/dto/response"
)

// Fake services backing the handler tests.

type fakeQuoteService struct {
	quotes     []response.QuoteResponse
	createResp *response.QuoteResponse
	createErr  error
	approveErr error
	convertErr error
	photoBody  string
	photoType  string
	photoErr   error

	approvedIDs    []string
	convertedIDs   []string
	lastConvertReq *request.QuoteConvertRequest
	lastFilename   string
	lastCreateReq  *request.QuoteRequest
}

func (f *fakeQuoteService) CreateQuoteWithPhoto(ctx context.Context, req *request.QuoteRequest, filename string, photo io.Reader) (*response.QuoteResponse, error) {
	f.lastCreateReq = req
	f.lastFilename = filename
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResp, nil
}

func (f *fakeQuoteService) GetQuotes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.QuoteResponse], error) {
	return response.NewPaginatedResponse(f.quotes, req.Page, req.PerPage, int64(len(f.quotes))), nil
}

func (f *fakeQuoteService) GetQuotePhoto(ctx context.Context, quoteID string) (io.ReadCloser, string, error) {
	if f.photoErr != nil {
		return nil, "", f.photoErr
	}
	return io.NopCloser(strings.NewReader(f.photoBody)), f.photoType, nil
}

func (f *fakeQuoteService) ApproveQuote(ctx context.Context, quoteID string) error {
	if f.approveErr != nil {
		return f.approveErr
	}
	f.approvedIDs = append(f.approvedIDs, quoteID)
	return nil
}

func (f *fakeQuoteService) ConvertQuoteToBooking(ctx context.Context, quoteID string, req *request.QuoteConvertRequest) (*response.BookingResponse, error) {
	if f.convertErr != nil {
		return nil, f.convertErr
	}
	f.convertedIDs = append(f.convertedIDs, quoteID)
	f.lastConvertReq = req
	return &response.BookingResponse{ID: "booking-1", QuoteID: quoteID}, nil
}

type fakeAdminService struct {
	quoteRows   []response.QuoteRow
	bookingRows []response.BookingRow
}

func (f *fakeAdminService) GetQuotesView(ctx context.Context) ([]response.QuoteRow, error) {
	return f.quoteRows, nil
}

func (f *fakeAdminService) GetBookingsView(ctx context.Context) ([]response.BookingRow, error) {
	return f.bookingRows, nil
}

type fakeCustomerService struct {
	customers  []response.CustomerResponse
	createResp *response.CustomerResponse
	createErr  error
}

func (f *fakeCustomerService) GetCustomers(ctx context.Context) ([]response.CustomerResponse, error) {
	return f.customers, nil
}

func (f *fakeCustomerService) CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResp, nil
}
