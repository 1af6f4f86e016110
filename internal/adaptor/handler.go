package adaptor

import (
	"net/http"
	"strings"

	"junk-hauling/internal/usecase"
	"junk-hauling/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Customer *CustomerHandler
	Quote    *QuoteHandler
	Booking  *BookingHandler
	Truck    *TruckHandler
	Facility *FacilityHandler
	Admin    *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Customer: NewCustomerHandler(service.Customer, log),
		Quote:    NewQuoteHandler(service.Quote, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Truck:    NewTruckHandler(service.Truck, log),
		Facility: NewFacilityHandler(service.Facility, log),
		Admin:    NewAdminHandler(service.Admin, service.Quote, log),
	}
}

// handleServiceError maps service errors onto HTTP responses by message
// class. "not found" is the only explicit error path in the system; anything
// unrecognized is a generic 500.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
