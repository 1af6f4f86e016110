package adaptor

import (
	"encoding/json"
	"net/http"

	"junk-hauling/internal/dto/request"
	"junk-hauling/internal/usecase"
	"junk-hauling/pkg/utils"

	"go.uber.org/zap"
)

type FacilityHandler struct {
	service usecase.FacilityService
	log     *zap.Logger
}

func NewFacilityHandler(service usecase.FacilityService, log *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "facility")),
	}
}

// GetFacilities handles GET /disposal-facilities
func (h *FacilityHandler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.GetFacilities(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get disposal facilities")
		return
	}

	utils.ResponseSuccess(w, "success", facilities)
}

// CreateFacility handles POST /disposal-facilities
func (h *FacilityHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req request.FacilityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	facility, err := h.service.CreateFacility(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create disposal facility")
		return
	}

	utils.ResponseCreated(w, "success", facility)
}
