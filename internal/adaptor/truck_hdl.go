package adaptor

import (
	"encoding/json"
	"net/http"

	"junk-hauling/internal/dto/request"
	"junk-hauling/internal/usecase"
	"junk-hauling/pkg/utils"

	"go.uber.org/zap"
)

type TruckHandler struct {
	service usecase.TruckService
	log     *zap.Logger
}

func NewTruckHandler(service usecase.TruckService, log *zap.Logger) *TruckHandler {
	return &TruckHandler{
		service: service,
		log:     log.With(zap.String("handler", "truck")),
	}
}

// GetTrucks handles GET /trucks
func (h *TruckHandler) GetTrucks(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.service.GetTrucks(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get trucks")
		return
	}

	utils.ResponseSuccess(w, "success", trucks)
}

// CreateTruck handles POST /trucks
func (h *TruckHandler) CreateTruck(w http.ResponseWriter, r *http.Request) {
	var req request.TruckRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	truck, err := h.service.CreateTruck(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create truck")
		return
	}

	utils.ResponseCreated(w, "success", truck)
}
