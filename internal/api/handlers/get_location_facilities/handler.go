package get_location_facilities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/service/facilities"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем locationId из URL
	vars := mux.Vars(r)
	locationIDStr := vars["locationId"]

	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/facilities - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	// Получаем активные объекты локации
	result, err := h.service.ListByLocation(r.Context(), locationID)
	if err != nil {
		if errors.Is(err, facilities.ErrInvalidInput) {
			h.logger.Warn("GET /locations/{id}/facilities - Invalid input: location_id=%d", locationID)
			handlers.RespondBadRequest(w, msgInvalidLocationID)
			return
		}

		h.logger.Error("GET /locations/{id}/facilities - Failed to list facilities: location_id=%d, error=%v",
			locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations/{id}/facilities - Facilities listed successfully: location_id=%d, count=%d",
		locationID, len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
