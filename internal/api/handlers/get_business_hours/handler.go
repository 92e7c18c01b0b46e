package get_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/service/hours"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgFacilityNotFound  = "объект не найден"
)

type Handler struct {
	resolver HoursResolver
	logger   Logger
}

func NewHandler(resolver HoursResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем facilityId из URL
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/business-hours - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Разрешаем эффективное расписание на неделю
	resolution, err := h.resolver.ResolveWeek(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/business-hours - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("GET /facilities/{id}/business-hours - Failed to resolve hours: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromWeekResolution(resolution)

	h.logger.Info("GET /facilities/{id}/business-hours - Hours resolved successfully: facility_id=%d, source=%s",
		facilityID, resolution.Source)
	handlers.RespondJSON(w, http.StatusOK, response)
}
