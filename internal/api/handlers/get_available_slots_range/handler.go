package get_available_slots_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	getAvailableSlotsRange "github.com/m04kA/SMC-FacilityService/internal/usecase/get_available_slots_range"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgMissingStartDate  = "начальная дата обязательна"
	msgInvalidStartDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays       = "некорректное количество дней"
	msgInvalidDuration   = "некорректная длительность слота"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsRangeUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/available-slots/range
// Query params: startDate (required, YYYY-MM-DD), days (optional), durationMinutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем facilityId из URL
	facilityIDStr := vars["facilityId"]
	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/available-slots/range - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Извлекаем startDate из query параметров
	startDateStr := r.URL.Query().Get("startDate")
	if startDateStr == "" {
		h.logger.Warn("GET /facilities/{id}/available-slots/range - Missing start date: facility_id=%d", facilityID)
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}

	// Извлекаем days из query параметров (опционально)
	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			h.logger.Warn("GET /facilities/{id}/available-slots/range - Invalid days: facility_id=%d, days=%s",
				facilityID, daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	// Извлекаем durationMinutes из query параметров (опционально)
	durationMinutes := 0
	if durationStr := r.URL.Query().Get("durationMinutes"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil || durationMinutes <= 0 {
			h.logger.Warn("GET /facilities/{id}/available-slots/range - Invalid duration: facility_id=%d, duration=%s",
				facilityID, durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	userID, _ := middleware.GetUserID(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, facilityID, startDateStr, days, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/available-slots/range - Invalid date format: facility_id=%d, startDate=%s",
			facilityID, startDateStr)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlotsRange.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/available-slots/range - Invalid input: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /facilities/{id}/available-slots/range - Failed to get slots: facility_id=%d, startDate=%s, error=%v",
				facilityID, startDateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /facilities/{id}/available-slots/range - Slots retrieved successfully: facility_id=%d, startDate=%s, days_count=%d",
		facilityID, startDateStr, len(result.DaySlots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
