package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/hours"
)

const (
	msgInvalidTier        = "некорректный уровень расписания"
	msgInvalidOwnerID     = "некорректный ID владельца расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgFacilityNotFound   = "объект не найден"
	msgInvalidData        = "некорректные данные расписания"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/business-hours/{tier}/{ownerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tier из URL
	tier, err := ParseTier(vars["tier"])
	if err != nil {
		h.logger.Warn("PUT /business-hours/{tier}/{ownerId} - Invalid tier: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTier)
		return
	}

	// Извлекаем ownerId из URL
	ownerID, err := strconv.ParseInt(vars["ownerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /business-hours/{tier}/{ownerId} - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /business-hours/{tier}/{ownerId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours/{tier}/{ownerId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель сервиса (с парсингом дней и времени)
	serviceReq, err := req.ToServiceRequest(userID, tier, ownerID)
	if err != nil {
		h.logger.Warn("PUT /business-hours/{tier}/{ownerId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	// Заменяем расписание
	if err := h.service.UpdateWeek(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, hours.ErrFacilityNotFound):
			h.logger.Warn("PUT /business-hours/{tier}/{ownerId} - Facility not found: owner_id=%d", ownerID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("PUT /business-hours/{tier}/{ownerId} - Invalid data: tier=%s, owner_id=%d, error=%v",
				tier, ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /business-hours/{tier}/{ownerId} - Failed to update hours: tier=%s, owner_id=%d, error=%v",
				tier, ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours/{tier}/{ownerId} - Hours updated successfully: tier=%s, owner_id=%d, user_id=%d",
		tier, ownerID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
