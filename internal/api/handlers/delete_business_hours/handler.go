package delete_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/handlers/update_business_hours"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/hours"
	"github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
)

const (
	msgInvalidTier    = "некорректный уровень расписания"
	msgInvalidOwnerID = "некорректный ID владельца расписания"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNotFound       = "расписание не найдено"
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

// Handle DELETE /api/v1/business-hours/{tier}/{ownerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tier из URL
	tier, err := update_business_hours.ParseTier(vars["tier"])
	if err != nil {
		h.logger.Warn("DELETE /business-hours/{tier}/{ownerId} - Invalid tier: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTier)
		return
	}

	// Извлекаем ownerId из URL
	ownerID, err := strconv.ParseInt(vars["ownerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /business-hours/{tier}/{ownerId} - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /business-hours/{tier}/{ownerId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем расписание: уровень снова наследует вышестоящий
	err = h.service.DeleteWeek(r.Context(), &models.DeleteWeekRequest{
		UserID:  userID,
		Tier:    tier,
		OwnerID: ownerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrHoursNotFound):
			h.logger.Warn("DELETE /business-hours/{tier}/{ownerId} - Hours not found: tier=%s, owner_id=%d",
				tier, ownerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("DELETE /business-hours/{tier}/{ownerId} - Invalid input: tier=%s, owner_id=%d, error=%v",
				tier, ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidTier)

		default:
			h.logger.Error("DELETE /business-hours/{tier}/{ownerId} - Failed to delete hours: tier=%s, owner_id=%d, error=%v",
				tier, ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /business-hours/{tier}/{ownerId} - Hours deleted successfully: tier=%s, owner_id=%d, user_id=%d",
		tier, ownerID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
