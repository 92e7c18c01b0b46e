package get_available_slots_range

import (
	"time"

	slotsHandler "github.com/m04kA/SMC-FacilityService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	getAvailableSlotsRange "github.com/m04kA/SMC-FacilityService/internal/usecase/get_available_slots_range"
)

// AvailableSlotsRangeResponse HTTP response model
// Ключи DaySlots - даты в формате YYYY-MM-DD; encoding/json сериализует
// ключи map в отсортированном порядке, что для этого формата совпадает
// с хронологическим
type AvailableSlotsRangeResponse struct {
	FacilityID      int64                              `json:"facilityId"`
	DurationMinutes int                                `json:"durationMinutes"`
	DaySlots        map[string][]slotsHandler.TimeSlot `json:"daySlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlotsRange.Response) *AvailableSlotsRangeResponse {
	daySlots := make(map[string][]slotsHandler.TimeSlot, len(resp.DaySlots))
	for date, slots := range resp.DaySlots {
		daySlots[date] = slotsHandler.FromDomainSlots(slots)
	}

	return &AvailableSlotsRangeResponse{
		FacilityID:      resp.FacilityID,
		DurationMinutes: resp.DurationMinutes,
		DaySlots:        daySlots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(userID, facilityID int64, startDateStr string, days, durationMinutes int) (*getAvailableSlotsRange.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlotsRange.Request{
		UserID:          userID,
		FacilityID:      facilityID,
		StartDate:       startDate,
		Days:            days,
		DurationMinutes: durationMinutes,
	}, nil
}
