package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-FacilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	FacilityID      int64      `json:"facilityId"`
	Date            string     `json:"date"`
	DurationMinutes int        `json:"durationMinutes"`
	Slots           []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		FacilityID:      resp.FacilityID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           FromDomainSlots(resp.Slots),
	}
}

// FromDomainSlots конвертирует слоты domain в HTTP модели
func FromDomainSlots(slots []domain.TimeSlot) []TimeSlot {
	result := make([]TimeSlot, len(slots))
	for i, slot := range slots {
		result[i] = TimeSlot{
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsAvailable: slot.IsAvailable,
		}
	}
	return result
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(userID, facilityID int64, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:          userID,
		FacilityID:      facilityID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}
