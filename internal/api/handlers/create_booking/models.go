package create_booking

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	createBooking "github.com/m04kA/SMC-FacilityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID      int64   `json:"facilityId"`
	Date            string  `json:"date"`      // "2026-09-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	FacilityID      int64   `json:"facilityId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала
	startTimeStr, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	startTime, err := startTimeStr.OnDate(date)
	if err != nil {
		return nil, err
	}

	durationMinutes := r.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = domain.DefaultSlotDurationMinutes
	}

	return &createBooking.Request{
		UserID:     userID,
		FacilityID: r.FacilityID,
		StartTime:  startTime,
		EndTime:    startTime.Add(time.Duration(durationMinutes) * time.Minute),
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	booking := resp.Booking

	return &BookingResponse{
		ID:              booking.ID,
		UserID:          booking.UserID,
		FacilityID:      booking.FacilityID,
		Date:            booking.StartTime.Format(domain.DateFormat),
		StartTime:       booking.StartTime.Format(domain.TimeFormat),
		EndTime:         booking.EndTime.Format(domain.TimeFormat),
		DurationMinutes: int(booking.EndTime.Sub(booking.StartTime).Minutes()),
		Status:          string(booking.Status),
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       booking.UpdatedAt.Format(time.RFC3339),
	}
}
