package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrFacilityNotFound возвращается, если объект не найден
	// В отличие от чтения слотов, создание бронирования не допускает
	// молчаливого применения расписания по умолчанию
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrFacilityClosed возвращается при попытке бронирования на выходной день
	// или вне рабочего окна объекта
	ErrFacilityClosed = errors.New("facility is closed at requested time")

	// ErrSlotUnavailable возвращается, если слот пересекается с активным бронированием
	ErrSlotUnavailable = errors.New("slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
