package hours

import "errors"

var (
	// ErrHoursNotFound возвращается, когда для уровня иерархии нет настроенного расписания
	ErrHoursNotFound = errors.New("hours.repository: business hours not found")

	// ErrInvalidWeekday возвращается при недопустимом значении дня недели в БД
	ErrInvalidWeekday = errors.New("hours.repository: invalid weekday value")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hours.repository: failed to scan row")
)
