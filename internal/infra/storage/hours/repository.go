package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// Repository репозиторий расписаний работы (business hours)
//
// Таблица business_hours хранит переопределения по уровням иерархии:
// tier ('organization' | 'location' | 'facility') + owner_id (ID сущности уровня).
// Одна строка = окно работы на один день недели (0=воскресенье .. 6=суббота).
// День без строки считается выходным для настроенного уровня.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeek получает недельное расписание одного уровня иерархии.
// Возвращает ErrHoursNotFound, если уровень не настроен (нет ни одной строки).
func (r *Repository) GetWeek(ctx context.Context, tier domain.HoursTier, ownerID int64) (*domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"open_time",
		"close_time",
	).
		From("business_hours").
		Where(squirrel.Eq{"tier": string(tier), "owner_id": ownerID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var week domain.WeekSchedule
	found := false

	for rows.Next() {
		var weekday int
		var openTime, closeTime types.TimeString

		if err := rows.Scan(&weekday, &openTime, &closeTime); err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}
		if weekday < 0 || weekday > 6 {
			return nil, fmt.Errorf("%w: GetWeek - weekday=%d", ErrInvalidWeekday, weekday)
		}

		week.SetWeekday(time.Weekday(weekday), &domain.DayWindow{
			Open:  openTime,
			Close: closeTime,
		})
		found = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return nil, ErrHoursNotFound
	}

	return &week, nil
}

// ReplaceWeek атомарно заменяет недельное расписание уровня иерархии:
// удаляет прежние строки и вставляет окна для всех открытых дней.
// Вызывается сервисом внутри транзакции (через context).
func (r *Repository) ReplaceWeek(ctx context.Context, tier domain.HoursTier, ownerID int64, week *domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"tier": string(tier), "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("tier", "owner_id", "weekday", "open_time", "close_time")

	hasRows := false
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		window := week.ForWeekday(weekday)
		if window == nil {
			continue // выходной - строки нет
		}
		insertBuilder = insertBuilder.Values(string(tier), ownerID, int(weekday), window.Open, window.Close)
		hasRows = true
	}

	// Расписание "всю неделю закрыто" тоже валидно: остаются только удаленные строки
	if !hasRows {
		return nil
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteWeek удаляет расписание уровня иерархии (уровень снова наследует вышестоящий)
func (r *Repository) DeleteWeek(ctx context.Context, tier domain.HoursTier, ownerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"tier": string(tier), "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteWeek - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteWeek - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteWeek - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHoursNotFound
	}

	return nil
}
