package hours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	hoursRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
)

// Resolver разрешает эффективное расписание работы объекта через цепочку
// переопределений: объект -> локация -> организация -> расписание по умолчанию.
//
// Отсутствующий объект НЕ является ошибкой разрешения: применяется расписание
// по умолчанию, а результат помечается SourceDefaultMissingFacility (поведение
// исходной платформы; вызывающий код может ужесточить его до ошибки).
type Resolver struct {
	facilityRepo FacilityRepository
	hoursRepo    HoursRepository
	logger       Logger
}

// NewResolver создает новый экземпляр resolver-а расписаний
func NewResolver(
	facilityRepo FacilityRepository,
	hoursRepo HoursRepository,
	logger Logger,
) *Resolver {
	return &Resolver{
		facilityRepo: facilityRepo,
		hoursRepo:    hoursRepo,
		logger:       logger,
	}
}

// ResolveDay возвращает эффективное окно работы объекта на день недели даты.
// Window == nil в результате означает выходной день.
func (r *Resolver) ResolveDay(ctx context.Context, facilityID int64, date time.Time) (*models.DayResolution, error) {
	weekday := date.Weekday()

	facility, err := r.facilityRepo.GetByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			// Объект не найден - логируем и применяем расписание по умолчанию
			r.logger.Warn("ResolveDay: facility id=%d not found, falling back to default schedule", facilityID)
			return &models.DayResolution{
				Weekday: weekday,
				Window:  domain.DefaultWeekSchedule.ForWeekday(weekday),
				Source:  models.SourceDefaultMissingFacility,
			}, nil
		}
		r.logger.Error("ResolveDay: failed to get facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: ResolveDay - failed to get facility: %v", ErrInternal, err)
	}

	week, tier, err := r.effectiveWeek(ctx, facility)
	if err != nil {
		return nil, err
	}

	window, source := resolveWindow(weekday, week, tier)
	return &models.DayResolution{
		Weekday: weekday,
		Window:  window,
		Source:  source,
	}, nil
}

// ResolveWeek возвращает эффективное расписание объекта на всю неделю
func (r *Resolver) ResolveWeek(ctx context.Context, facilityID int64) (*models.WeekResolution, error) {
	facility, err := r.facilityRepo.GetByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			r.logger.Warn("ResolveWeek: facility id=%d not found", facilityID)
			return nil, ErrFacilityNotFound
		}
		r.logger.Error("ResolveWeek: failed to get facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: ResolveWeek - failed to get facility: %v", ErrInternal, err)
	}

	week, tier, err := r.effectiveWeek(ctx, facility)
	if err != nil {
		return nil, err
	}

	resolution := &models.WeekResolution{
		FacilityID: facilityID,
		Days:       make([]models.DayResolution, 0, 7),
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		window, source := resolveWindow(weekday, week, tier)
		resolution.Source = source
		resolution.Days = append(resolution.Days, models.DayResolution{
			Weekday: weekday,
			Window:  window,
			Source:  source,
		})
	}

	return resolution, nil
}

// effectiveWeek находит первый настроенный уровень иерархии:
// объект, затем локация, затем организация. Ни одного - уровень по умолчанию.
func (r *Resolver) effectiveWeek(ctx context.Context, facility *domain.Facility) (*domain.WeekSchedule, domain.HoursTier, error) {
	levels := []struct {
		tier    domain.HoursTier
		ownerID int64
	}{
		{domain.TierFacility, facility.ID},
		{domain.TierLocation, facility.LocationID},
		{domain.TierOrganization, facility.OrganizationID},
	}

	for _, level := range levels {
		week, err := r.hoursRepo.GetWeek(ctx, level.tier, level.ownerID)
		if err == nil {
			return week, level.tier, nil
		}
		if !errors.Is(err, hoursRepo.ErrHoursNotFound) {
			r.logger.Error("effectiveWeek: failed to get %s schedule for id=%d: %v", level.tier, level.ownerID, err)
			return nil, "", fmt.Errorf("%w: effectiveWeek - %s level: %v", ErrInternal, level.tier, err)
		}
	}

	return nil, domain.TierDefault, nil
}

// resolveWindow сводит найденный уровень к эффективному окну дня через
// чистую функцию слияния domain.ResolveWindow
func resolveWindow(weekday time.Weekday, week *domain.WeekSchedule, tier domain.HoursTier) (*domain.DayWindow, models.Source) {
	var facilityWeek, locationWeek, organizationWeek *domain.WeekSchedule
	switch tier {
	case domain.TierFacility:
		facilityWeek = week
	case domain.TierLocation:
		locationWeek = week
	case domain.TierOrganization:
		organizationWeek = week
	}

	window, effectiveTier := domain.ResolveWindow(weekday, facilityWeek, locationWeek, organizationWeek)
	return window, models.FromTier(effectiveTier)
}
