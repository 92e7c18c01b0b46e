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

// Service сервис управления расписаниями работы (для менеджеров платформы)
type Service struct {
	facilityRepo FacilityRepository
	hoursRepo    HoursRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	facilityRepo FacilityRepository,
	hoursRepo HoursRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		hoursRepo:    hoursRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// UpdateWeek заменяет недельное расписание уровня иерархии целиком.
// Замена выполняется в транзакции (delete + insert должны быть атомарны).
func (s *Service) UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) error {
	s.logger.Info("UpdateWeek: tier=%s, owner=%d by user=%d", req.Tier, req.OwnerID, req.UserID)

	if err := s.validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateWeek: validation failed: %v", err)
		return err
	}

	// Для уровня "объект" проверяем существование объекта
	if req.Tier == domain.TierFacility {
		if _, err := s.facilityRepo.GetByID(ctx, req.OwnerID); err != nil {
			if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
				s.logger.Warn("UpdateWeek: facility id=%d not found", req.OwnerID)
				return ErrFacilityNotFound
			}
			s.logger.Error("UpdateWeek: failed to get facility id=%d: %v", req.OwnerID, err)
			return fmt.Errorf("%w: UpdateWeek - failed to get facility: %v", ErrInternal, err)
		}
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.hoursRepo.ReplaceWeek(txCtx, req.Tier, req.OwnerID, &req.Week)
	})
	if err != nil {
		s.logger.Error("UpdateWeek: repository error for tier=%s, owner=%d: %v", req.Tier, req.OwnerID, err)
		return fmt.Errorf("%w: UpdateWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeek: successfully updated schedule for tier=%s, owner=%d", req.Tier, req.OwnerID)
	return nil
}

// DeleteWeek удаляет расписание уровня иерархии: уровень снова наследует вышестоящий
func (s *Service) DeleteWeek(ctx context.Context, req *models.DeleteWeekRequest) error {
	s.logger.Info("DeleteWeek: tier=%s, owner=%d by user=%d", req.Tier, req.OwnerID, req.UserID)

	if !isValidTier(req.Tier) {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidInput, req.Tier)
	}
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if err := s.hoursRepo.DeleteWeek(ctx, req.Tier, req.OwnerID); err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Warn("DeleteWeek: no schedule configured for tier=%s, owner=%d", req.Tier, req.OwnerID)
			return ErrHoursNotFound
		}
		s.logger.Error("DeleteWeek: repository error for tier=%s, owner=%d: %v", req.Tier, req.OwnerID, err)
		return fmt.Errorf("%w: DeleteWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWeek: successfully deleted schedule for tier=%s, owner=%d", req.Tier, req.OwnerID)
	return nil
}

// validateUpdateRequest проверяет запрос на замену расписания:
// каждый открытый день должен удовлетворять инварианту open < close
func (s *Service) validateUpdateRequest(req *models.UpdateWeekRequest) error {
	if !isValidTier(req.Tier) {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidInput, req.Tier)
	}
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		window := req.Week.ForWeekday(weekday)
		if window == nil {
			continue
		}
		if !window.IsValid() {
			return fmt.Errorf("%w: %s: open time %s must be before close time %s",
				ErrInvalidInput, weekday, window.Open, window.Close)
		}
	}

	return nil
}

func isValidTier(tier domain.HoursTier) bool {
	return tier == domain.TierFacility || tier == domain.TierLocation || tier == domain.TierOrganization
}
