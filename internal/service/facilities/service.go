package facilities

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityService/internal/service/facilities/models"
)

// Service сервис для чтения объектов
// Сами объекты создаются и редактируются платформой управления
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// ListByLocation получает все активные объекты локации
func (s *Service) ListByLocation(ctx context.Context, locationID int64) (*models.FacilityListResponse, error) {
	s.logger.Info("ListByLocation: fetching facilities for location=%d", locationID)

	if locationID <= 0 {
		s.logger.Warn("ListByLocation: invalid location id=%d", locationID)
		return nil, fmt.Errorf("%w: location id must be positive", ErrInvalidInput)
	}

	facilities, err := s.facilityRepo.GetByLocation(ctx, locationID)
	if err != nil {
		s.logger.Error("ListByLocation: repository error for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: ListByLocation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByLocation: successfully fetched %d facilities for location=%d", len(facilities), locationID)
	return models.FromDomainFacilityList(locationID, facilities), nil
}
