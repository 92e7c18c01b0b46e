package models

import "github.com/m04kA/SMC-FacilityService/internal/domain"

// FacilityResponse краткая карточка объекта
type FacilityResponse struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organizationId"`
	LocationID     int64  `json:"locationId"`
	Name           string `json:"name"`
}

// FacilityListResponse ответ со списком объектов локации
type FacilityListResponse struct {
	LocationID int64              `json:"locationId"`
	Facilities []FacilityResponse `json:"facilities"`
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(locationID int64, facilities []*domain.Facility) *FacilityListResponse {
	resp := &FacilityListResponse{
		LocationID: locationID,
		Facilities: make([]FacilityResponse, 0, len(facilities)),
	}

	for _, facility := range facilities {
		if facility == nil {
			continue
		}
		resp.Facilities = append(resp.Facilities, FacilityResponse{
			ID:             facility.ID,
			OrganizationID: facility.OrganizationID,
			LocationID:     facility.LocationID,
			Name:           facility.Name,
		})
	}

	return resp
}
