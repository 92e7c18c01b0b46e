package facilities

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

type fakeFacilityRepo struct {
	facilities []*domain.Facility
	err        error

	gotLocationID int64
}

func (f *fakeFacilityRepo) GetByLocation(_ context.Context, locationID int64) ([]*domain.Facility, error) {
	f.gotLocationID = locationID
	return f.facilities, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListByLocation(t *testing.T) {
	repo := &fakeFacilityRepo{facilities: []*domain.Facility{
		{ID: 42, OrganizationID: 1, LocationID: 7, Name: "Корт №3", IsActive: true},
		{ID: 43, OrganizationID: 1, LocationID: 7, Name: "Корт №4", IsActive: true},
	}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.ListByLocation(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.gotLocationID)
	assert.Equal(t, int64(7), result.LocationID)
	require.Len(t, result.Facilities, 2)
	assert.Equal(t, "Корт №3", result.Facilities[0].Name)
}

func TestListByLocation_EmptyLocation(t *testing.T) {
	svc := NewService(&fakeFacilityRepo{facilities: []*domain.Facility{}}, nopLogger{})

	result, err := svc.ListByLocation(context.Background(), 7)
	require.NoError(t, err)

	assert.NotNil(t, result.Facilities)
	assert.Empty(t, result.Facilities)
}

func TestListByLocation_InvalidLocationID(t *testing.T) {
	repo := &fakeFacilityRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListByLocation(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.gotLocationID)
}

func TestListByLocation_RepositoryError(t *testing.T) {
	svc := NewService(&fakeFacilityRepo{err: errors.New("db down")}, nopLogger{})

	_, err := svc.ListByLocation(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}
