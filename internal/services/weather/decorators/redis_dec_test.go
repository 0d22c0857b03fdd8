//go:build unit

package decorators_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-app/internal/models"
	"github.com/Nazarious-ucu/weather-app/internal/services/cache"
	"github.com/Nazarious-ucu/weather-app/internal/services/weather"
	"github.com/Nazarious-ucu/weather-app/internal/services/weather/decorators"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByCity(ctx context.Context, city string) (models.Weather, error) {
	args := m.Called(ctx, city)
	data, ok := args.Get(0).(models.Weather)
	if !ok {
		return models.Weather{}, args.Error(1)
	}
	return data, args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Set(ctx context.Context, key string, value models.Weather) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockCache) Get(ctx context.Context, key string) (models.Weather, error) {
	args := m.Called(ctx, key)
	data, ok := args.Get(0).(models.Weather)
	if !ok {
		return models.Weather{}, args.Error(1)
	}
	return data, args.Error(1)
}

var lviv = models.Weather{City: "Lviv", Temperature: 21.5, Description: "Clouds", Icon: "03d"}

func setup(t *testing.T) (*mockService, *mockCache, *decorators.CachedService) {
	t.Helper()
	svc := &mockService{}
	c := &mockCache{}
	t.Cleanup(func() {
		svc.AssertExpectations(t)
		c.AssertExpectations(t)
	})
	return svc, c, decorators.NewCachedService(svc, c, zerolog.Nop())
}

func TestCachedService_Hit(t *testing.T) {
	svc, c, cached := setup(t)
	c.On("Get", mock.Anything, "Lviv").Return(lviv, nil).Once()

	got, err := cached.GetByCity(context.Background(), "Lviv")

	require.NoError(t, err)
	assert.Equal(t, lviv, got)
	svc.AssertNotCalled(t, "GetByCity", mock.Anything, mock.Anything)
}

func TestCachedService_MissStoresResult(t *testing.T) {
	svc, c, cached := setup(t)
	c.On("Get", mock.Anything, "Lviv").Return(models.Weather{}, cache.ErrMiss).Once()
	svc.On("GetByCity", mock.Anything, "Lviv").Return(lviv, nil).Once()
	c.On("Set", mock.Anything, "Lviv", lviv).Return(nil).Once()

	got, err := cached.GetByCity(context.Background(), "Lviv")

	require.NoError(t, err)
	assert.Equal(t, lviv, got)
}

func TestCachedService_FailureNotCached(t *testing.T) {
	svc, c, cached := setup(t)
	c.On("Get", mock.Anything, "Atlantis").Return(models.Weather{}, cache.ErrMiss).Once()
	svc.On("GetByCity", mock.Anything, "Atlantis").
		Return(models.Weather{}, weather.ErrFetchFailed).Once()

	got, err := cached.GetByCity(context.Background(), "Atlantis")

	require.ErrorIs(t, err, weather.ErrFetchFailed)
	assert.Equal(t, models.Weather{}, got)
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedService_SetErrorIsNotFatal(t *testing.T) {
	svc, c, cached := setup(t)
	c.On("Get", mock.Anything, "Lviv").Return(models.Weather{}, errors.New("connection refused")).Once()
	svc.On("GetByCity", mock.Anything, "Lviv").Return(lviv, nil).Once()
	c.On("Set", mock.Anything, "Lviv", lviv).Return(errors.New("connection refused")).Once()

	got, err := cached.GetByCity(context.Background(), "Lviv")

	require.NoError(t, err)
	assert.Equal(t, lviv, got)
}

func TestCachedService_BlankCityBypassesCache(t *testing.T) {
	svc, c, cached := setup(t)
	svc.On("GetByCity", mock.Anything, "  ").Return(models.Weather{}, weather.ErrEmptyCity).Once()

	_, err := cached.GetByCity(context.Background(), "  ")

	require.ErrorIs(t, err, weather.ErrEmptyCity)
	c.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
