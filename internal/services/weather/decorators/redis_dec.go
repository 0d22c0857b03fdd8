package decorators

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-app/internal/models"
)

type weatherGetterService interface {
	GetByCity(ctx context.Context, city string) (models.Weather, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedService serves repeated lookups of the same city from cache.
// Failures are never cached.
type CachedService struct {
	inner  weatherGetterService
	cache  cacheClient[models.Weather]
	logger zerolog.Logger
}

func NewCachedService(
	inner weatherGetterService,
	cache cacheClient[models.Weather],
	logger zerolog.Logger,
) *CachedService {
	return &CachedService{inner: inner, cache: cache, logger: logger}
}

func (s *CachedService) GetByCity(ctx context.Context, city string) (models.Weather, error) {
	if strings.TrimSpace(city) == "" {
		return s.inner.GetByCity(ctx, city)
	}

	weather, err := s.cache.Get(ctx, city)
	if err == nil {
		s.logger.Info().
			Ctx(ctx).
			Str("city", city).
			Msg("cache hit")
		return weather, nil
	}
	s.logger.Debug().
		Ctx(ctx).
		Str("city", city).
		Err(err).
		Msg("cache miss")

	weather, err = s.inner.GetByCity(ctx, city)
	if err != nil {
		return models.Weather{}, err
	}

	if err := s.cache.Set(ctx, city, weather); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Err(err).
			Msg("cache set failed")
	}

	return weather, nil
}
