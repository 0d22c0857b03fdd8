package weather

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-app/internal/models"
)

type client interface {
	Fetch(ctx context.Context, city string) (models.Weather, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ServiceProvider is the single entry point the front ends fetch through.
type ServiceProvider struct {
	logger  zerolog.Logger
	client  client
	timeout time.Duration
}

// NewService wraps client. A zero timeout leaves the call unbounded.
func NewService(logger zerolog.Logger, cl client, timeout time.Duration) *ServiceProvider {
	return &ServiceProvider{logger: logger, client: cl, timeout: timeout}
}

func (s *ServiceProvider) GetByCity(ctx context.Context, city string) (models.Weather, error) {
	if strings.TrimSpace(city) == "" {
		return models.Weather{}, ErrEmptyCity
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Info().
		Ctx(ctx).
		Str("city", city).
		Msg("calling Fetch")

	data, err := s.client.Fetch(ctx, city)
	if err != nil {
		if !errors.Is(err, ErrFetchFailed) {
			err = errors.Join(ErrFetchFailed, err)
		}
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Err(err).
			Msg("fetch failed")
		return models.Weather{}, err
	}

	s.logger.Info().
		Ctx(ctx).
		Str("city", city).
		Msg("fetch succeeded")
	return data, nil
}
