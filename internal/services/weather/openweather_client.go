package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-app/internal/models"
)

var (
	errNoTemperature = errors.New("response has no main.temp")
	errNoConditions  = errors.New("response has no weather[0].main/icon")
)

type apiResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main *string `json:"main"`
		Icon *string `json:"icon"`
	} `json:"weather"`
}

// ClientOpenWeatherMap fetches current weather from the OpenWeatherMap API.
type ClientOpenWeatherMap struct {
	APIKey string
	apiURL string
	units  string
	client HTTPClient
	logger zerolog.Logger
}

// NewClientOpenWeatherMap constructs a new OpenWeatherMap client.
func NewClientOpenWeatherMap(apiKey, apiURL, units string,
	httpClient HTTPClient, logger zerolog.Logger,
) *ClientOpenWeatherMap {
	return &ClientOpenWeatherMap{
		APIKey: apiKey,
		apiURL: apiURL,
		units:  units,
		client: httpClient,
		logger: logger,
	}
}

// Fetch retrieves the weather for city. The city is placed into the query
// string as given and echoed back in the result.
func (s *ClientOpenWeatherMap) Fetch(ctx context.Context, city string) (models.Weather, error) {
	start := time.Now()
	url := s.apiURL + "?q=" + city + "&appid=" + s.APIKey + "&units=" + s.units

	s.logger.Debug().
		Str("city", city).
		Msg("starting OpenWeatherMap request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("city", city).
			Msg("failed to create HTTP request")
		return models.Weather{}, fmt.Errorf("%w: build request: %w", ErrFetchFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("city", city).
			Msg("error sending HTTP request to OpenWeatherMap")
		return models.Weather{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Err(cerr).
				Str("city", city).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error().
			Str("city", city).
			Int("status", resp.StatusCode).
			Msg("OpenWeatherMap API returned non-200 status")
		return models.Weather{}, fmt.Errorf("%w: %w", ErrFetchFailed, &StatusError{Code: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("city", city).
			Msg("failed to read OpenWeatherMap response")
		return models.Weather{}, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	data, err := parseResponse(body)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("city", city).
			Msg("failed to decode OpenWeatherMap response")
		return models.Weather{}, fmt.Errorf("%w: %w: %w", ErrFetchFailed, ErrMalformedResponse, err)
	}
	data.City = city

	s.logger.Info().
		Str("city", city).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched weather data")

	return data, nil
}

func parseResponse(body []byte) (models.Weather, error) {
	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Weather{}, fmt.Errorf("decode: %w", err)
	}
	if raw.Main == nil || raw.Main.Temp == nil {
		return models.Weather{}, errNoTemperature
	}
	if len(raw.Weather) == 0 {
		return models.Weather{}, errNoConditions
	}
	current := raw.Weather[0]
	if current.Main == nil || current.Icon == nil {
		return models.Weather{}, errNoConditions
	}

	return models.Weather{
		Temperature: *raw.Main.Temp,
		Description: *current.Main,
		Icon:        *current.Icon,
	}, nil
}
