package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/weather-app/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient stops calling the wrapped client after RepeatNumber
// consecutive upstream faults until TimeTimeOut has passed. Answers about the
// request itself (unknown city, bad key, odd payload) are not faults.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isUpstreamFault(err)
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Fetch(ctx context.Context, city string) (models.Weather, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, city)
	})
	if err != nil {
		return models.Weather{},
			fmt.Errorf("%w: %s unavailable: %w", ErrFetchFailed, b.name, err)
	}
	res, ok := result.(models.Weather)
	if !ok {
		return models.Weather{},
			fmt.Errorf("%w: %s returned unexpected result", ErrFetchFailed, b.name)
	}
	return res, nil
}

func (b *BreakerClient) State() string {
	return b.cb.State().String()
}

// isUpstreamFault reports whether err says the weather service itself is
// unhealthy: transport errors, 5xx and 429.
func isUpstreamFault(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrMalformedResponse) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= http.StatusInternalServerError ||
			statusErr.Code == http.StatusTooManyRequests
	}
	return true
}
