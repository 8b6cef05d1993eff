package geocoding

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/infra/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "geocoding-provider"

// breakerGeocoder stops calling the provider after repeated outages.
// A "no result" answer is a healthy provider response and never trips it.
type breakerGeocoder struct {
	next   service.Geocoder
	cb     *gobreaker.CircuitBreaker[*entity.GeocodeResult]
	logger *slog.Logger
}

// NewBreakerGeocoder wraps next with a circuit breaker.
func NewBreakerGeocoder(next service.Geocoder, cfg *config.BreakerConfig, logger *slog.Logger) service.Geocoder {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(stateToFloat(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[*entity.GeocodeResult](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, domainerrors.ErrProviderUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state transition",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &breakerGeocoder{next: next, cb: cb, logger: logger}
}

func (b *breakerGeocoder) Forward(ctx context.Context, address string) (*entity.GeocodeResult, error) {
	return b.execute(func() (*entity.GeocodeResult, error) {
		return b.next.Forward(ctx, address)
	})
}

func (b *breakerGeocoder) Reverse(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	return b.execute(func() (*entity.GeocodeResult, error) {
		return b.next.Reverse(ctx, lat, lng)
	})
}

func (b *breakerGeocoder) execute(fn func() (*entity.GeocodeResult, error)) (*entity.GeocodeResult, error) {
	result, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()

		return result, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()

		return nil, errors.WithStack(domainerrors.ErrProviderUnavailable.WithDetails(err.Error()))
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()

		return nil, err
	}
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
