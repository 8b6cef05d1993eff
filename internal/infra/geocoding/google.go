// Package geocoding implements the Geocoder domain service on top of the Google Geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/infra/metrics"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/paulmach/orb"
)

const (
	operationForward = "forward"
	operationReverse = "reverse"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	maxResponseBytes = 1 << 20
)

// googleResponse mirrors the subset of the Geocoding API response we read.
type googleResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []googleResult `json:"results"`
}

type googleResult struct {
	FormattedAddress  string            `json:"formatted_address"`
	AddressComponents []googleComponent `json:"address_components"`
	Geometry          struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type googleComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type googleGeocoder struct {
	client   *retryablehttp.Client
	baseURL  string
	apiKey   string
	language string
	region   string
	logger   *slog.Logger
}

// NewGoogleGeocoder builds a provider client from configuration. No environment is read at call time.
func NewGoogleGeocoder(cfg *config.GeocodingConfig, logger *slog.Logger) service.Geocoder {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	rc.HTTPClient.Timeout = cfg.Timeout
	// The default logger and error handler print request urls, which carry the api key.
	rc.Logger = nil
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logger.WarnContext(req.Context(), "Retrying geocoding request", slog.Int("attempt", attempt))
		}
	}

	return &googleGeocoder{
		client:   rc,
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		region:   cfg.Region,
		logger:   logger,
	}
}

func (g *googleGeocoder) Forward(ctx context.Context, address string) (*entity.GeocodeResult, error) {
	q := url.Values{}
	q.Set("address", address)
	if g.region != "" {
		q.Set("region", g.region)
	}

	return g.lookup(ctx, operationForward, q)
}

func (g *googleGeocoder) Reverse(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	q := url.Values{}
	q.Set("latlng", strconv.FormatFloat(lat, 'f', 6, 64)+","+strconv.FormatFloat(lng, 'f', 6, 64))

	return g.lookup(ctx, operationReverse, q)
}

func (g *googleGeocoder) lookup(ctx context.Context, operation string, q url.Values) (*entity.GeocodeResult, error) {
	start := time.Now()

	result, outcome, err := g.do(ctx, q)
	metrics.RecordGeocode(operation, outcome, time.Since(start))
	if err != nil {
		g.logger.DebugContext(ctx, "Geocoding lookup failed",
			slog.String("operation", operation),
			slog.String("outcome", outcome),
			slog.Any("error", err),
		)

		return nil, err
	}

	return result, nil
}

func (g *googleGeocoder) do(ctx context.Context, q url.Values) (*entity.GeocodeResult, string, error) {
	q.Set("key", g.apiKey)
	if g.language != "" {
		q.Set("language", g.language)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, metrics.OutcomeUnavailable, errors.Wrap(unavailable(err), "failed to build geocoding request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		// The url carries the api key, keep it out of the error.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return nil, metrics.OutcomeUnavailable, errors.Wrap(unavailable(err), "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, metrics.OutcomeUnavailable, errors.WithStack(
			domainerrors.ErrProviderUnavailable.WithDetails("unexpected status " + strconv.Itoa(resp.StatusCode)))
	}

	var body googleResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, metrics.OutcomeUnavailable, errors.Wrap(unavailable(err), "failed to decode geocoding response")
	}

	switch {
	case body.Status == statusOK && len(body.Results) > 0:
		return toGeocodeResult(body.Results[0]), metrics.OutcomeSuccess, nil
	case body.Status == statusOK, body.Status == statusZeroResults:
		return nil, metrics.OutcomeNoResult, errors.WithStack(domainerrors.ErrGeocodeFailed.WithDetails(statusZeroResults))
	default:
		details := body.Status
		if body.ErrorMessage != "" {
			details += ": " + body.ErrorMessage
		}

		return nil, metrics.OutcomeNoResult, errors.WithStack(domainerrors.ErrGeocodeFailed.WithDetails(details))
	}
}

func unavailable(err error) error {
	return domainerrors.ErrProviderUnavailable.WithDetails(err.Error())
}

func toGeocodeResult(r googleResult) *entity.GeocodeResult {
	result := &entity.GeocodeResult{
		Coordinates:      orb.Point{r.Geometry.Location.Lng, r.Geometry.Location.Lat},
		FormattedAddress: r.FormattedAddress,
	}

	if addr := parseComponents(r.AddressComponents); !addr.IsZero() {
		result.Address = &addr
	}

	return result
}

func parseComponents(components []googleComponent) entity.Address {
	var (
		addr                             entity.Address
		streetNumber, route, sublocality string
	)

	for _, c := range components {
		for _, typ := range c.Types {
			switch typ {
			case "street_number":
				streetNumber = c.LongName
			case "route":
				route = c.LongName
			case "sublocality", "sublocality_level_1":
				if sublocality == "" {
					sublocality = c.LongName
				}
			case "locality", "postal_town":
				if addr.City == "" {
					addr.City = c.LongName
				}
			case "administrative_area_level_1":
				addr.State = c.LongName
			case "country":
				addr.Country = c.LongName
			case "postal_code":
				addr.Zipcode = c.LongName
			}
		}
	}

	switch {
	case streetNumber != "" && route != "":
		addr.Street = streetNumber + " " + route
	case route != "":
		addr.Street = route
	case sublocality != "":
		addr.Street = sublocality
	}
	if addr.City == "" {
		addr.City = sublocality
	}

	return addr
}
