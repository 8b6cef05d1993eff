package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// flexibleFloat accepts a JSON number or a numeric JSON string.
type flexibleFloat struct {
	value *float64
}

func (f *flexibleFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return domainerrors.NewValidationError("coordinates must be numeric")
		}
		f.value = &v

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return domainerrors.NewValidationError("coordinates must be numeric")
	}
	f.value = &v

	return nil
}

// flexibleAddress accepts a structured address object or a plain string.
type flexibleAddress struct {
	structured *entity.Address
	text       string
}

func (a *flexibleAddress) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		return json.Unmarshal(data, &a.text)
	case data[0] == '{':
		var addr entity.Address
		if err := json.Unmarshal(data, &addr); err != nil {
			return domainerrors.NewValidationError("address must be a string or an object")
		}
		a.structured = &addr

		return nil
	default:
		return domainerrors.NewValidationError("address must be a string or an object")
	}
}

// UpdateLocationRequest is the body of the location update endpoints
type UpdateLocationRequest struct {
	Address        flexibleAddress `json:"address"`
	Lat            flexibleFloat   `json:"lat"`
	Lng            flexibleFloat   `json:"lng"`
	LocationString string          `json:"locationString"`
}

func (r UpdateLocationRequest) toRaw() entity.RawLocation {
	return entity.RawLocation{
		Address:        r.Address.structured,
		AddressText:    r.Address.text,
		Lat:            r.Lat.value,
		Lng:            r.Lng.value,
		LocationString: r.LocationString,
	}
}

// decodeLocation reads an update body. A body that cannot be decoded is carried as
// RawLocation.Invalid so the usecase rejects it only after the access checks.
func decodeLocation(c echo.Context) entity.RawLocation {
	var req UpdateLocationRequest
	if err := decodeBody(c, &req); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return entity.RawLocation{Invalid: appErr.Message()}
		}

		return entity.RawLocation{Invalid: "invalid request body"}
	}

	return req.toRaw()
}

// GeocodeRequest is the body of the forward geocode endpoint
type GeocodeRequest struct {
	Address string `json:"address" validate:"required"`
}

// decodeBody reads a JSON body, keeping the AppErrors raised by the field decoders.
// An empty body decodes to the zero value.
func decodeBody(c echo.Context, v any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}

		return domainerrors.NewValidationError("invalid request body").WithDetails(err.Error())
	}

	return nil
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, domainerrors.NewValidationError(name + " must be a number")
	}

	return &v, nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(name + " must be an integer")
	}

	return &v, nil
}

// bindFilters reads the filter and paging query parameters shared by /nearby and /search.
func bindFilters(c echo.Context) (usecase.SearchFilters, error) {
	var (
		filters usecase.SearchFilters
		err     error
	)

	if filters.RadiusKm, err = queryFloat(c, "distance"); err != nil {
		return filters, err
	}
	if filters.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return filters, err
	}
	if filters.Page, err = queryInt(c, "page"); err != nil {
		return filters, err
	}
	if filters.Limit, err = queryInt(c, "limit"); err != nil {
		return filters, err
	}
	filters.Category = c.QueryParam("category")
	filters.Condition = c.QueryParam("condition")
	filters.Sort = c.QueryParam("sort")

	return filters, nil
}
