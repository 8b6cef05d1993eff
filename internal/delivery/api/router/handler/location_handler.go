// Package handler contains the HTTP handlers of the location API.
package handler

import (
	"net/http"

	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	LocationUC  usecase.LocationUsecase
	GeocodeUC   usecase.GeocodeUsecase
}

// LocationHandler serves proximity search, geocoding and location updates
type LocationHandler struct {
	proximityUC usecase.ProximityUsecase
	locationUC  usecase.LocationUsecase
	geocodeUC   usecase.GeocodeUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		proximityUC: params.ProximityUC,
		locationUC:  params.LocationUC,
		geocodeUC:   params.GeocodeUC,
	}
}

// Nearby handles GET /locations/nearby
func (h *LocationHandler) Nearby(c echo.Context) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return err
	}
	lng, err := queryFloat(c, "lng")
	if err != nil {
		return err
	}
	filters, err := bindFilters(c)
	if err != nil {
		return err
	}

	page, err := h.proximityUC.FindNearby(c.Request().Context(), &usecase.NearbyInput{
		Lat:           lat,
		Lng:           lng,
		SearchFilters: filters,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toNearbyResponses(page.Items), response.WithPagination(paginationOf(page)))
}

// Search handles GET /locations/search
func (h *LocationHandler) Search(c echo.Context) error {
	filters, err := bindFilters(c)
	if err != nil {
		return err
	}

	result, err := h.proximityUC.SearchByLocation(c.Request().Context(), c.QueryParam("location"), &filters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, LocationSearchResponse{
		Center:   result.Center,
		Products: toNearbyResponses(result.Items),
	}, response.WithPagination(paginationOf(result.NearbyPage)))
}

// Details handles GET /locations/details
func (h *LocationHandler) Details(c echo.Context) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return err
	}
	lng, err := queryFloat(c, "lng")
	if err != nil {
		return err
	}

	result, err := h.geocodeUC.ReverseGeocode(c.Request().Context(), lat, lng)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toGeocodeResponse(result))
}

// Geocode handles POST /locations/geocode
func (h *LocationHandler) Geocode(c echo.Context) error {
	var req GeocodeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.geocodeUC.Geocode(c.Request().Context(), req.Address)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toGeocodeResponse(result))
}

// Popular handles GET /locations/popular
func (h *LocationHandler) Popular(c echo.Context) error {
	locations, err := h.proximityUC.PopularLocations(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, locations)
}

// UpdateProductLocation handles PUT /locations/products/:id
func (h *LocationHandler) UpdateProductLocation(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NewValidationError("invalid product ID")
	}

	result, err := h.locationUC.UpdateProductLocation(c.Request().Context(), productID, userID, decodeLocation(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProductResponse(result.Record), response.WithEnrichment(string(result.Enrichment)))
}

// UpdateUserLocation handles PUT /locations/user
func (h *LocationHandler) UpdateUserLocation(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	result, err := h.locationUC.UpdateUserLocation(c.Request().Context(), userID, decodeLocation(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserLocationResponse(result.Record), response.WithEnrichment(string(result.Enrichment)))
}

func paginationOf(page *usecase.NearbyPage) response.Pagination {
	return response.Pagination{
		Total: page.Total,
		Page:  page.Page,
		Limit: page.PageSize,
		Pages: page.PageCount,
	}
}
