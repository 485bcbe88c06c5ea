package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rangefinder/internal/delivery/http/response"
	"rangefinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodingHandlerParams holds dependencies for GeocodingHandler, injected by Fx.
type GeocodingHandlerParams struct {
	fx.In

	GeocodingUC usecase.GeocodingUsecase
	LocationUC  usecase.CustomerLocationUsecase
	Logger      *slog.Logger
}

// GeocodingHandler holds dependencies for geocoding-related handlers
type GeocodingHandler struct {
	geocodingUC usecase.GeocodingUsecase
	locationUC  usecase.CustomerLocationUsecase
	logger      *slog.Logger
}

// NewGeocodingHandler is the constructor for GeocodingHandler
func NewGeocodingHandler(params GeocodingHandlerParams) *GeocodingHandler {
	return &GeocodingHandler{
		geocodingUC: params.GeocodingUC,
		locationUC:  params.LocationUC,
		logger:      params.Logger,
	}
}

// ReconcileRequest represents the request body for a single reconciliation
type ReconcileRequest struct {
	CustomerID int64  `json:"customerId" validate:"required,gt=0"`
	Address    string `json:"address" validate:"required"`
}

// BatchRequest represents the request body for a batch reconciliation run
type BatchRequest struct {
	CustomerIDs []int64 `json:"customerIds,omitempty"`
	Limit       int     `json:"limit,omitempty" validate:"omitempty,gte=0"`
	ForceReRun  bool    `json:"forceReRun,omitempty"`
}

// Reconcile handles resolving a single customer address
func (h *GeocodingHandler) Reconcile(c echo.Context) error {
	var req ReconcileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reconcile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.geocodingUC.Reconcile(c.Request().Context(), &usecase.ReconcileInput{
		CustomerID: req.CustomerID,
		Address:    req.Address,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}

// ReconcileBatch handles a batch reconciliation run
func (h *GeocodingHandler) ReconcileBatch(c echo.Context) error {
	var req BatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.geocodingUC.ReconcileBatch(c.Request().Context(), &usecase.BatchInput{
		CustomerIDs: req.CustomerIDs,
		Limit:       req.Limit,
		ForceReRun:  req.ForceReRun,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}

// List handles the filtered customer location listing
func (h *GeocodingHandler) List(c echo.Context) error {
	input := &usecase.ListInput{
		Status:    c.QueryParam("status"),
		Province:  c.QueryParam("province"),
		Query:     c.QueryParam("q"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	var err error
	if input.DistanceMin, err = parseFloatParam(c, "distanceMin"); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "invalid distanceMin")
	}
	if input.DistanceMax, err = parseFloatParam(c, "distanceMax"); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "invalid distanceMax")
	}
	if input.Limit, err = parseIntParam(c, "limit"); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "invalid limit")
	}
	if input.Offset, err = parseIntParam(c, "offset"); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "invalid offset")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.locationUC.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "")
}

func parseFloatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func parseIntParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}
