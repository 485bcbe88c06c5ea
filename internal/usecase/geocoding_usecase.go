package usecase

import (
	"context"

	"rangefinder/internal/domain/entity"
)

// ReconcileInput represents the input for reconciling a single customer address
type ReconcileInput struct {
	CustomerID int64  `json:"customerId" validate:"required,gt=0"`
	Address    string `json:"address" validate:"required"`
}

// ReconcileResult represents the outcome of a single reconciliation.
// Resolved is false both for geocoder failures and for placeholder addresses;
// the Status field distinguishes the two.
type ReconcileResult struct {
	Resolved   bool                 `json:"resolved"`
	Status     entity.GeocodeStatus `json:"status"`
	Latitude   *float64             `json:"latitude,omitempty"`
	Longitude  *float64             `json:"longitude,omitempty"`
	DistanceKm *float64             `json:"distanceKm,omitempty"`
	Province   string               `json:"province,omitempty"`
	Message    string               `json:"message"`
}

// BatchInput represents the input for a batch reconciliation run.
// An explicit CustomerIDs list overrides the limit cap and the skip rule.
type BatchInput struct {
	CustomerIDs []int64 `json:"customerIds,omitempty"`
	Limit       int     `json:"limit,omitempty" validate:"omitempty,gte=0"`
	ForceReRun  bool    `json:"forceReRun,omitempty"`
}

// BatchResult represents the aggregate outcome of a batch run.
type BatchResult struct {
	Processed int      `json:"processed"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
	Message   string   `json:"message"`
}

// GeocodingUsecase defines the interface for address reconciliation use cases
type GeocodingUsecase interface {
	// Reconcile resolves one customer's address to coordinates and distance,
	// persisting the outcome as a cache row.
	Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileResult, error)

	// ReconcileBatch resolves many customers sequentially, rate limited
	// against the geocoding provider. Individual failures never abort the run.
	ReconcileBatch(ctx context.Context, input *BatchInput) (*BatchResult, error)
}
