package usecase

import (
	"context"
	"time"

	"rangefinder/internal/domain/entity"
)

// List filter status values.
const (
	ListStatusAll             = "all"
	ListStatusWithDistance    = "with_distance"
	ListStatusWithoutDistance = "without_distance"
	ListStatusSuccess         = "success"
	ListStatusFailed          = "failed"
	ListStatusMissing         = "missing"
)

// ListInput represents the filters, sort and page for a customer location listing.
type ListInput struct {
	Status      string `validate:"omitempty,oneof=all with_distance without_distance success failed missing"`
	Province    string
	DistanceMin *float64 `validate:"omitempty,gte=0"`
	DistanceMax *float64 `validate:"omitempty,gte=0"`
	Query       string
	SortBy      string `validate:"omitempty,oneof=name address status distance updated_at"`
	SortOrder   string `validate:"omitempty,oneof=asc desc"`
	Limit       int    `validate:"omitempty,gte=0,lte=1000"`
	Offset      int    `validate:"omitempty,gte=0"`
}

// CustomerLocationRow is one customer joined with its survey address and its
// most relevant cache row.
type CustomerLocationRow struct {
	CustomerID     int64                `json:"customerId"`
	Name           string               `json:"name"`
	Phone          string               `json:"phone"`
	Address        string               `json:"address"`
	SurveyAddress  string               `json:"surveyAddress,omitempty"`
	Latitude       *float64             `json:"latitude,omitempty"`
	Longitude      *float64             `json:"longitude,omitempty"`
	DistanceKm     *float64             `json:"distanceKm,omitempty"`
	Province       string               `json:"province,omitempty"`
	Status         entity.GeocodeStatus `json:"status"`
	Error          string               `json:"error,omitempty"`
	LastVerifiedAt *time.Time           `json:"lastVerifiedAt,omitempty"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// ListResult is one page of rows plus filtered and unfiltered totals.
type ListResult struct {
	Rows          []*CustomerLocationRow `json:"rows"`
	FilteredTotal int                    `json:"filteredTotal"`
	Total         int64                  `json:"total"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

// CustomerLocationUsecase defines the interface for the listing/filter query layer
type CustomerLocationUsecase interface {
	// List pages customers joined with survey addresses and cache rows.
	List(ctx context.Context, input *ListInput) (*ListResult, error)
}
