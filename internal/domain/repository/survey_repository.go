package repository

import (
	"context"

	"rangefinder/internal/domain/entity"
)

// SurveyRepository defines the interface for survey-related database operations.
// Surveys are matched to customers by digits-only phone numbers.
type SurveyRepository interface {
	// FindFirstByPhone retrieves the most recent survey whose digits-only
	// phone equals the given digit string. Returns (nil, nil) when absent.
	FindFirstByPhone(ctx context.Context, digits string) (*entity.Survey, error)

	// FindByPhones retrieves surveys matching any of the given digit strings.
	FindByPhones(ctx context.Context, digits []string) ([]*entity.Survey, error)

	// UpdateAddressByPhone overwrites the address on every survey matching
	// the given digit string.
	UpdateAddressByPhone(ctx context.Context, digits, address string) error

	// SearchPhones returns digits-only phones of surveys whose address
	// contains the given term.
	SearchPhones(ctx context.Context, term string) ([]string, error)
}
