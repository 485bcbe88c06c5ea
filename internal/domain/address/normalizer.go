// Package address contains pure text utilities for Korean postal addresses:
// normalization, placeholder handling, and province/city extraction.
// Nothing in this package performs I/O.
package address

import "strings"

// Placeholder sentinels meaning "intentionally no real address".
// These are stored verbatim and never sent to the geocoder.
const (
	PlaceholderNotProvided = "[주소 미제공]"
	PlaceholderWalkIn      = "[직접방문]"
	PlaceholderOnlineOnly  = "[온라인 전용]"
	PlaceholderNA          = "N/A"
)

var placeholders = map[string]struct{}{
	PlaceholderNotProvided: {},
	PlaceholderWalkIn:      {},
	PlaceholderOnlineOnly:  {},
	PlaceholderNA:          {},
}

// Normalize trims the address and collapses internal whitespace runs to
// single spaces. Placeholder sentinels pass through unchanged, and loose
// "walk-in" phrasings canonicalize to PlaceholderWalkIn. Empty or
// whitespace-only input normalizes to "". Idempotent.
func Normalize(raw string) string {
	trimmed := strings.Join(strings.Fields(raw), " ")
	if trimmed == "" {
		return ""
	}

	if _, ok := placeholders[trimmed]; ok {
		return trimmed
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "직접") && strings.Contains(lower, "방문") {
		return PlaceholderWalkIn
	}

	return trimmed
}

// IsPlaceholder reports whether s is exactly one of the placeholder sentinels.
func IsPlaceholder(s string) bool {
	_, ok := placeholders[s]

	return ok
}

// IsGeocodable reports whether raw normalizes to an address worth sending to
// the geocoder: non-empty, not bracket-prefixed, and not the N/A sentinel.
func IsGeocodable(raw string) bool {
	normalized := Normalize(raw)
	if normalized == "" {
		return false
	}
	if strings.HasPrefix(normalized, "[") || normalized == PlaceholderNA {
		return false
	}

	return true
}
