// Package validation checks decoded JSON payloads against the Item and
// Box schemas. Each mode returns a sanitized typed value and never
// mutates its input; any unrecognized field rejects the whole payload.
package validation

import (
	"time"

	"Attic/internal/apperrors"
)

func rejectUnknown(payload map[string]any, allowed map[string]bool) error {
	for field := range payload {
		if !allowed[field] {
			return apperrors.NewValidation(field, "is not recognized")
		}
	}
	return nil
}

// requiredString demands a present, non-empty string.
func requiredString(payload map[string]any, field string) (string, error) {
	raw, ok := payload[field]
	if !ok {
		return "", apperrors.NewValidation(field, "is required")
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", apperrors.NewValidation(field, "must be a non-empty string")
	}
	return s, nil
}

// optionalString accepts an absent field or any string, empty included.
func optionalString(payload map[string]any, field string) (*string, error) {
	raw, ok := payload[field]
	if !ok {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, apperrors.NewValidation(field, "must be a string")
	}
	return &s, nil
}

// optionalNonEmptyString accepts an absent field or a non-empty string.
func optionalNonEmptyString(payload map[string]any, field string) (*string, error) {
	raw, ok := payload[field]
	if !ok {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil, apperrors.NewValidation(field, "must be a non-empty string")
	}
	return &s, nil
}

// optionalNonNegativeNumber accepts an absent field or a number >= 0.
func optionalNonNegativeNumber(payload map[string]any, field string) (*float64, error) {
	raw, ok := payload[field]
	if !ok {
		return nil, nil
	}
	n, ok := raw.(float64)
	if !ok || n < 0 {
		return nil, apperrors.NewValidation(field, "must be a non-negative number")
	}
	return &n, nil
}

// requiredIdentifier demands a string of at least 24 characters.
func requiredIdentifier(payload map[string]any, field string) (string, error) {
	raw, ok := payload[field]
	if !ok {
		return "", apperrors.NewValidation(field, "is required")
	}
	s, ok := raw.(string)
	if !ok || len(s) < 24 {
		return "", apperrors.NewValidation(field, "must be an identifier of at least 24 characters")
	}
	return s, nil
}

// requiredTimestamp demands a date-parseable string.
func requiredTimestamp(payload map[string]any, field string) (string, error) {
	raw, ok := payload[field]
	if !ok {
		return "", apperrors.NewValidation(field, "is required")
	}
	s, ok := raw.(string)
	if !ok {
		return "", apperrors.NewValidation(field, "must be a timestamp string")
	}
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		return "", apperrors.NewValidation(field, "must be a valid timestamp")
	}
	return s, nil
}
