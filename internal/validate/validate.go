// Package validate checks decoded JSON request bodies against the list of
// fields a write endpoint requires. It is deliberately map-based: a
// struct-tag validator cannot tell "key absent" apart from "key present but
// empty", and the API reports those as two separate lists in one message.
package validate

import (
	"fmt"
	"math"
	"strings"
)

// Required reports every required field that is absent and every one that is
// present but empty. Both lists are collected (no short-circuit) and joined
// into a single message.
func Required(fields []string, record map[string]any) error {
	var missing, empty []string

	for _, field := range fields {
		v, ok := record[field]
		if !ok {
			missing = append(missing, field)
			continue
		}
		if isEmpty(v) {
			empty = append(empty, field)
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if len(empty) > 0 {
		parts = append(parts, "Fields with empty values: "+strings.Join(empty, ", "))
	}
	if len(parts) > 0 {
		return fmt.Errorf("%s", strings.Join(parts, "; "))
	}
	return nil
}

// isEmpty treats JSON null and the empty string as empty. Numeric zero is a
// legitimate value (year 0 is a valid, if ancient, publication year).
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// NonNegativeInt verifies that record[field] is an integer >= 0. JSON
// numbers decode as float64, so a fractional part or a string both fail.
func NonNegativeInt(field string, record map[string]any) (int, error) {
	f, ok := record[field].(float64)
	if !ok || f != math.Trunc(f) || f < 0 {
		return 0, fmt.Errorf("Invalid '%s': Must be a non-negative integer", field)
	}
	return int(f), nil
}

// String extracts record[field] as a string. Required should have run
// first, so the only way this fails is a non-string value.
func String(field string, record map[string]any) (string, error) {
	s, ok := record[field].(string)
	if !ok {
		return "", fmt.Errorf("Invalid '%s': Must be a string", field)
	}
	return s, nil
}
