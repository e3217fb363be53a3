// Package utils provides small conversion helpers shared across packages.
package utils

import "strconv"

// ConvertToInt parses a string into an int, returning 0 for invalid input.
// Query parameter parsing tolerates garbage; validation happens downstream.
func ConvertToInt(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

// ConvertToInt64 parses a string into an int64, returning 0 for invalid input.
func ConvertToInt64(value string) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// ConvertToFloat64 parses a string into a float64, returning 0 for invalid input.
func ConvertToFloat64(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
