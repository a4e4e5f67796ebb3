package utils

import "strings"

// TrimOrEmpty trims surrounding whitespace from user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeCity trims a city name and collapses inner whitespace. City
// matching is exact equality, so inputs must be normalized the same way
// on write and on search.
func NormalizeCity(s string) string {
	return NormalizeSpace(s)
}
