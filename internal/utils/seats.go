package utils

import (
	"sort"
	"strconv"
	"strings"
)

// FormatSeatList renders seat numbers as a stable comma-separated string,
// e.g. [13 12] -> "12,13".
func FormatSeatList(seats []int) string {
	sorted := append([]int(nil), seats...)
	sort.Ints(sorted)
	parts := make([]string, 0, len(sorted))
	for _, s := range sorted {
		parts = append(parts, strconv.Itoa(s))
	}
	return strings.Join(parts, ",")
}

// ParseSeatList parses a comma/semicolon separated seat string back into
// numbers, skipping blanks and garbage.
func ParseSeatList(raw string) []int {
	out := []int{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}

// DedupeSeats reports the unique positive seat numbers and whether the
// input contained duplicates or non-positive values.
func DedupeSeats(seats []int) (unique []int, ok bool) {
	seen := make(map[int]struct{}, len(seats))
	ok = true
	for _, s := range seats {
		if s <= 0 {
			ok = false
			continue
		}
		if _, dup := seen[s]; dup {
			ok = false
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	return unique, ok
}
