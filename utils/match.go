package utils

import (
	"strconv"
	"strings"
)

// Tokens splits a denormalized multi-value field on commas and spaces.
// "10, 12 15" -> ["10" "12" "15"].
func Tokens(field string) []string {
	return strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// TokenMatch reports whether value appears as a whole delimited token of
// field. Anchored: "10" does not match inside "100".
func TokenMatch(field, value string) bool {
	if value == "" {
		return false
	}
	for _, tok := range Tokens(field) {
		if tok == value {
			return true
		}
	}
	return false
}

// TokenMatchAny reports whether any of the values token-matches field.
func TokenMatchAny(field string, values []string) bool {
	for _, v := range values {
		if TokenMatch(field, v) {
			return true
		}
	}
	return false
}

// NormalizeBloodType strips sign, spaces and case: "O +" -> "O".
func NormalizeBloodType(bt string) string {
	bt = strings.ToUpper(bt)
	bt = strings.ReplaceAll(bt, "+", "")
	bt = strings.ReplaceAll(bt, "-", "")
	return strings.ReplaceAll(bt, " ", "")
}

// SplitAllergies turns the free-text allergy column into trimmed,
// lowercased names, dropping empties.
func SplitAllergies(allergies string) []string {
	var out []string
	for _, a := range strings.Split(allergies, ",") {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// ParseAgeRange parses "min-max", tolerating the en dash variant and
// non-numeric noise around the bounds ("13+-18 yrs" -> 13, 18). ok is false
// when no numeric bound can be recovered at all; callers fail open then.
func ParseAgeRange(s string) (min, max int, ok bool) {
	s = strings.ReplaceAll(s, "–", "-")
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, okMin := leadingInt(strings.TrimSpace(parts[0]))
	max, okMax := leadingInt(strings.TrimSpace(parts[1]))
	if !okMin && !okMax {
		return 0, 0, false
	}
	return min, max, true
}

// leadingInt extracts the longest numeric prefix of s.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NumericIDSuffix returns the numeric tail of an identifier like "F019"
// (-> 19), used for the deterministic pre-shuffle ordering. IDs with no
// numeric tail sort first.
func NumericIDSuffix(id string) int {
	start := len(id)
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	if start == len(id) {
		return 0
	}
	n, err := strconv.Atoi(id[start:])
	if err != nil {
		return 0
	}
	return n
}
