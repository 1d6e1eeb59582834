// Package scrub cleans lexically dirty form values before validation.
//
// The mobile clients historically sent multipart fields with stray quote
// characters ("MyShop" arrives as "\"MyShop\"") and coordinates as a
// bracketed string ("[12.9, 77.6]"). scrub repairs what it can and degrades
// the rest to zero values — a malformed field must never fail the request.
//
//	name := scrub.Quotes(raw["shopName"])
//	lng, lat := scrub.Coordinates(raw["coordinates"])
//	rating := scrub.Float(raw["rating"])
package scrub

import (
	"strconv"
	"strings"
)

// Quotes strips a single leading and/or trailing quote character (single or
// double) and trims surrounding whitespace.
func Quotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

// Coordinates parses a bracketed coordinate pair like "[12.9, 77.6]" into
// (longitude, latitude). Bracket and quote characters are removed, the rest
// is split on the comma. Any parse failure yields (0, 0) — degrade, don't
// fail.
func Coordinates(s string) (lng, lat float64) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', '"', '\'':
			return -1
		}
		return r
	}, s)

	parts := strings.Split(cleaned, ",")
	if len(parts) != 2 {
		return 0, 0
	}

	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLng != nil || errLat != nil {
		return 0, 0
	}
	return lng, lat
}

// Float parses s as a float after quote stripping; absent or unparsable
// values become 0.
func Float(s string) float64 {
	f, err := strconv.ParseFloat(Quotes(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// Int parses s as an int after quote stripping; absent or unparsable values
// become 0.
func Int(s string) int {
	n, err := strconv.Atoi(Quotes(s))
	if err != nil {
		return 0
	}
	return n
}
