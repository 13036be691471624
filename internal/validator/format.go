// Package validator holds format checks for Indian tax identifiers.
package validator

import "regexp"

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
)

// IsGSTIN reports whether s matches the registered 15-character GSTIN
// format: state code, PAN, entity number, Z, check character.
func IsGSTIN(s string) bool {
	return gstinPattern.MatchString(s)
}

// IsPAN reports whether s matches the 10-character PAN format.
func IsPAN(s string) bool {
	return panPattern.MatchString(s)
}
