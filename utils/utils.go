package utils

import "strconv"

// FormatAmount renders a monetary amount without trailing zeros, so
// messages read "رقم 200" rather than "رقم 200.000000".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StringPtr returns a pointer to s, for nullable response fields.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to v, for nullable response fields.
func IntPtr(v int) *int {
	return &v
}
