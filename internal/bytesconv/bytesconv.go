// Package bytesconv converts between byte slices and strings without copying.
//
// Both directions alias memory. Callers must guarantee the byte slice is never
// written to again once it has been turned into a string, and must never write
// to a slice obtained from a string.
package bytesconv

import "unsafe"

// B2S returns a string sharing b's backing array.
func B2S(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// S2B returns a read-only byte slice sharing s's backing array.
func S2B(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// SameData reports whether a and b start at the same address. Used to check
// that a constructor reused its input instead of copying it.
func SameData(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return unsafe.StringData(a) == unsafe.StringData(b)
}
