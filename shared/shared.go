package shared

import (
	"strings"
)

// NormalizeTicketID trims and uppercases a ticket identifier. Call sites
// format the id inconsistently (pasted from email, scanned from QR), so every
// store compares the normalized form.
func NormalizeTicketID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// BuildCacheKey joins key parts with the cache key separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// FirstNonEmpty returns the first non-blank string of the given values.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
