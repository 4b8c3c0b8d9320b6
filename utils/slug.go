// utils/slug.go
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Slugify derives a URL-safe slug from a menu name. Collisions are
// handled by the caller retrying with UniqueSlug.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return uuid.NewString()[:8]
	}
	return s
}

// UniqueSlug appends a short random suffix for slug collisions.
func UniqueSlug(name string) string {
	return Slugify(name) + "-" + uuid.NewString()[:8]
}
