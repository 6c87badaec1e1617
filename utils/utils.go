package utils

import (
	"net/url"
	"regexp"
	"time"
)

// emailRe accepts local@domain.tld with no whitespace, the same shape the
// signup forms validate against.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the address matches the required shape.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// DateStamp returns today's date the way order and membership records store it.
func DateStamp() string {
	return time.Now().Format("2006-01-02")
}

// PlaceholderImage builds the fallback image URL for a product added without
// one.
func PlaceholderImage(name string) string {
	return "https://via.placeholder.com/150?text=" + url.QueryEscape(name)
}
