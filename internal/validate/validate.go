// Package validate holds pure input-shape checks run at every untrusted
// boundary before any storage or business logic. None of these functions
// read the clock or storage.
package validate

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
	uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	// tokenRegex matches a hex invite token of 16 to 64 characters.
	tokenRegex = regexp.MustCompile(`^[0-9a-fA-F]{16,64}$`)

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsUUID reports whether v has the canonical grouped-hex UUID shape.
func IsUUID(v string) bool {
	return uuidRegex.MatchString(v)
}

// IsInviteToken reports whether v is a hex string of length 16 to 64
// inclusive. Case-insensitive.
func IsInviteToken(v string) bool {
	return tokenRegex.MatchString(v)
}

// ClampString coerces v to a trimmed string of at most maxLen runes.
// Non-string input yields the empty string.
func ClampString(v any, maxLen int) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if maxLen >= 0 {
		if r := []rune(s); len(r) > maxLen {
			s = string(r[:maxLen])
		}
	}
	return s
}

// IsHTTPURL reports whether v is a syntactically valid URL with scheme
// http or https.
func IsHTTPURL(v string) bool {
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// IsEmail reports whether v looks like an email address: a local part, an
// @, and a domain with at least one dot. Pragmatic, not RFC-complete.
func IsEmail(v string) bool {
	return emailRegex.MatchString(v)
}
