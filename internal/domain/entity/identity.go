package entity

import "strings"

// NormalizeEmail canonicalizes an email-like identity. Every store and repository
// key goes through it so that case and whitespace variants collide.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
