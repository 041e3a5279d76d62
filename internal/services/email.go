package services

import "strings"

// NormEmail lowercases and trims an email for storage so the unique index
// treats Ana@x.com and ana@x.com as the same identity. Shape validation is
// the form layer's job.
func NormEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
