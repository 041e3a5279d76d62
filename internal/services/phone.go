package services

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reLetters = regexp.MustCompile(`[A-Za-z]`)
	// Only allow digits, spaces, +, -, (, )
	reAllowed = regexp.MustCompile(`^[0-9+\-\s\(\)]+$`)
)

// NormPhone normalizes phone numbers to the 10-digit national form stored on
// client records. Rules: strip spaces/dashes/parens; drop a Mexican country
// prefix (+52.., 0052.., 52.. when 12 digits long); drop any leading +.
// Returns "" when the input contains letters or disallowed characters.
func NormPhone(p string) string {
	s := strings.TrimSpace(p)

	if s == "" {
		return ""
	}
	if reLetters.MatchString(s) {
		return ""
	}
	if !reAllowed.MatchString(s) {
		return ""
	}

	// strip separators
	repl := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "\n", "", "\r", "")
	s = repl.Replace(s)

	// +52.. -> ..
	if strings.HasPrefix(s, "+52") {
		s = s[3:]
	}
	// 0052.. -> ..
	if strings.HasPrefix(s, "0052") {
		s = s[4:]
	}
	// 52.. with a full country prefix (12 digits) -> ..
	if len(s) == 12 && strings.HasPrefix(s, "52") {
		s = s[2:]
	}
	// drop any leftover +
	s = strings.TrimPrefix(s, "+")
	return s
}

// Digits keeps only the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
