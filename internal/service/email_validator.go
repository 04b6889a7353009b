package service

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex  = regexp.MustCompile(`\s`)
	domainLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	tldRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	emailShapeRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidEmail reports whether the input is a syntactically well-formed
// address under a conservative rule set. It never panics and returns
// false for empty or whitespace-only input. Exactly one @ is required;
// the local part may not start or end with a dot, contain consecutive
// dots, or contain whitespace; domain labels must be alphanumeric with
// inner hyphens; the top-level domain must be alphabetic and at least
// two characters.
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}

	if strings.Count(email, "@") != 1 {
		return false
	}

	parts := strings.SplitN(email, "@", 2)
	localPart, domainPart := parts[0], parts[1]

	if localPart == "" {
		return false
	}
	if strings.HasPrefix(localPart, ".") || strings.HasSuffix(localPart, ".") {
		return false
	}
	if strings.Contains(localPart, "..") {
		return false
	}
	if whitespaceRegex.MatchString(localPart) {
		return false
	}

	if domainPart == "" {
		return false
	}
	if strings.HasPrefix(domainPart, ".") || strings.HasSuffix(domainPart, ".") {
		return false
	}
	if strings.Contains(domainPart, "..") {
		return false
	}
	if whitespaceRegex.MatchString(domainPart) {
		return false
	}
	if !strings.Contains(domainPart, ".") {
		return false
	}

	labels := strings.Split(domainPart, ".")
	for _, label := range labels {
		if label == "" {
			return false
		}
		if !domainLabelRegex.MatchString(label) {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 || !tldRegex.MatchString(tld) {
		return false
	}

	return emailShapeRegex.MatchString(email)
}

// NormalizeEmail lowercases and trims an address for use as a lookup and
// storage key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
