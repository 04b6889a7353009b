package service

import "regexp"

var (
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex   = regexp.MustCompile(`\d`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*()_\-+=[\]{}|;:,.<>?]`)
)

// ValidatePassword checks a candidate password against the sign-up policy
// and returns an empty string when it passes, or the first violation
// message otherwise.
func ValidatePassword(password string) string {
	if len(password) < 8 || len(password) > 12 {
		return "Password must be 8-12 characters long"
	}
	if !lowerRegex.MatchString(password) {
		return "Include at least one lowercase letter"
	}
	if !upperRegex.MatchString(password) {
		return "Include at least one uppercase letter"
	}
	if !digitRegex.MatchString(password) {
		return "Include at least one number"
	}
	if !specialRegex.MatchString(password) {
		return "Include at least one special character"
	}
	return ""
}
