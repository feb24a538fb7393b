package types

import "regexp"

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LooksLikeEmail performs the syntactic local@domain.tld check used by the
// contact form and the intake endpoint. It says nothing about deliverability.
func LooksLikeEmail(s string) bool {
	return emailShape.MatchString(s)
}
