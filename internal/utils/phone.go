package utils

import "regexp"

// Accepts +7/8-prefixed numbers in the +7 (XXX) XXX-XX-XX shape (punctuation
// optional) or a bare 10-11 digit string.
var phonePattern = regexp.MustCompile(`^(?:\+7|8)\s?\(?\d{3}\)?\s?\d{3}-?\d{2}-?\d{2}$|^\d{10,11}$`)

// ValidatePhone reports whether phone is an acceptable contact number
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
