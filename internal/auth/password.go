package auth

import (
	"strings"
	"unicode"
)

// SpecialCharacters is the fixed set a password must draw at least one
// character from.
const SpecialCharacters = "!@#$%^&*()~{}[]|\\/,.<>-_+=?`"

// ValidPassword reports whether p meets the strength rule: at least 6
// characters with at least one letter, one decimal digit, and one
// character from SpecialCharacters.
func ValidPassword(p string) bool {
	if len(p) < 6 {
		return false
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range p {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		case strings.ContainsRune(SpecialCharacters, r):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}
