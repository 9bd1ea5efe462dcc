package validators

import "strings"

const passwordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ValidatePassword enforces the signup password policy. Rules are checked
// in a fixed order and the first unmet one is reported.
func ValidatePassword(pw string) (ok bool, message string) {
	if len(pw) < 8 {
		return false, "Password must be at least 8 characters long"
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasLower:
		return false, "Password must contain a lowercase letter"
	case !hasUpper:
		return false, "Password must contain an uppercase letter"
	case !hasDigit:
		return false, "Password must contain a digit"
	case !hasSymbol:
		return false, "Password must contain a symbol"
	}

	return true, ""
}
