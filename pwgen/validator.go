package pwgen

import "unicode/utf8"

// Validate checks password against the length bounds and rule vector.
//
// The checks run in a fixed order: a nil password or one whose length lies
// outside [minLen, maxLen] is Invalid even when rules is malformed; only
// then does a nil or wrong-arity rule vector yield ConfigError.
//
// Length and classification work per rune. A character outside the Basic
// Multilingual Plane counts once and keeps its own class, so "𝐀" is one
// uppercase character rather than two non-letters.
func Validate(password *string, rules Rules, minLen, maxLen int) Result {
	if password == nil {
		return Invalid
	}
	if n := utf8.RuneCountInString(*password); n < minLen || n > maxLen {
		return Invalid
	}
	if len(rules) != RulesLen {
		return ConfigError
	}

	var seen [RulesLen]bool
	for _, c := range *password {
		f := classify(c)
		for i := range seen {
			seen[i] = seen[i] || f[i]
		}
	}

	for i := range seen {
		if rules[i] && !seen[i] {
			return Invalid
		}
	}
	return Valid
}

// ValidateString is Validate for a password that is known to be present.
func ValidateString(password string, rules Rules, minLen, maxLen int) Result {
	return Validate(&password, rules, minLen, maxLen)
}
