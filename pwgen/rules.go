package pwgen

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Rule names a position in a rule vector.
type Rule int

const (
	HasUpper Rule = 0
	HasLower Rule = 1
	HasDigit Rule = 2
	HasPunct Rule = 3
)

var ruleNames = [RulesLen]string{
	HasUpper: "upper",
	HasLower: "lower",
	HasDigit: "digit",
	HasPunct: "punct",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= RulesLen {
		return fmt.Sprintf("Rule(%d)", int(r))
	}
	return ruleNames[r]
}

// Rules is a positional rule vector. A true entry requires at least one
// character of the corresponding class. A nil vector, or one whose length is
// not RulesLen, is a configuration error.
type Rules []bool

// NewRules builds a well-formed rule vector.
func NewRules(upper, lower, digit, punct bool) Rules {
	r := make(Rules, RulesLen)
	r[HasUpper] = upper
	r[HasLower] = lower
	r[HasDigit] = digit
	r[HasPunct] = punct
	return r
}

// AllRules requires every character class.
func AllRules() Rules {
	return NewRules(true, true, true, true)
}

// Requires reports whether the rule at position r is set. It is false for
// malformed vectors.
func (rs Rules) Requires(r Rule) bool {
	if len(rs) != RulesLen || r < 0 || int(r) >= RulesLen {
		return false
	}
	return rs[r]
}

// Names lists the required classes in positional order.
func (rs Rules) Names() []string {
	var names []string
	for i := 0; i < RulesLen; i++ {
		if rs.Requires(Rule(i)) {
			names = append(names, ruleNames[i])
		}
	}
	return names
}

// ParseRules builds a rule vector from class names such as "upper" or
// "punct". Empty names are ignored.
func ParseRules(names []string) (Rules, error) {
	rs := make(Rules, RulesLen)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		found := false
		for i, n := range ruleNames {
			if n == name {
				rs[i] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown rule %q (must be one of: %s)", name, strings.Join(ruleNames[:], ", "))
		}
	}
	return rs, nil
}

// ErrUnsatisfiable reports a rule and length combination no drawn password
// can ever meet.
var ErrUnsatisfiable = errors.New("pwgen: rules can never be satisfied")

// Satisfiable reports whether Fill can terminate for the given rules and
// bounds, and whether the bounds fit within MaxLength. Fill itself never
// calls it; callers that cannot afford an endless retry loop check their
// configuration up front.
func Satisfiable(rules Rules, minLen, maxLen int) error {
	if len(rules) != RulesLen {
		return ErrConfig
	}
	if minLen < 0 || minLen > maxLen {
		return fmt.Errorf("%w: invalid length range [%d, %d]", ErrUnsatisfiable, minLen, maxLen)
	}
	if maxLen > MaxLength {
		return fmt.Errorf("%w: max length %d exceeds %d", ErrUnsatisfiable, maxLen, MaxLength)
	}
	required := 0
	for i := 0; i < RulesLen; i++ {
		if !rules[i] {
			continue
		}
		required++
		if !alphabetHas(Rule(i)) {
			return fmt.Errorf("%w: no character in [%d, %d] is %s", ErrUnsatisfiable, MinChar, MaxChar, Rule(i))
		}
	}
	if required > maxLen {
		return fmt.Errorf("%w: %d classes required but max length is %d", ErrUnsatisfiable, required, maxLen)
	}
	return nil
}

func alphabetHas(r Rule) bool {
	for c := rune(MinChar); c <= MaxChar; c++ {
		if classify(c)[r] {
			return true
		}
	}
	return false
}

// classify returns the class flags of a single character, indexed by Rule.
func classify(c rune) [RulesLen]bool {
	var f [RulesLen]bool
	f[HasUpper] = unicode.IsUpper(c) || unicode.Is(unicode.Other_Uppercase, c)
	f[HasLower] = unicode.IsLower(c) || unicode.Is(unicode.Other_Lowercase, c)
	f[HasDigit] = unicode.IsDigit(c)
	f[HasPunct] = !unicode.IsLetter(c) && !unicode.IsDigit(c)
	return f
}
