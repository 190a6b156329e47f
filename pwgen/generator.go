package pwgen

import "strings"

// Draw generates a password whose length is drawn uniformly from
// [minLen, maxLen] and whose characters are drawn uniformly from
// [MinChar, MaxChar].
//
// It consumes exactly 1+L draws from src, where L is the drawn length: one
// for the length and then one per character, in order. minLen must not
// exceed maxLen.
func Draw(minLen, maxLen int, src Source) string {
	n := drawRange(src, minLen, maxLen)

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(rune(drawRange(src, MinChar, MaxChar)))
	}
	return b.String()
}
