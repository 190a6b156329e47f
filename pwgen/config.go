// Package pwgen draws pseudorandom passwords from a caller-supplied source,
// checks them against composition rules and fills batches of valid ones.
//
// Output is a pure function of the source state: the same seed and the same
// sequence of calls yield the same passwords.
package pwgen

const (
	// MinChar and MaxChar bound the code points a password is drawn from.
	MinChar = 33
	MaxChar = 126

	// MaxLength is the longest password Satisfiable accepts.
	MaxLength = 1024

	// RulesLen is the arity of a rule vector.
	RulesLen = 4

	// DefaultSeed reproduces the published conformance vectors.
	DefaultSeed int64 = 12344321
)
