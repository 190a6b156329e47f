package pwgen

import "errors"

// ErrConfig reports a missing or wrong-arity rule vector.
var ErrConfig = errors.New("pwgen: rule vector must have exactly 4 entries")

// Result is the outcome of validating a single password.
type Result int

const (
	ConfigError Result = -1
	Invalid     Result = 0
	Valid       Result = 1
)

// Code returns the integer form of r: 1 valid, 0 invalid, -1 config error.
func (r Result) Code() int {
	return int(r)
}

func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case ConfigError:
		return "config_error"
	default:
		return "unknown"
	}
}
