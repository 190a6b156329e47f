package pwgen

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

type fillOptions struct {
	logger hclog.Logger
}

// Option configures Fill.
type Option func(*fillOptions)

// WithLogger sets the logger Fill reports per-slot retry counts to, at trace
// level.
func WithLogger(logger hclog.Logger) Option {
	return func(o *fillOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Fill stores a valid password in every slot, in order. Each slot draws
// candidates from src until one passes Validate; invalid candidates are
// discarded and redrawn without limit, so rules and bounds that can never
// be met make Fill loop forever (see Satisfiable).
//
// If validation reports a configuration error Fill returns an error
// wrapping ErrConfig at once. Slots filled before that point keep their
// values; the current and later slots are left untouched.
func Fill(slots []string, rules Rules, minLen, maxLen int, src Source, opts ...Option) error {
	o := fillOptions{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	for i := range slots {
		rejected := 0
		for {
			candidate := Draw(minLen, maxLen, src)
			res := ValidateString(candidate, rules, minLen, maxLen)
			if res == ConfigError {
				return fmt.Errorf("filling slot %d: %w", i, ErrConfig)
			}
			if res == Valid {
				slots[i] = candidate
				break
			}
			rejected++
		}
		o.logger.Trace("slot filled", "slot", i, "rejected", rejected)
	}
	return nil
}

// FillCode maps the error returned by Fill to its integer form: 1 for
// success, -1 for a configuration error.
func FillCode(err error) int {
	if err != nil {
		return ConfigError.Code()
	}
	return Valid.Code()
}
