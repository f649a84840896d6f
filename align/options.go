// SPDX-License-Identifier: MIT

package align

// DefaultOrderCheck enables the ascending-order validation of both inputs.
const DefaultOrderCheck = true

// Option configures New and Intersect.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; callers
// pass ...Option.
type Options struct {
	orderCheck bool // DefaultOrderCheck
}

// WithOrderCheck toggles the ascending-order validation of the inputs.
//
// With the check disabled, unsorted input is not detected and the output is
// unspecified (but never out of bounds).
func WithOrderCheck(on bool) Option {
	return func(o *Options) { o.orderCheck = on }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{orderCheck: DefaultOrderCheck}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
