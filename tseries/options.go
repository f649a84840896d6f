// SPDX-License-Identifier: MIT

// Package tseries: functional options for the arithmetic operators.
//
// Defaults:
//   - one worker (sequential combine, deterministic i→j order);
//   - no logging (discard handler);
//   - date order check enabled.

package tseries

import (
	"io"
	"log/slog"
)

// DefaultWorkers is the number of goroutines combining columns.
const DefaultWorkers = 1

// DefaultOrderCheck enables the ascending-order check of both date buffers.
const DefaultOrderCheck = true

const (
	panicWorkersInvalid = "tseries: WithWorkers: n must be >= 1"
	panicLoggerNil      = "tseries: WithLogger: logger must not be nil"
)

// discardLogger swallows every record; it is the zero-configuration logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures an arithmetic operator.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers    int          // DefaultWorkers
	logger     *slog.Logger // discardLogger
	orderCheck bool         // DefaultOrderCheck
}

// WithWorkers combines columns concurrently using up to n goroutines.
// Columns are independent after alignment, so results are identical to the
// sequential path. Panics if n < 1.
//
// Complexity:
//   - Time O(rows*cols / n) for the combine step; alignment stays O(n1+n2).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes per-operation debug records to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithOrderCheck toggles validation that both date buffers are ascending
// before alignment. Disabling it trades safety for one O(n) pass; unsorted
// dates then silently produce a wrong intersection.
func WithOrderCheck(on bool) Option {
	return func(o *Options) { o.orderCheck = on }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:    DefaultWorkers,
		logger:     discardLogger,
		orderCheck: DefaultOrderCheck,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
