// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for SendCollect and Iterate.
// Policy:
//   - Invalid values are recorded and surface as ErrOptionViolation when the
//     computation starts, never by panicking inside the option.

package pregel

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

// DefaultMaxIterations bounds Iterate when WithMaxIterations is not given.
const DefaultMaxIterations = 100

// Option configures a computation.
type Option func(*Options)

// Options holds the resolved engine configuration.
type Options struct {
	// InvokeOnEmpty calls the collector for every node, not only message recipients.
	InvokeOnEmpty bool

	// Direction filters delivered messages.
	Direction Direction

	// Workers bounds the goroutines used by each phase.
	Workers int

	// MaxIterations bounds Iterate.
	MaxIterations int

	// Logger receives superstep progress.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns:
//   - InvokeOnEmpty false, Direction Both
//   - Workers = GOMAXPROCS
//   - MaxIterations = DefaultMaxIterations
//   - a no-op logger.
func DefaultOptions() Options {
	return Options{
		Direction:     Both,
		Workers:       runtime.GOMAXPROCS(0),
		MaxIterations: DefaultMaxIterations,
		Logger:        zerolog.Nop(),
	}
}

// WithInvokeOnEmpty sets whether nodes without messages are collected.
func WithInvokeOnEmpty(on bool) Option {
	return func(o *Options) { o.InvokeOnEmpty = on }
}

// WithDirection sets the delivery filter.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if !d.valid() {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Direction = d
	}
}

// WithWorkers sets the per-phase goroutine bound (n >= 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (got %d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxIterations bounds Iterate (n >= 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1 (got %d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger installs a structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
