package service

import (
	"time"

	"github.com/google/uuid"
)

type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

func defaultOptions() options {
	return options{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithClock overrides the time source used for timestamps and default positions.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// timestamp is truncated to the millisecond precision of the wire format.
func (o options) timestamp() time.Time {
	return o.now().UTC().Truncate(time.Millisecond)
}

func (o options) defaultPosition(now time.Time) float64 {
	return float64(now.UnixMilli())
}
