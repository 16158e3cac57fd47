package o2sched

import (
	"time"
)

// default is a 1.28 second wheel polled every 10 milliseconds.
const (
	defaultPollInterval = 10 * time.Millisecond
)

// Options is common options
type Options struct {
	Handler        Handler
	Logger         Logger
	SlotNum        int
	PollInterval   time.Duration
	LocalClock     LocalClock
	GlobalClock    GlobalClock
	Pool           *Pool
	MessageSize    int
	MaxMessages    int
	MaxMessageSize int
}

// NewOptions creates options with defaults.
func NewOptions(opts ...Option) Options {
	var options = Options{
		Handler:      defaultHandler,
		Logger:       defaultLogger,
		SlotNum:      defaultSlotNum,
		PollInterval: defaultPollInterval,
		MessageSize:  DefaultMessageSize,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.LocalClock == nil {
		options.LocalClock = NewMonotonicClock()
	}
	if options.Pool == nil {
		options.Pool = NewPool(
			PoolMessageSize(options.MessageSize),
			PoolMaxMessages(options.MaxMessages),
			PoolMaxMessageSize(options.MaxMessageSize),
			PoolLogger(options.Logger),
		)
	}

	return options
}

// Option is for setting options.
type Option func(*Options)

// WithHandler sets handler.
func WithHandler(handler Handler) Option {
	return func(o *Options) {
		if handler != nil {
			o.Handler = handler
		}
	}
}

// WithLogger sets logger.
func WithLogger(logger Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithSlotNum sets the number of 10ms bins. It must be a power of two and at
// least 128 so the wheel spans more than one second. If not, it will be
// ignored.
func WithSlotNum(num int) Option {
	return func(o *Options) {
		if num >= defaultSlotNum && num&(num-1) == 0 {
			o.SlotNum = num
		}
	}
}

// WithPollInterval sets the Run poll interval, must be greater than 0.
// If not, it will be ignored.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.PollInterval = d
		}
	}
}

// WithLocalClock sets the local time source.
func WithLocalClock(c LocalClock) Option {
	return func(o *Options) {
		if c != nil {
			o.LocalClock = c
		}
	}
}

// WithGlobalClock sets the local-to-global time conversion.
func WithGlobalClock(c GlobalClock) Option {
	return func(o *Options) {
		if c != nil {
			o.GlobalClock = c
		}
	}
}

// WithPool shares an existing pool. The message size limits are ignored
// when a pool is given.
func WithPool(p *Pool) Option {
	return func(o *Options) {
		if p != nil {
			o.Pool = p
		}
	}
}

// WithMessageSize sets the default payload capacity.
func WithMessageSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MessageSize = n
		}
	}
}

// WithMaxMessages caps the number of pooled messages, 0 means unlimited.
func WithMaxMessages(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxMessages = n
		}
	}
}

// WithMaxMessageSize caps the payload size of one message, 0 means unlimited.
func WithMaxMessageSize(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxMessageSize = n
		}
	}
}
