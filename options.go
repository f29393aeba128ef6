package pixframe

import "log/slog"

// Option configures a Buffer, Param or Frame during creation.
//
// Example:
//
//	budget := pixframe.NewBudget(1 << 20)
//	buf, err := pixframe.NewBuffer(pixframe.V(256, 256), pixframe.WithAllocator(budget))
//	f, err := pixframe.NewFrame(buf, pixframe.WithAllocator(budget))
type Option func(*options)

// options holds optional configuration shared by all constructors.
// Options a constructor does not use are ignored.
type options struct {
	alloc          Allocator
	logger         *slog.Logger
	inclusiveEdges bool
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		alloc:  Unlimited,
		logger: nil, // Falls back to Logger() at each call
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithAllocator sets the Allocator that is charged for cells, parameter bytes
// and registry slots. A nil allocator selects [Unlimited].
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = Unlimited
		}
		o.alloc = a
	}
}

// WithLogger gives the value its own logger instead of the package-wide one
// returned by [Logger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithInclusiveEdges makes Frame.SetPixel accept coordinates equal to the
// buffer or selection size, matching the historical `>` comparison.
// By default far edges are exclusive.
//
// A write whose cell index falls past the end of the buffer is still dropped.
// Within the buffer an edge coordinate wraps to the first cell of the next
// row, and in clipped mode it reaches one cell past the selection.
func WithInclusiveEdges() Option {
	return func(o *options) {
		o.inclusiveEdges = true
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
