package fix

const (
	DefaultTolerance     = 1e-5
	DefaultMaxIterations = 1000
)

type options struct {
	tolerance     float64
	maxIterations int
	observer      func(i int, x float64)
}

type Option func(*options)

func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithObserver is called with every intermediate guess.
func WithObserver(observer func(i int, x float64)) Option {
	return func(o *options) {
		o.observer = observer
	}
}

func newOptions(opts []Option) options {
	o := options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
