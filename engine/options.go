package engine

type options struct {
	onStep func(Step)
}

type Option func(*options)

// WithStepObserver calls fn before each bootstrap step runs.
func WithStepObserver(fn func(Step)) Option {
	return func(o *options) {
		o.onStep = fn
	}
}
