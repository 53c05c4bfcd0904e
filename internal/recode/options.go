package recode

type config struct {
	lenient bool
	workers int
}

// Option configures a recode pass.
type Option func(*config)

// WithLenientTypes treats cells that cannot be compared (non-scalar
// values) as unmatched instead of failing the pass.
func WithLenientTypes() Option {
	return func(c *config) { c.lenient = true }
}

// WithParallelism recodes up to n columns concurrently. Columns are
// independent, so the result is identical to a sequential pass.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 1 {
			c.workers = n
		}
	}
}
