package lpmodel

// Option configures Build. The zero-value config uses a mild default
// objective (minimize the sum of all b and x variables), which drives the
// solver toward a canonical witness without changing feasibility.
type Option func(*config)

type config struct {
	zeroObjective bool
}

func newConfig(opts ...Option) config {
	cfg := config{zeroObjective: false}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithZeroObjective switches Build to a pure-feasibility objective (all
// coefficients zero). Feasibility status is unaffected either way; only the
// returned witness values can differ.
func WithZeroObjective() Option {
	return func(c *config) { c.zeroObjective = true }
}
