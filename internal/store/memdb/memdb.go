package memdb

const (
	// DefaultMemSize is the initial number of accounts or blocks a store makes room for.
	DefaultMemSize = 100
)

type config struct {
	memSize int
}

type Option func(*config)

// WithMemSize allows us to specify a custom initial capacity for the stores.
func WithMemSize(memSize int) Option {
	return func(c *config) {
		if memSize >= 0 {
			c.memSize = memSize
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{memSize: DefaultMemSize}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
