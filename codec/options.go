package codec

import (
	"runtime"

	"github.com/arloliu/ndzip/internal/options"
)

// config holds a MultiThreaded driver's tunable knobs.
type config struct {
	workers int
}

// Option configures a MultiThreaded driver.
type Option = options.Option[*config]

// WithWorkers sets the number of goroutines a MultiThreaded driver fans
// superblock work out across. n<=0 resolves to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return options.NoError(func(c *config) {
		c.workers = n
	})
}

func newConfig(opts ...Option) *config {
	c := &config{workers: runtime.GOMAXPROCS(0)}
	_ = options.Apply(c, opts...)

	if c.workers <= 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}

	return c
}
