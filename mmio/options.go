package mmio

// Config carries the per-handle access policy shared by every driver.
type Config struct {
	Guard Guard
	Wait  WaitPolicy
}

type Option func(*Config)

// WithGuard wraps read-modify-write spans in g.
func WithGuard(g Guard) Option { return func(c *Config) { c.Guard = g } }

// WithWait replaces the default Forever wait policy.
func WithWait(w WaitPolicy) Option { return func(c *Config) { c.Wait = w } }

// Apply resolves options over the defaults (no guard, wait forever).
func Apply(opts ...Option) Config {
	c := Config{Guard: NoGuard, Wait: Forever}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	if c.Guard == nil {
		c.Guard = NoGuard
	}
	if c.Wait == nil {
		c.Wait = Forever
	}
	return c
}
