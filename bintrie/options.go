package bintrie

import (
	"github.com/sirupsen/logrus"
)

// DefaultDepth is the depth of a Trie built without WithDepth.
const DefaultDepth = 8192

type config struct {
	depth    uint32
	capacity int
	log      logrus.FieldLogger
}

// Option configures a Trie built by New.
type Option func(*config)

// WithDepth sets the maximum number of groups consulted per key.
// New panics with ErrDepth if depth is zero.
func WithDepth(depth uint32) Option {
	return func(c *config) {
		c.depth = depth
	}
}

// WithNodeCapacity pre-allocates room for n nodes in the arena.
func WithNodeCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLogger replaces the default logger. A nil logger is ignored.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		depth:    DefaultDepth,
		capacity: defaultNodeCapacity,
		log:      logrus.WithField("component", "bintrie"),
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}
