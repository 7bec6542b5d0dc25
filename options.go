package vector

import "log/slog"

// config holds the per-vector settings applied by Options.
type config[T any] struct {
	elem   Element[T]
	maxCap int
	logger *slog.Logger
}

// Option configures a Vector.
type Option[T any] func(*config[T])

func newConfig[T any](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithElement sets the lifecycle hooks used to construct, copy, relocate
// and destroy elements.
func WithElement[T any](e Element[T]) Option[T] {
	return func(c *config[T]) {
		c.elem = e
	}
}

// WithMaxCapacity caps the number of slots a single buffer may hold.
// Requests above the cap fail with ErrOutOfMemory. n <= 0 removes the cap.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.maxCap = n
	}
}

// WithLogger sets a logger that receives reallocation events at debug level.
// By default the vector does not log.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *config[T]) {
		c.logger = logger
	}
}
