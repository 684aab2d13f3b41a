package kura

import "go.uber.org/zap"

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for borrow conflicts, slot retirement and
// registry events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithEntityCapacity pre-allocates room for n entity slots.
func WithEntityCapacity(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.capacity = n
		}
	}
}
