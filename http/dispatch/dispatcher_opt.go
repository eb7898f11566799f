package dispatch

import "github.com/xy-planning-network/signpost/logger"

// A DispatcherOptFn mutates the provided *Dispatcher when constructing it.
type DispatcherOptFn func(*Dispatcher)

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
func WithLogger(l logger.Logger) DispatcherOptFn {
	return func(d *Dispatcher) {
		d.logger = l
	}
}
