package hostsync

import "github.com/rs/zerolog"

// DispatcherBuilderOption is a functional option for configuring a Dispatcher.
type DispatcherBuilderOption func(*dispatcherImpl)

// WithWorkers sets the number of pool workers delivering snapshots. Values below 1 use 1.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - DispatcherBuilderOption: functional option to set the worker count
func WithWorkers(n int) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.workers = n
	}
}

// WithSinks registers sinks at construction.
//
// Parameters:
//   - sinks: sinks to register, in order
//
// Returns:
//   - DispatcherBuilderOption: functional option to add sinks
func WithSinks(sinks ...Sink) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.sinks = append(d.sinks, sinks...)
	}
}

// WithDispatcherLogger sets the logger used for sink failures.
func WithDispatcherLogger(logger zerolog.Logger) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.logger = logger
	}
}
