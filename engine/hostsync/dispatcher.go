package hostsync

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/freecam/engine/camera"
)

// Dispatcher delivers each step's snapshot to every registered Sink.
//
// Sinks run concurrently on a worker pool. Dispatch blocks until every sink has returned,
// so the caller may reset the camera's per-step state immediately afterwards.
type Dispatcher interface {
	// Register adds a sink, replacing any sink with the same name.
	//
	// Parameters:
	//   - s: the sink to add
	Register(s Sink)

	// Unregister removes the sink with the given name. Unknown names are ignored.
	//
	// Parameters:
	//   - name: the sink name
	Unregister(name string)

	// Sinks returns the registered sink names in registration order.
	//
	// Returns:
	//   - []string: sink names
	Sinks() []string

	// Dispatch fans snap out to every sink and waits for all of them.
	// Sink failures are logged and joined into the returned error; one failing sink
	// does not stop delivery to the others.
	//
	// Parameters:
	//   - step: the step number
	//   - snap: the step's snapshot
	//
	// Returns:
	//   - error: joined sink errors, or nil
	Dispatch(step uint64, snap camera.Snapshot) error

	// Close stops the worker pool. Dispatch must not be called afterwards.
	Close()
}

type dispatcherImpl struct {
	mu *sync.Mutex

	pool    worker.DynamicWorkerPool
	workers int

	sinks []Sink

	logger zerolog.Logger
}

var _ Dispatcher = &dispatcherImpl{}

// NewDispatcher creates a Dispatcher backed by a worker pool.
//
// Parameters:
//   - options: functional options to configure the dispatcher
//
// Returns:
//   - Dispatcher: the dispatcher
func NewDispatcher(options ...DispatcherBuilderOption) Dispatcher {
	d := &dispatcherImpl{
		mu:      &sync.Mutex{},
		workers: 2,
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		option(d)
	}
	if d.workers <= 0 {
		d.workers = 1
	}
	d.pool = worker.NewDynamicWorkerPool(d.workers, 64, 1*time.Second)
	return d
}

func (d *dispatcherImpl) Register(s Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.sinks {
		if existing.Name() == s.Name() {
			d.sinks[i] = s
			return
		}
	}
	d.sinks = append(d.sinks, s)
	d.logger.Debug().Str("sink", s.Name()).Msg("host sync sink registered")
}

func (d *dispatcherImpl) Unregister(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.sinks {
		if s.Name() == name {
			d.sinks = append(d.sinks[:i], d.sinks[i+1:]...)
			return
		}
	}
}

func (d *dispatcherImpl) Sinks() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, len(d.sinks))
	for i, s := range d.sinks {
		names[i] = s.Name()
	}
	return names
}

func (d *dispatcherImpl) Dispatch(step uint64, snap camera.Snapshot) error {
	d.mu.Lock()
	sinks := make([]Sink, len(d.sinks))
	copy(sinks, d.sinks)
	d.mu.Unlock()

	if len(sinks) == 0 {
		return nil
	}

	// pool.Wait tracks worker idle-exit, not task completion, so each step gets its own barrier
	var wg sync.WaitGroup
	errs := make([]error, len(sinks))
	for i, s := range sinks {
		wg.Add(1)
		idx, sink := i, s
		d.pool.SubmitTask(worker.Task{
			ID:      idx,
			Payload: step,
			Do: func() (res any, err error) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("sink panicked: %v", r)
					}
					if err != nil {
						errs[idx] = fmt.Errorf("sink %s: %w", sink.Name(), err)
					}
				}()
				return nil, sink.Sync(step, snap)
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			d.logger.Error().Err(err).Uint64("step", step).Msg("host sync failed")
		}
	}
	return errors.Join(errs...)
}

func (d *dispatcherImpl) Close() {
	d.pool.Stop()
}
