package hostsync

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/freecam/engine/camera"
)

// Sink receives the camera snapshot of every engine step.
// Sync is called from a worker goroutine; implementations must not retain the snapshot
// by reference across calls unless they copy it.
type Sink interface {
	// Name identifies the sink in logs and registration.
	//
	// Returns:
	//   - string: unique sink name
	Name() string

	// Sync consumes one step.
	//
	// Parameters:
	//   - step: the monotonically increasing step number
	//   - snap: the step's snapshot
	//
	// Returns:
	//   - error: error if the sink failed to consume the step
	Sync(step uint64, snap camera.Snapshot) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc struct {
	SinkName string
	Fn       func(step uint64, snap camera.Snapshot) error
}

var _ Sink = SinkFunc{}

func (f SinkFunc) Name() string {
	return f.SinkName
}

func (f SinkFunc) Sync(step uint64, snap camera.Snapshot) error {
	return f.Fn(step, snap)
}

// LogSink writes each step with motion to a zerolog logger at trace level.
// Quiescent steps are skipped. Output is sampled: a burst of entries per period, then
// one in every n.
type LogSink struct {
	logger zerolog.Logger
}

var _ Sink = &LogSink{}

// NewLogSink creates a LogSink.
//
// Parameters:
//   - logger: destination logger
//   - burst: entries allowed per period before sampling starts, 0 disables sampling
//   - period: burst window
//   - n: once the burst is spent, one entry in n is written
//
// Returns:
//   - *LogSink: the sink
func NewLogSink(logger zerolog.Logger, burst uint32, period time.Duration, n uint32) *LogSink {
	l := logger.With().Str("sink", "log").Logger()
	if burst > 0 {
		l = l.Sample(&zerolog.BurstSampler{
			Burst:       burst,
			Period:      period,
			NextSampler: &zerolog.BasicSampler{N: n},
		})
	}
	return &LogSink{logger: l}
}

func (s *LogSink) Name() string {
	return "log"
}

func (s *LogSink) Sync(step uint64, snap camera.Snapshot) error {
	if !snap.Moved && snap.YawDelta == 0 && snap.PitchDelta == 0 && snap.RollDelta == 0 {
		return nil
	}
	s.logger.Trace().
		Uint64("step", step).
		Object("camera", snapshotObject(snap)).
		Msg("camera step")
	return nil
}

// snapshotObject renders a snapshot as a nested zerolog object.
type snapshotObject camera.Snapshot

func (o snapshotObject) MarshalZerologObject(e *zerolog.Event) {
	e.Floats32("position", o.Position[:]).
		Floats32("orientation", []float32{o.Orientation.W, o.Orientation.V[0], o.Orientation.V[1], o.Orientation.V[2]}).
		Float32("yaw", o.Yaw).
		Float32("pitch", o.Pitch).
		Float32("roll", o.Roll).
		Float32("yawDelta", o.YawDelta).
		Float32("pitchDelta", o.PitchDelta).
		Float32("rollDelta", o.RollDelta).
		Bool("moved", o.Moved)
}
