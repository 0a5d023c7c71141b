package hostsync

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/freecam/engine/camera"
)

type recordingSink struct {
	name  string
	mu    sync.Mutex
	steps []uint64
	snaps []camera.Snapshot
	err   error
}

func (r *recordingSink) Name() string { return r.name }

func (r *recordingSink) Sync(step uint64, snap camera.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, step)
	r.snaps = append(r.snaps, snap)
	return r.err
}

func TestDispatcher_DeliversToEverySink(t *testing.T) {
	a := &recordingSink{name: "a"}
	b := &recordingSink{name: "b"}
	d := NewDispatcher(WithWorkers(2), WithSinks(a, b))
	t.Cleanup(d.Close)

	snap := camera.Snapshot{Position: mgl32.Vec3{1, 2, 3}, Yaw: 0.5, Moved: true}
	require.NoError(t, d.Dispatch(7, snap))

	for _, s := range []*recordingSink{a, b} {
		require.Len(t, s.steps, 1, s.name)
		assert.Equal(t, uint64(7), s.steps[0])
		assert.Equal(t, snap, s.snaps[0])
	}
}

func TestDispatcher_BlocksUntilSinksReturn(t *testing.T) {
	var done atomic.Int32
	slow := SinkFunc{SinkName: "slow", Fn: func(uint64, camera.Snapshot) error {
		time.Sleep(20 * time.Millisecond)
		done.Add(1)
		return nil
	}}
	d := NewDispatcher(WithWorkers(1), WithSinks(slow))
	t.Cleanup(d.Close)

	for i := range 3 {
		require.NoError(t, d.Dispatch(uint64(i), camera.Snapshot{}))
		assert.Equal(t, int32(i+1), done.Load())
	}
}

func TestDispatcher_JoinsErrors(t *testing.T) {
	var logBuf bytes.Buffer
	ok := &recordingSink{name: "ok"}
	bad := &recordingSink{name: "bad", err: errors.New("host unreachable")}
	d := NewDispatcher(
		WithSinks(ok, bad),
		WithDispatcherLogger(zerolog.New(&logBuf)),
	)
	t.Cleanup(d.Close)

	err := d.Dispatch(1, camera.Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink bad: host unreachable")
	assert.Len(t, ok.steps, 1)
	assert.Contains(t, logBuf.String(), "host sync failed")
}

func TestDispatcher_RecoversPanics(t *testing.T) {
	boom := SinkFunc{SinkName: "boom", Fn: func(uint64, camera.Snapshot) error {
		panic("bad state")
	}}
	d := NewDispatcher(WithSinks(boom))
	t.Cleanup(d.Close)

	err := d.Dispatch(1, camera.Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink boom: sink panicked: bad state")
}

func TestDispatcher_RegisterUnregister(t *testing.T) {
	d := NewDispatcher()
	t.Cleanup(d.Close)

	assert.Empty(t, d.Sinks())
	assert.NoError(t, d.Dispatch(1, camera.Snapshot{}))

	first := &recordingSink{name: "a"}
	d.Register(first)
	d.Register(&recordingSink{name: "b"})
	replacement := &recordingSink{name: "a"}
	d.Register(replacement)
	assert.Equal(t, []string{"a", "b"}, d.Sinks())

	require.NoError(t, d.Dispatch(2, camera.Snapshot{}))
	assert.Empty(t, first.steps)
	assert.Len(t, replacement.steps, 1)

	d.Unregister("a")
	d.Unregister("missing")
	assert.Equal(t, []string{"b"}, d.Sinks())
}

func TestDispatcher_WithControllerStep(t *testing.T) {
	rec := &recordingSink{name: "rec"}
	d := NewDispatcher(WithSinks(rec))
	t.Cleanup(d.Close)

	cc := camera.NewCameraController(camera.WithStateOptions(
		camera.WithMovementSpeed(1),
		camera.WithRotationSpeed(1),
	))
	cc.State().Yaw(0.25)
	cc.State().MoveForward(2)

	snap := cc.Step()
	require.NoError(t, d.Dispatch(1, snap))

	require.Len(t, rec.snaps, 1)
	got := rec.snaps[0]
	assert.True(t, got.Moved)
	assert.InDelta(t, 0.25, got.YawDelta, 1e-6)

	// the delivered copy survives the state's reset
	dyaw, _, _ := cc.State().Deltas()
	assert.Zero(t, dyaw)
	assert.InDelta(t, 0.25, rec.snaps[0].YawDelta, 1e-6)
}
