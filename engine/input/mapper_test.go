package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/freecam/common"
	"github.com/Carmen-Shannon/freecam/engine/camera"
)

func unitState() camera.CameraState {
	return camera.NewCameraState(
		camera.WithMovementSpeed(1),
		camera.WithRotationSpeed(1),
		camera.WithVerticalMultiplier(1),
	)
}

func TestMapper_NoInput(t *testing.T) {
	m := NewMapper()
	cs := unitState()

	assert.False(t, m.Apply(cs, 0))
	assert.False(t, cs.MovementOccurred())
	yaw, pitch, roll := cs.Angles()
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)
	assert.Zero(t, roll)
}

func TestMapper_Movement(t *testing.T) {
	tests := []struct {
		name string
		keys []uint32
		want mgl32.Vec3
	}{
		{"forward", []uint32{common.KeyW}, mgl32.Vec3{0, 0, -1}},
		{"backward", []uint32{common.KeyS}, mgl32.Vec3{0, 0, 1}},
		{"right", []uint32{common.KeyD}, mgl32.Vec3{1, 0, 0}},
		{"left", []uint32{common.KeyA}, mgl32.Vec3{-1, 0, 0}},
		{"up", []uint32{common.KeySpace}, mgl32.Vec3{0, 1, 0}},
		{"down", []uint32{common.KeyC}, mgl32.Vec3{0, -1, 0}},
		{"boosted strafe", []uint32{common.KeyLeftShift, common.KeyD}, mgl32.Vec3{4, 0, 0}},
		{"diagonal", []uint32{common.KeyW, common.KeyA, common.KeySpace}, mgl32.Vec3{-1, 1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper()
			cs := unitState()
			for _, k := range tt.keys {
				m.KeyDown(k)
			}

			assert.True(t, m.Apply(cs, 0))
			assert.True(t, cs.MovementOccurred())
			assert.Equal(t, tt.want, cs.Movement())
		})
	}
}

func TestMapper_OpposingKeysCancel(t *testing.T) {
	m := NewMapper()
	cs := unitState()
	m.KeyDown(common.KeyW)
	m.KeyDown(common.KeyS)

	assert.False(t, m.Apply(cs, 0))
	assert.False(t, cs.MovementOccurred())
}

func TestMapper_KeyUpStopsInput(t *testing.T) {
	m := NewMapper()
	cs := unitState()
	m.KeyDown(common.KeyW)
	m.KeyUp(common.KeyW)

	assert.False(t, m.Apply(cs, 0))
}

func TestMapper_DeltaTimeScaling(t *testing.T) {
	m := NewMapper(WithTickRate(60))
	cs := unitState()
	m.KeyDown(common.KeyD)

	m.Apply(cs, 0.5)
	assert.InDelta(t, 30.0, cs.Movement()[0], 1e-4)
}

func TestMapper_ZeroTickRateDisablesScaling(t *testing.T) {
	m := NewMapper(WithTickRate(0))
	cs := unitState()
	m.KeyDown(common.KeyD)

	m.Apply(cs, 0.5)
	assert.Equal(t, float32(1), cs.Movement()[0])
}

func TestMapper_KeyRotation(t *testing.T) {
	tests := []struct {
		name                      string
		key                       uint32
		wantYaw, wantPit, wantRol float32
	}{
		{"yaw right", common.KeyRight, 1, 0, 0},
		{"yaw left", common.KeyLeft, common.TwoPi - 1, 0, 0},
		{"pitch down", common.KeyDown, 0, 1, 0},
		{"pitch up", common.KeyUp, 0, common.TwoPi - 1, 0},
		{"roll right", common.KeyE, 0, 0, 1},
		{"roll left", common.KeyQ, 0, 0, common.TwoPi - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper()
			cs := unitState()
			m.KeyDown(tt.key)

			require.True(t, m.Apply(cs, 0))
			yaw, pitch, roll := cs.Angles()
			assert.InDelta(t, tt.wantYaw, yaw, 1e-5)
			assert.InDelta(t, tt.wantPit, pitch, 1e-5)
			assert.InDelta(t, tt.wantRol, roll, 1e-5)
			assert.False(t, cs.MovementOccurred())
		})
	}
}

func TestMapper_MouseLook(t *testing.T) {
	m := NewMapper(WithMouseSensitivity(0.1))
	cs := unitState()

	m.MouseMove(500, 500)
	m.LookStart(100, 100)
	m.MouseMove(105, 98)
	m.MouseMove(110, 96)
	m.LookEnd()
	m.MouseMove(300, 300)

	require.True(t, m.Apply(cs, 0))
	yaw, pitch, _ := cs.Angles()
	assert.InDelta(t, 1.0, yaw, 1e-6)
	assert.InDelta(t, common.TwoPi-0.4, pitch, 1e-5)

	dyaw, dpitch, _ := cs.Deltas()
	assert.InDelta(t, 1.0, dyaw, 1e-6)
	assert.InDelta(t, common.TwoPi-0.4, dpitch, 1e-5)

	// motion is consumed by Apply
	cs.ResetDeltas()
	assert.False(t, m.Apply(cs, 0))
}

func TestMapper_RecenterFiresOncePerPress(t *testing.T) {
	m := NewMapper()
	cs := camera.NewCameraState(camera.WithHomeAngles(0.5, 0, 0))
	cs.SetYaw(2)

	m.KeyDown(common.KeyBackspace)
	m.Apply(cs, 0)
	yaw, _, _ := cs.Angles()
	assert.Equal(t, float32(0.5), yaw)

	cs.SetYaw(2)
	m.KeyDown(common.KeyBackspace) // key repeat while held
	m.Apply(cs, 0)
	yaw, _, _ = cs.Angles()
	assert.Equal(t, float32(2), yaw)

	m.KeyUp(common.KeyBackspace)
	m.KeyDown(common.KeyBackspace)
	m.Apply(cs, 0)
	yaw, _, _ = cs.Angles()
	assert.Equal(t, float32(0.5), yaw)
}

func TestMapper_SpeedChanges(t *testing.T) {
	m := NewMapper(WithSpeedStep(2))
	cs := unitState()

	m.KeyDown(common.KeyKPAdd)
	m.Apply(cs, 0)
	assert.InDelta(t, 2.0, cs.MovementSpeed(), 1e-6)

	m.KeyUp(common.KeyKPAdd)
	m.KeyDown(common.KeyKPSubtract)
	m.Apply(cs, 0)
	assert.InDelta(t, 1.0, cs.MovementSpeed(), 1e-6)

	m.Scroll(-2)
	m.Apply(cs, 0)
	assert.InDelta(t, 0.25, cs.MovementSpeed(), 1e-6)

	// scroll is consumed
	m.Apply(cs, 0)
	assert.InDelta(t, 0.25, cs.MovementSpeed(), 1e-6)
}

func TestMapper_CustomBindings(t *testing.T) {
	b, err := ResolveBindings(map[string]string{"forward": "up", "pitchUp": "home"})
	require.NoError(t, err)

	m := NewMapper(WithBindings(b))
	cs := unitState()
	m.KeyDown(common.KeyUp)

	m.Apply(cs, 0)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cs.Movement())
	_, pitch, _ := cs.Angles()
	assert.Zero(t, pitch)

	got := m.Bindings()
	assert.Equal(t, uint32(common.KeyUp), got[ActionForward])
	got[ActionForward] = 0
	assert.Equal(t, uint32(common.KeyUp), m.Bindings()[ActionForward])
}

func TestMapper_SharedKey(t *testing.T) {
	m := NewMapper(WithBindings(Bindings{
		ActionForward: common.KeyW,
		ActionUp:      common.KeyW,
	}))
	cs := unitState()
	m.KeyDown(common.KeyW)

	m.Apply(cs, 0)
	assert.Equal(t, mgl32.Vec3{0, 1, -1}, cs.Movement())
}
