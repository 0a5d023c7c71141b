package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/freecam/common"
)

// CameraState is the orientation and movement model of a free camera.
//
// A CameraState is driven in steps. Within one step the valid call sequence is:
// zero or more rotation/movement calls, at most one orientation/position query,
// and exactly one ResetDeltas once the step's deltas have been consumed. Querying
// before all of a step's input has been applied observes a partial update.
//
// All angles are radians in [0, 2π). Rotation and movement amounts are signed input
// magnitudes; the state multiplies them by the rotation and movement speeds.
type CameraState interface {
	// Yaw rotates about world up by amount scaled by the rotation speed.
	// The yaw delta accumulates the same rotation.
	//
	// Parameters:
	//   - amount: signed input magnitude for this step
	Yaw(amount float32)

	// Pitch rotates about the local right axis by amount scaled by the rotation speed.
	// The pitch delta accumulates the same rotation.
	//
	// Parameters:
	//   - amount: signed input magnitude for this step
	Pitch(amount float32)

	// Roll rotates about the local forward axis by amount scaled by the rotation speed.
	// Unlike Yaw and Pitch, the roll delta is overwritten with this call's rotation
	// instead of accumulating.
	//
	// Parameters:
	//   - amount: signed input magnitude for this step
	Roll(amount float32)

	// SetYaw replaces the absolute yaw angle.
	//
	// Parameters:
	//   - angle: yaw in radians, normalized into [0, 2π)
	SetYaw(angle float32)

	// SetPitch replaces the absolute pitch angle.
	//
	// Parameters:
	//   - angle: pitch in radians, normalized into [0, 2π)
	SetPitch(angle float32)

	// SetRoll replaces the absolute roll angle.
	//
	// Parameters:
	//   - angle: roll in radians, normalized into [0, 2π)
	SetRoll(angle float32)

	// Angles returns the absolute orientation.
	//
	// Returns:
	//   - yaw, pitch, roll: angles in radians, each in [0, 2π)
	Angles() (yaw, pitch, roll float32)

	// Deltas returns the rotation applied during the current step.
	//
	// Returns:
	//   - yaw, pitch, roll: per-step deltas in radians, each in [0, 2π)
	Deltas() (yaw, pitch, roll float32)

	// HomeAngles returns the orientation restored by ResetAngles.
	//
	// Returns:
	//   - yaw, pitch, roll: home angles in radians
	HomeAngles() (yaw, pitch, roll float32)

	// ResetAngles restores the home orientation. Deltas are left untouched.
	ResetAngles()

	// ResetDeltas clears the per-step rotation deltas and the movement accumulation.
	// Call it exactly once per step, after consumers have read the step's deltas.
	ResetDeltas()

	// LookQuaternion derives the unit orientation quaternion from yaw, pitch and roll.
	//
	// Returns:
	//   - mgl32.Quat: the normalized look quaternion
	LookQuaternion() mgl32.Quat

	// MoveForward accumulates movement along the local forward axis.
	//
	// Parameters:
	//   - amount: signed input magnitude for this step (positive moves forward)
	MoveForward(amount float32)

	// MoveRight accumulates movement along the local right axis.
	//
	// Parameters:
	//   - amount: signed input magnitude for this step (positive moves right)
	MoveRight(amount float32)

	// MoveUp accumulates movement along the world up axis, scaled by the vertical multiplier.
	//
	// Parameters:
	//   - amount: signed input magnitude for this step (positive moves up)
	MoveUp(amount float32)

	// Movement returns the local movement accumulated during the current step as
	// (right, up, forward) components. The forward component is negative-going for
	// forward movement.
	//
	// Returns:
	//   - mgl32.Vec3: the local movement vector
	Movement() mgl32.Vec3

	// MovementOccurred reports whether any movement call happened during the current step.
	//
	// Returns:
	//   - bool: true if MoveForward, MoveRight or MoveUp was called since the last ResetDeltas
	MovementOccurred() bool

	// NewPosition transforms the step's local movement into world space and adds it to current.
	// If no movement occurred this step, current is returned unchanged.
	//
	// Parameters:
	//   - current: the world-space position before this step
	//   - lookQ: the look quaternion, normally LookQuaternion()
	//
	// Returns:
	//   - mgl32.Vec3: the world-space position after this step
	NewPosition(current mgl32.Vec3, lookQ mgl32.Quat) mgl32.Vec3

	// Snapshot captures the step's orientation, deltas and resulting position.
	// The returned value does not alias the state and stays valid after ResetDeltas.
	//
	// Parameters:
	//   - current: the world-space position before this step
	//
	// Returns:
	//   - Snapshot: the captured step
	Snapshot(current mgl32.Vec3) Snapshot

	// MovementSpeed returns the movement speed scale factor.
	//
	// Returns:
	//   - float32: the movement speed
	MovementSpeed() float32

	// SetMovementSpeed sets the movement speed. It takes effect on the next movement call.
	//
	// Parameters:
	//   - speed: the new movement speed scale factor
	SetMovementSpeed(speed float32)

	// RotationSpeed returns the rotation speed scale factor.
	//
	// Returns:
	//   - float32: the rotation speed
	RotationSpeed() float32

	// SetRotationSpeed sets the rotation speed. It takes effect on the next rotation call.
	//
	// Parameters:
	//   - speed: the new rotation speed scale factor
	SetRotationSpeed(speed float32)

	// VerticalMultiplier returns the factor applied to MoveUp amounts.
	//
	// Returns:
	//   - float32: the vertical multiplier
	VerticalMultiplier() float32
}

// Snapshot is a value copy of one step of a CameraState, handed to consumers that
// need absolute or relative camera motion after the step ends.
type Snapshot struct {
	// Position is the world-space position after the step.
	Position mgl32.Vec3
	// Orientation is the look quaternion at the end of the step.
	Orientation mgl32.Quat
	// Yaw, Pitch, Roll are the absolute angles in radians.
	Yaw, Pitch, Roll float32
	// YawDelta, PitchDelta, RollDelta are the rotation applied during the step.
	YawDelta, PitchDelta, RollDelta float32
	// Moved is true if any movement call happened during the step.
	Moved bool
}

type cameraStateImpl struct {
	mu *sync.Mutex

	// absolute orientation
	yaw   float32
	pitch float32
	roll  float32

	// per-step rotation
	yawDelta   float32
	pitchDelta float32
	rollDelta  float32

	// per-step local movement (right, up, forward)
	movement         mgl32.Vec3
	movementOccurred bool

	movementSpeed      float32
	rotationSpeed      float32
	verticalMultiplier float32

	homeYaw   float32
	homePitch float32
	homeRoll  float32

	logger zerolog.Logger
}

var _ CameraState = &cameraStateImpl{}

// NewCameraState creates a CameraState with default speeds, zero angles and zero deltas.
// Options are applied in order; home angles set through options do not change the
// initial orientation until ResetAngles is called, unless WithInitialAngles is used.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - CameraState: the newly created state
func NewCameraState(options ...CameraStateBuilderOption) CameraState {
	cs := &cameraStateImpl{
		mu:                 &sync.Mutex{},
		movementSpeed:      DefaultMovementSpeed,
		rotationSpeed:      DefaultRotationSpeed,
		verticalMultiplier: DefaultVerticalMultiplier,
		homeYaw:            InitialYawRadians,
		homePitch:          InitialPitchRadians,
		homeRoll:           InitialRollRadians,
		logger:             zerolog.Nop(),
	}
	for _, option := range options {
		option(cs)
	}
	return cs
}

func (cs *cameraStateImpl) Angles() (yaw, pitch, roll float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.yaw, cs.pitch, cs.roll
}

func (cs *cameraStateImpl) Deltas() (yaw, pitch, roll float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.yawDelta, cs.pitchDelta, cs.rollDelta
}

func (cs *cameraStateImpl) HomeAngles() (yaw, pitch, roll float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.homeYaw, cs.homePitch, cs.homeRoll
}

func (cs *cameraStateImpl) ResetAngles() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.pitch = common.NormalizeAngle(cs.homePitch)
	cs.roll = common.NormalizeAngle(cs.homeRoll)
	cs.yaw = common.NormalizeAngle(cs.homeYaw)
	cs.logger.Debug().
		Float32("yaw", cs.yaw).
		Float32("pitch", cs.pitch).
		Float32("roll", cs.roll).
		Msg("camera angles reset")
}

func (cs *cameraStateImpl) ResetDeltas() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.movementOccurred = false
	cs.movement = mgl32.Vec3{}
	cs.yawDelta = 0
	cs.pitchDelta = 0
	cs.rollDelta = 0
}

func (cs *cameraStateImpl) Snapshot(current mgl32.Vec3) Snapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	q := cs.lookQuaternion()
	return Snapshot{
		Position:    cs.newPosition(current, q),
		Orientation: q,
		Yaw:         cs.yaw,
		Pitch:       cs.pitch,
		Roll:        cs.roll,
		YawDelta:    cs.yawDelta,
		PitchDelta:  cs.pitchDelta,
		RollDelta:   cs.rollDelta,
		Moved:       cs.movementOccurred,
	}
}

func (cs *cameraStateImpl) MovementSpeed() float32 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.movementSpeed
}

func (cs *cameraStateImpl) SetMovementSpeed(speed float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.movementSpeed = speed
}

func (cs *cameraStateImpl) RotationSpeed() float32 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.rotationSpeed
}

func (cs *cameraStateImpl) SetRotationSpeed(speed float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.rotationSpeed = speed
}

func (cs *cameraStateImpl) VerticalMultiplier() float32 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.verticalMultiplier
}
