package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/freecam/common"
)

// World axes used to build the per-axis rotations.
var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

func (cs *cameraStateImpl) Yaw(amount float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	step := cs.rotationStep("yaw", amount)
	cs.yaw = common.NormalizeAngle(cs.yaw + step)
	cs.yawDelta = common.NormalizeAngle(cs.yawDelta + step)
}

func (cs *cameraStateImpl) Pitch(amount float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	step := cs.rotationStep("pitch", amount)
	cs.pitch = common.NormalizeAngle(cs.pitch + step)
	cs.pitchDelta = common.NormalizeAngle(cs.pitchDelta + step)
}

func (cs *cameraStateImpl) Roll(amount float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	step := cs.rotationStep("roll", amount)
	cs.roll = common.NormalizeAngle(cs.roll + step)
	// overwritten, not accumulated; consumers of the roll delta rely on this
	cs.rollDelta = common.NormalizeAngle(step)
}

func (cs *cameraStateImpl) SetYaw(angle float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.checkFinite("yaw", angle)
	cs.yaw = common.NormalizeAngle(angle)
}

func (cs *cameraStateImpl) SetPitch(angle float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.checkFinite("pitch", angle)
	cs.pitch = common.NormalizeAngle(angle)
}

func (cs *cameraStateImpl) SetRoll(angle float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.checkFinite("roll", angle)
	cs.roll = common.NormalizeAngle(angle)
}

func (cs *cameraStateImpl) LookQuaternion() mgl32.Quat {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.lookQuaternion()
}

// rotationStep scales a rotation amount by the rotation speed.
// A non-finite step is logged and replaced with 0 so the absolute angle survives.
// Caller must hold the mutex.
func (cs *cameraStateImpl) rotationStep(axis string, amount float32) float32 {
	step := cs.rotationSpeed * amount
	if !cs.checkFinite(axis, step) {
		return 0
	}
	return step
}

// checkFinite logs a warning when v is NaN or infinite.
// Caller must hold the mutex.
//
// Returns:
//   - bool: true if v is finite
func (cs *cameraStateImpl) checkFinite(axis string, v float32) bool {
	if common.IsFinite(v) {
		return true
	}
	cs.logger.Warn().Str("axis", axis).Float32("value", v).Msg("non-finite camera angle ignored")
	return false
}

// lookQuaternion builds the look quaternion from the current angles.
//
// The stored angles describe how the view direction turns, while the quaternion maps
// world space into camera space, so every angle is negated. The Hamilton product
// roll⋅pitch⋅yaw keeps yaw outermost in the inverse rotation: yaw always turns about
// world up, pitch and roll about the yawed local axes. Reordering changes the result
// under combined rotations.
// Caller must hold the mutex.
func (cs *cameraStateImpl) lookQuaternion() mgl32.Quat {
	xq := mgl32.QuatRotate(-cs.pitch, axisX)
	yq := mgl32.QuatRotate(-cs.yaw, axisY)
	zq := mgl32.QuatRotate(-cs.roll, axisZ)

	q := zq.Mul(xq).Mul(yq)
	return q.Normalize()
}
