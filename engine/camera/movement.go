package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

func (cs *cameraStateImpl) MoveForward(amount float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	// Y is up and Z points out of the screen, so forward accumulates negatively.
	cs.movement[2] -= cs.movementSpeed * amount
	cs.movementOccurred = true
}

func (cs *cameraStateImpl) MoveRight(amount float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.movement[0] += cs.movementSpeed * amount
	cs.movementOccurred = true
}

func (cs *cameraStateImpl) MoveUp(amount float32) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.movement[1] += cs.movementSpeed * amount * cs.verticalMultiplier
	cs.movementOccurred = true
}

func (cs *cameraStateImpl) Movement() mgl32.Vec3 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.movement
}

func (cs *cameraStateImpl) MovementOccurred() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.movementOccurred
}

func (cs *cameraStateImpl) NewPosition(current mgl32.Vec3, lookQ mgl32.Quat) mgl32.Vec3 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.newPosition(current, lookQ)
}

// newPosition adds the step's movement, rotated into world space by lookQ, to current.
// Caller must hold the mutex.
func (cs *cameraStateImpl) newPosition(current mgl32.Vec3, lookQ mgl32.Quat) mgl32.Vec3 {
	if !cs.movementOccurred {
		return current
	}

	right, forward := LocalAxes(lookQ)

	out := current
	out = out.Add(right.Mul(cs.movement[0]))
	out = out.Add(forward.Mul(-cs.movement[2]))
	// World Y, not the camera's up axis: vertical movement ignores pitch and roll.
	out[1] += cs.movement[1]
	return out
}

// LocalAxes returns the world-space directions of the camera's local right and forward
// axes for a look quaternion.
//
// lookQ maps world space into camera space, so the rows of its rotation matrix are the
// camera axes expressed in world space.
//
// Parameters:
//   - lookQ: the look quaternion
//
// Returns:
//   - right: world-space direction of local +X
//   - forward: world-space direction of local +Z (the look direction)
func LocalAxes(lookQ mgl32.Quat) (right, forward mgl32.Vec3) {
	m := lookQ.Mat4()
	return m.Row(0).Vec3(), m.Row(2).Vec3()
}
