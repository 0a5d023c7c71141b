package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController owns a free camera's world position and its CameraState, and runs
// the per-step update. Input handlers feed rotation and movement into State() during a
// step; the driver then calls Step once to apply the step and clear its deltas.
// Camera reads Position, Target and Orientation to compute view/projection matrices.
type CameraController interface {
	// State returns the orientation and movement model driven by this controller.
	//
	// Returns:
	//   - CameraState: the controller's camera state
	State() CameraState

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Target returns a point one unit ahead of the camera along its look direction.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Orientation returns the current look quaternion.
	//
	// Returns:
	//   - mgl32.Quat: the look quaternion
	Orientation() mgl32.Quat

	// Step applies the pending movement to the position, captures the step and resets
	// the state's deltas for the next step. Call it exactly once per simulation step,
	// after all of the step's input has been applied.
	//
	// Returns:
	//   - Snapshot: the completed step
	Step() Snapshot

	// Recenter restores the home orientation without moving the camera.
	Recenter()
}
