package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x: X coordinate of the camera
//   - y: Y coordinate of the camera
//   - z: Z coordinate of the camera
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = mgl32.Vec3{x, y, z}
	}
}

// WithState attaches an existing CameraState instead of building a new one.
//
// Parameters:
//   - state: the state to drive
//
// Returns:
//   - CameraControllerOption: functional option to set the state
func WithState(state CameraState) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state = state
	}
}

// WithStateOptions appends options used to build the controller's CameraState.
// Ignored when WithState is also given.
//
// Parameters:
//   - options: CameraState builder options
//
// Returns:
//   - CameraControllerOption: functional option to configure the state
func WithStateOptions(options ...CameraStateBuilderOption) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.stateOptions = append(cc.stateOptions, options...)
	}
}

// WithControllerLogger sets the logger used to trace camera steps.
//
// Parameters:
//   - logger: the zerolog logger to write to
//
// Returns:
//   - CameraControllerOption: functional option to set the logger
func WithControllerLogger(logger zerolog.Logger) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.logger = logger
	}
}
