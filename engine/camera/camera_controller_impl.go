package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	state    CameraState

	// stateOptions are applied when the controller builds its own state.
	stateOptions []CameraStateBuilderOption

	steps  uint64
	logger zerolog.Logger
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller positioned at the origin.
// Unless WithState supplies one, the controller builds a CameraState from the
// options collected through WithStateOptions.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		logger: zerolog.Nop(),
	}

	for _, option := range options {
		option(cc)
	}

	if cc.state == nil {
		cc.state = NewCameraState(cc.stateOptions...)
	}
	return cc
}

func (cc *cameraControllerImpl) State() CameraState {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) SetPosition(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = mgl32.Vec3{x, y, z}
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, forward := LocalAxes(cc.state.LookQuaternion())
	t := cc.position.Add(forward)
	return t[0], t[1], t[2]
}

func (cc *cameraControllerImpl) Orientation() mgl32.Quat {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.LookQuaternion()
}

func (cc *cameraControllerImpl) Step() Snapshot {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	snap := cc.state.Snapshot(cc.position)
	cc.position = snap.Position
	cc.state.ResetDeltas()
	cc.steps++

	if snap.Moved {
		cc.logger.Trace().
			Uint64("step", cc.steps).
			Float32("x", snap.Position[0]).
			Float32("y", snap.Position[1]).
			Float32("z", snap.Position[2]).
			Msg("camera moved")
	}
	return snap
}

func (cc *cameraControllerImpl) Recenter() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state.ResetAngles()
}
