package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// lens holds the perspective settings of a Camera.
type lens struct {
	fov    float32
	aspect float32
	near   float32
	far    float32
}

func (l lens) projection() mgl32.Mat4 {
	return mgl32.Perspective(l.fov, l.aspect, l.near, l.far)
}

type cameraImpl struct {
	mu *sync.Mutex

	lens lens

	view           mgl32.Mat4
	projection     mgl32.Mat4
	viewProjection mgl32.Mat4
	invProjection  mgl32.Mat4

	controller CameraController
}

// Camera is the perspective camera presented by the viewport.
// It owns fov, aspect and clip planes, and rebuilds its matrices from the attached
// CameraController on Update.
//
// The view maps the controller's right axis to +x, its up axis to +y and its forward
// axis to -z, so the result feeds a right-handed perspective projection while the
// controller keeps its Y-up, Z-forward frame. Roll tilts the view.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns width / height.
	Aspect() float32

	// Near returns the near clip distance.
	Near() float32

	// Far returns the far clip distance.
	Far() float32

	// ViewMatrix returns the world-to-view matrix from the last update.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix (column-major)
	ViewProjectionMatrix() mgl32.Mat4

	// InverseProjectionMatrix returns the inverse of ProjectionMatrix.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse projection (column-major)
	InverseProjectionMatrix() mgl32.Mat4

	// Controller returns the attached controller, or nil.
	Controller() CameraController

	// Update rebuilds the matrices from the controller's position and orientation.
	// The render loop calls it once per frame. Without a controller it does nothing.
	Update()

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets width / height.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clip distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clip distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetController attaches the controller the camera follows.
	//
	// Parameters:
	//   - ctrl: the controller
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with a 45 degree field of view, aspect 1 and clip planes 0.1..100.
// Matrices stay identity until a controller is attached.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu: &sync.Mutex{},
		lens: lens{
			fov:    45 * math.Pi / 180,
			aspect: 1,
			near:   0.1,
			far:    100,
		},
		view:           mgl32.Ident4(),
		projection:     mgl32.Ident4(),
		viewProjection: mgl32.Ident4(),
		invProjection:  mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.rebuild()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lens.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lens.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lens.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lens.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjection
}

func (c *cameraImpl) InverseProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invProjection
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebuild()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.setLens(func(l *lens) { l.fov = fov })
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.setLens(func(l *lens) { l.aspect = aspect })
}

func (c *cameraImpl) SetNear(near float32) {
	c.setLens(func(l *lens) { l.near = near })
}

func (c *cameraImpl) SetFar(far float32) {
	c.setLens(func(l *lens) { l.far = far })
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
}

func (c *cameraImpl) setLens(change func(*lens)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	change(&c.lens)
	c.rebuild()
}

// rebuild recomputes every matrix. It is a no-op without a controller.
// Caller must hold the mutex.
func (c *cameraImpl) rebuild() {
	if c.controller == nil {
		return
	}

	x, y, z := c.controller.Position()
	c.view = ViewFromOrientation(mgl32.Vec3{x, y, z}, c.controller.Orientation())
	c.projection = c.lens.projection()
	c.viewProjection = c.projection.Mul4(c.view)
	c.invProjection = c.projection.Inv()
}

// ViewFromOrientation builds the world-to-view matrix for a camera at position whose
// axes come from the look quaternion. Local right lands on +x, up on +y and forward on -z.
//
// Parameters:
//   - position: camera position in world space
//   - lookQ: the look quaternion from CameraState.LookQuaternion
//
// Returns:
//   - mgl32.Mat4: the view matrix (column-major)
func ViewFromOrientation(position mgl32.Vec3, lookQ mgl32.Quat) mgl32.Mat4 {
	m := lookQ.Mat4()
	right := m.Row(0).Vec3()
	up := m.Row(1).Vec3()
	back := m.Row(2).Vec3().Mul(-1)

	return mgl32.Mat4{
		right.X(), up.X(), back.X(), 0,
		right.Y(), up.Y(), back.Y(), 0,
		right.Z(), up.Z(), back.Z(), 0,
		-right.Dot(position), -up.Dot(position), -back.Dot(position), 1,
	}
}
