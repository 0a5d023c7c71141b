package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, want, have mgl32.Vec3, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], have[:], delta, msgAndArgs...)
}

func assertQuatInDelta(t *testing.T, want, have mgl32.Quat, delta float64) {
	t.Helper()
	assert.InDelta(t, want.W, have.W, delta, "w: want %v have %v", want, have)
	assertVec3InDelta(t, want.V, have.V, delta, "v: want %v have %v", want, have)
}

func assertMat4InDelta(t *testing.T, want, have mgl32.Mat4, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], have[:], delta, "want %v have %v", want, have)
}

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera()
	assert.InDelta(t, 45*math.Pi/180, c.Fov(), 1e-6)
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
	assert.Nil(t, c.Controller())
	assert.Equal(t, mgl32.Ident4(), c.ViewMatrix())

	// no controller, no change
	c.Update()
	assert.Equal(t, mgl32.Ident4(), c.ViewMatrix())
}

func TestCamera_ViewFollowsController(t *testing.T) {
	cc := NewCameraController(WithPosition(0, 0, -5))
	c := NewCamera(WithController(cc), WithAspect(16.0/9.0), WithNear(0.5), WithFar(500))

	// a point straight ahead lands on the view axis
	ahead := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 5, 1})
	assert.InDelta(t, 0, ahead.X(), 1e-5)
	assert.InDelta(t, 0, ahead.Y(), 1e-5)
	assert.InDelta(t, -10, ahead.Z(), 1e-4)

	cc.State().SetYaw(math.Pi / 2)
	c.Update()
	ahead = c.ViewMatrix().Mul4x1(mgl32.Vec4{10, 0, -5, 1})
	assert.InDelta(t, 0, ahead.X(), 1e-4)
	assert.InDelta(t, 0, ahead.Y(), 1e-4)
	assert.InDelta(t, -10, ahead.Z(), 1e-4)
}

func TestCamera_ViewKeepsLocalAxes(t *testing.T) {
	angles := [][3]float32{
		{0, 0, 0},
		{math.Pi / 2, 0, 0},
		{0.3, 0.2, 0.1},
		{1.1, 5.9, 2.5},
		{4.0, math.Pi / 3, math.Pi / 3},
	}
	position := mgl32.Vec3{3, -2, 7}

	for _, a := range angles {
		cc := NewCameraController(
			WithPosition(position[0], position[1], position[2]),
			WithStateOptions(WithInitialAngles(a[0], a[1], a[2])),
		)
		c := NewCamera(WithController(cc))

		q := cc.Orientation()
		right, forward := LocalAxes(q)
		up := q.Mat4().Row(1).Vec3()
		view := c.ViewMatrix()

		assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, view.Mul4x1(position.Add(right).Vec4(1)).Vec3(), 1e-4, "right for %v", a)
		assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, view.Mul4x1(position.Add(up).Vec4(1)).Vec3(), 1e-4, "up for %v", a)
		assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, view.Mul4x1(position.Add(forward).Vec4(1)).Vec3(), 1e-4, "forward for %v", a)
	}
}

func TestCamera_MoveRightShiftsSceneLeft(t *testing.T) {
	cc := NewCameraController()
	c := NewCamera(WithController(cc), WithNear(0.1), WithFar(100))
	marker := mgl32.Vec4{0, 0, 5, 1}

	clip := c.ViewProjectionMatrix().Mul4x1(marker)
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-5)

	cc.State().MoveRight(1)
	cc.Step()
	c.Update()

	x, _, _ := cc.Position()
	assert.Greater(t, x, float32(0))

	// the camera moved right, so the marker now sits left of centre
	clip = c.ViewProjectionMatrix().Mul4x1(marker)
	assert.Less(t, clip.X()/clip.W(), float32(0))
	assert.Less(t, c.ViewMatrix().Mul4x1(marker).X(), float32(0))
}

func TestCamera_ProjectionMatrices(t *testing.T) {
	c := NewCamera(WithController(NewCameraController()), WithFov(1), WithAspect(2), WithNear(1), WithFar(10))

	assertMat4InDelta(t, mgl32.Perspective(1, 2, 1, 10), c.ProjectionMatrix(), 1e-6)
	assertMat4InDelta(t, mgl32.Ident4(), c.ProjectionMatrix().Mul4(c.InverseProjectionMatrix()), 1e-5)
	assertMat4InDelta(t, c.ProjectionMatrix().Mul4(c.ViewMatrix()), c.ViewProjectionMatrix(), 1e-6)

	c.SetFov(0.5)
	assert.Equal(t, float32(0.5), c.Fov())
	assertMat4InDelta(t, mgl32.Perspective(0.5, 2, 1, 10), c.ProjectionMatrix(), 1e-6)

	c.SetAspect(1)
	c.SetNear(0.5)
	c.SetFar(50)
	assertMat4InDelta(t, mgl32.Perspective(0.5, 1, 0.5, 50), c.ProjectionMatrix(), 1e-6)
}

func TestViewFromOrientation_Identity(t *testing.T) {
	view := ViewFromOrientation(mgl32.Vec3{1, 2, 3}, mgl32.QuatIdent())
	want := mgl32.Scale3D(1, 1, -1).Mul4(mgl32.Translate3D(-1, -2, -3))
	assertMat4InDelta(t, want, view, 1e-6)
}
