package viewport

import (
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/freecam/engine/camera"
)

func assertColor(t *testing.T, want, got wgpu.Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-5)
	assert.InDelta(t, want.G, got.G, 1e-5)
	assert.InDelta(t, want.B, got.B, 1e-5)
	assert.InDelta(t, want.A, got.A, 1e-5)
}

func orientation(yaw, pitch, roll float32) mgl32.Quat {
	cs := camera.NewCameraState(camera.WithInitialAngles(yaw, pitch, roll))
	return cs.LookQuaternion()
}

func TestHorizonTint(t *testing.T) {
	p := Palette{
		Sky:     wgpu.Color{R: 0, G: 0, B: 1, A: 1},
		Horizon: wgpu.Color{R: 1, G: 1, B: 1, A: 1},
		Ground:  wgpu.Color{R: 1, G: 0, B: 0, A: 1},
	}
	half := float32(math.Pi / 2)

	tests := []struct {
		name string
		q    mgl32.Quat
		want wgpu.Color
	}{
		{"level", mgl32.QuatIdent(), p.Horizon},
		{"level after yaw", orientation(2, 0, 0), p.Horizon},
		{"level with roll", orientation(0, 0, 1), p.Horizon},
		{"straight down", orientation(0, half, 0), p.Ground},
		{"straight up", orientation(0, -half, 0), p.Sky},
		{"half way down", orientation(0, float32(math.Pi/6), 0), wgpu.Color{R: 1, G: 0.5, B: 0.5, A: 1}},
		{"half way up", orientation(1, -float32(math.Pi/6), 0), wgpu.Color{R: 0.5, G: 0.5, B: 1, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColor(t, tt.want, HorizonTint(p, tt.q))
		})
	}
}

func TestDefaultPalette_Opaque(t *testing.T) {
	for _, c := range []wgpu.Color{DefaultPalette.Sky, DefaultPalette.Horizon, DefaultPalette.Ground} {
		assert.Equal(t, 1.0, c.A)
	}
}

func TestViewTint_MatchesHorizonTint(t *testing.T) {
	angles := [][3]float32{
		{0, 0, 0},
		{2, 0, 1},
		{0, float32(math.Pi / 6), 0},
		{1, -float32(math.Pi / 6), 0.4},
		{0, float32(math.Pi / 2), 0},
	}

	for _, a := range angles {
		cc := camera.NewCameraController(
			camera.WithPosition(4, 1, -3),
			camera.WithStateOptions(camera.WithInitialAngles(a[0], a[1], a[2])),
		)
		cam := camera.NewCamera(camera.WithController(cc))
		assertColor(t, HorizonTint(DefaultPalette, cc.Orientation()), ViewTint(DefaultPalette, cam.ViewMatrix()))
	}
}

func TestViewTint_Identity(t *testing.T) {
	assertColor(t, DefaultPalette.Horizon, ViewTint(DefaultPalette, mgl32.Ident4()))
}
