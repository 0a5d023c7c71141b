package viewport

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/freecam/engine/camera"
)

// Palette holds the clear colors blended by HorizonTint.
type Palette struct {
	Sky     wgpu.Color
	Horizon wgpu.Color
	Ground  wgpu.Color
}

// DefaultPalette is a pale blue sky over brown ground.
var DefaultPalette = Palette{
	Sky:     wgpu.Color{R: 0.30, G: 0.55, B: 0.90, A: 1},
	Horizon: wgpu.Color{R: 0.85, G: 0.85, B: 0.80, A: 1},
	Ground:  wgpu.Color{R: 0.25, G: 0.18, B: 0.10, A: 1},
}

// HorizonTint picks the clear color for a look orientation. Looking level gives the
// horizon color; looking straight up or down gives the sky or ground color, with a
// linear blend in between on the world-space height of the forward vector.
//
// Parameters:
//   - p: the palette to blend
//   - orientation: the camera look quaternion
//
// Returns:
//   - wgpu.Color: the clear color
func HorizonTint(p Palette, orientation mgl32.Quat) wgpu.Color {
	_, forward := camera.LocalAxes(orientation)
	return tintForHeight(p, forward.Y())
}

// ViewTint is HorizonTint for a world-to-view matrix such as Camera.ViewMatrix.
// The view maps forward to -z, so the forward height is the negated y entry of the third row.
//
// Parameters:
//   - p: the palette to blend
//   - view: the camera view matrix
//
// Returns:
//   - wgpu.Color: the clear color
func ViewTint(p Palette, view mgl32.Mat4) wgpu.Color {
	return tintForHeight(p, -view.At(2, 1))
}

func tintForHeight(p Palette, height float32) wgpu.Color {
	h := float64(mgl32.Clamp(height, -1, 1))
	if h >= 0 {
		return lerpColor(p.Horizon, p.Sky, h)
	}
	return lerpColor(p.Horizon, p.Ground, -h)
}

func lerpColor(a, b wgpu.Color, t float64) wgpu.Color {
	return wgpu.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
