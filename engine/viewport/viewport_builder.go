package viewport

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/rs/zerolog"
)

// ViewportBuilderOption is a functional option for configuring a Viewport.
type ViewportBuilderOption func(*viewportImpl)

// WithVSync selects FIFO presentation when enabled and immediate presentation otherwise.
//
// Parameters:
//   - enabled: true to wait for vertical blank
//
// Returns:
//   - ViewportBuilderOption: functional option to set the present mode
func WithVSync(enabled bool) ViewportBuilderOption {
	return func(v *viewportImpl) {
		if enabled {
			v.presentMode = wgpu.PresentModeFifo
		} else {
			v.presentMode = wgpu.PresentModeImmediate
		}
	}
}

// WithPalette sets the sky, horizon and ground clear colors.
func WithPalette(p Palette) ViewportBuilderOption {
	return func(v *viewportImpl) {
		v.palette = p
	}
}

// WithViewportLogger sets the logger.
func WithViewportLogger(logger zerolog.Logger) ViewportBuilderOption {
	return func(v *viewportImpl) {
		v.logger = logger
	}
}
