package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/freecam/engine/camera"
	"github.com/Carmen-Shannon/freecam/engine/hostsync"
	"github.com/Carmen-Shannon/freecam/engine/input"
	"github.com/Carmen-Shannon/freecam/engine/viewport"
	"github.com/Carmen-Shannon/freecam/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfileInterval sets how often the profilers report.
//
// Parameters:
//   - interval: reporting interval (values <= 0 use 1 second)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfileInterval(interval time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.profileInterval = interval
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickDuration(fps)
	}
}

// WithWindow sets the window providing input events and the render surface.
// Without a window the engine runs headless until Quit is called.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithViewport sets the viewport presented by the render loop.
//
// Parameters:
//   - v: the viewport
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithViewport(v viewport.Viewport) EngineBuilderOption {
	return func(e *engine) {
		e.viewport = v
	}
}

// WithCamera sets the perspective camera. A camera without a controller is attached to
// the engine's controller.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithController sets the camera controller stepped every tick.
//
// Parameters:
//   - c: the controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(c camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = c
	}
}

// WithInputMapper sets the mapper applied to the camera state at the start of every tick.
// When a window is also set, its input events are routed to the mapper.
//
// Parameters:
//   - m: the input mapper
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInputMapper(m input.Mapper) EngineBuilderOption {
	return func(e *engine) {
		e.mapper = m
	}
}

// WithDispatcher sets the host-sync dispatcher receiving every step.
// The engine closes the dispatcher when Run returns.
//
// Parameters:
//   - d: the dispatcher
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDispatcher(d hostsync.Dispatcher) EngineBuilderOption {
	return func(e *engine) {
		e.dispatcher = d
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}

// WithLogger sets the engine logger. It is also handed to the default controller and the profilers.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger zerolog.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = logger
	}
}
