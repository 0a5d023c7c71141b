package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/freecam/engine/camera"
	"github.com/Carmen-Shannon/freecam/engine/hostsync"
	"github.com/Carmen-Shannon/freecam/engine/input"
	"github.com/Carmen-Shannon/freecam/engine/profiler"
	"github.com/Carmen-Shannon/freecam/engine/viewport"
	"github.com/Carmen-Shannon/freecam/engine/window"
)

// engine implements the Engine interface.
// Coordinates the tick, render, and window threads around one free camera.
type engine struct {
	mu *sync.Mutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	viewport viewport.Viewport

	camera     camera.Camera
	controller camera.CameraController
	mapper     input.Mapper
	dispatcher hostsync.Dispatcher
	steps      uint64

	tickProfiler     *profiler.Profiler
	renderProfiler   *profiler.Profiler
	profileInterval  time.Duration
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	logger zerolog.Logger
}

// Engine is the main entry point for the free camera.
// It runs a fixed-rate tick loop that applies input, solves one camera step and hands the
// step to host sync, plus a render loop that presents the camera through the viewport.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the perspective camera presented by the render loop.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Controller returns the camera controller stepped by the tick loop.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called each tick after input is applied and
	// before the camera step is solved. Use it to drive the CameraState from other sources.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame after the viewport
	// has presented.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Tick runs one engine step synchronously: input, tick callback, camera step, host sync.
	// The tick loop calls this; it is exported for hosts that drive stepping themselves.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous step
	//
	// Returns:
	//   - camera.Snapshot: the completed step
	Tick(deltaTime float32) camera.Snapshot

	// Steps returns the number of completed steps.
	//
	// Returns:
	//   - uint64: completed step count
	Steps() uint64

	// Run starts the engine loops and blocks until the window closes or Quit is called.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Without WithController a default controller is created; without WithCamera a default
// perspective camera is attached to the controller.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:              &sync.Mutex{},
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		running:         false,
		wg:              sync.WaitGroup{},
		profileInterval: time.Second,
		engineTickRate:  time.Second / 60,
		logger:          zerolog.Nop(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.controller == nil {
		e.controller = camera.NewCameraController(camera.WithControllerLogger(e.logger))
	}
	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithController(e.controller))
	} else if e.camera.Controller() == nil {
		e.camera.SetController(e.controller)
	}

	e.tickProfiler = profiler.NewProfiler(e.logger, "tick", e.profileInterval)
	e.renderProfiler = profiler.NewProfiler(e.logger, "render", e.profileInterval)

	if e.window != nil {
		e.bindWindow()
	}

	return e
}

// bindWindow routes window events to the viewport and input mapper.
func (e *engine) bindWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		if e.viewport != nil {
			e.viewport.Resize(width, height)
		}
		if height > 0 {
			e.camera.SetAspect(float32(width) / float32(height))
		}
	})

	if e.mapper == nil {
		return
	}
	e.window.SetKeyDownCallback(e.mapper.KeyDown)
	e.window.SetKeyUpCallback(e.mapper.KeyUp)
	e.window.SetLookStartCallback(e.mapper.LookStart)
	e.window.SetLookEndCallback(e.mapper.LookEnd)
	e.window.SetMouseMoveCallback(e.mapper.MouseMove)
	e.window.SetScrollCallback(e.mapper.Scroll)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Steps() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.steps
}

func (e *engine) Tick(deltaTime float32) camera.Snapshot {
	if e.mapper != nil {
		e.mapper.Apply(e.controller.State(), deltaTime)
	}
	e.mu.Lock()
	tickCallback := e.tickCallback
	e.mu.Unlock()
	if tickCallback != nil {
		tickCallback(deltaTime)
	}

	snap := e.controller.Step()

	e.mu.Lock()
	e.steps++
	step := e.steps
	e.mu.Unlock()

	if e.dispatcher != nil {
		// the dispatcher logs sink failures
		_ = e.dispatcher.Dispatch(step, snap)
	}
	return snap
}

func (e *engine) Run() {
	e.logger.Info().
		Dur("tickRate", e.tickRate()).
		Bool("window", e.window != nil).
		Bool("viewport", e.viewport != nil).
		Msg("engine starting")

	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()

	if e.viewport != nil {
		e.viewport.Close()
	}
	if e.window != nil {
		if err := e.window.Close(); err != nil {
			e.logger.Warn().Err(err).Msg("window close failed")
		}
	}
	if e.dispatcher != nil {
		e.dispatcher.Close()
	}
	e.logger.Info().Uint64("steps", e.Steps()).Msg("engine stopped")
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// handle launches the tick, render, and quit goroutines.
// The render loop only runs when there is something to render.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()

	if e.viewport != nil || e.renderCallback != nil {
		e.wg.Add(1)
		go e.handleRender()
	}
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Runs Tick at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickRate())
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.Tick(dt)

			if e.profilingEnabled.Load() {
				e.tickProfiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
			e.logger.Debug().Dur("tickRate", newRate).Msg("tick rate changed")
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	// Recover from panics inside the render goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("render goroutine recovered from panic")
			e.signalQuit()
		}
	}()

	lastRender := time.Now()
	var renderFailures int

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.viewport != nil {
				if err := e.viewport.Render(e.camera); err != nil {
					renderFailures++
					// log the first failure and then every 100th
					if renderFailures%100 == 1 {
						e.logger.Warn().Err(err).Int("failures", renderFailures).Msg("viewport render failed")
					}
				}
			} else {
				e.camera.Update()
			}

			e.mu.Lock()
			renderCallback := e.renderCallback
			e.mu.Unlock()
			if renderCallback != nil {
				renderCallback(dt)
			}

			if e.profilingEnabled.Load() {
				e.renderProfiler.Tick()
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// tickRate returns the current tick interval.
func (e *engine) tickRate() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engineTickRate
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
// The mutex serializes senders so the one-slot channel never blocks.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickDuration(fps)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

// tickDuration converts a tick rate to a ticker period, using 60Hz for rates <= 0.
func tickDuration(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// frameDuration converts a frame cap to a minimum frame time; 0 means uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
