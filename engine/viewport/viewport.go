package viewport

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/freecam/engine/camera"
)

// Viewport presents the camera view to a window surface.
// Each frame is a single clear pass colored by ViewTint from the camera's view matrix, so
// orientation changes are visible without any scene geometry.
type Viewport interface {
	// Resize reconfigures the surface. The camera aspect ratio follows on the next Render.
	// Zero-sized (minimized) windows are ignored.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	Resize(width, height int)

	// Render draws one frame for the camera's current orientation.
	//
	// Parameters:
	//   - cam: the camera to present
	//
	// Returns:
	//   - error: error if the surface texture or command encoding fails
	Render(cam camera.Camera) error

	// Close releases the GPU objects.
	Close()
}

type viewportImpl struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	width, height int
	configured    bool
	presentMode   wgpu.PresentMode
	palette       Palette

	logger zerolog.Logger
}

var _ Viewport = &viewportImpl{}

// NewViewport creates the GPU device for the given surface and configures it.
//
// Parameters:
//   - surfaceDescriptor: platform surface, usually window.Window.SurfaceDescriptor()
//   - width, height: initial framebuffer size in pixels
//   - options: functional options to configure the viewport
//
// Returns:
//   - Viewport: the viewport
//   - error: error if no adapter or device is available
func NewViewport(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...ViewportBuilderOption) (Viewport, error) {
	if surfaceDescriptor == nil {
		return nil, fmt.Errorf("viewport requires a surface descriptor")
	}
	runtime.LockOSThread()

	v := &viewportImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		palette:     DefaultPalette,
		logger:      zerolog.Nop(),
	}
	for _, option := range options {
		option(v)
	}

	v.surface = v.instance.CreateSurface(surfaceDescriptor)

	a, err := v.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: v.surface,
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	v.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Viewport Device",
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	v.device = d
	v.queue = d.GetQueue()

	v.Resize(width, height)
	v.logger.Info().Int("width", width).Int("height", height).Msg("viewport ready")
	return v, nil
}

func (v *viewportImpl) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	v.configureSurface(width, height)
}

// configureSurface applies the first supported format and alpha mode.
// Caller must hold the mutex.
func (v *viewportImpl) configureSurface(width, height int) {
	capabilities := v.surface.GetCapabilities(v.adapter)
	v.surface.Configure(v.adapter, v.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      capabilities.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: v.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	v.width, v.height = width, height
	v.configured = true
}

func (v *viewportImpl) Render(cam camera.Camera) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.configured {
		return nil
	}

	if aspect := float32(v.width) / float32(v.height); cam.Aspect() != aspect {
		cam.SetAspect(aspect)
	}
	cam.Update()
	clearColor := ViewTint(v.palette, cam.ViewMatrix())

	surfaceTexture, err := v.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("failed to acquire surface texture: %w", err)
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("failed to create surface view: %w", err)
	}
	defer view.Release()

	encoder, err := v.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("failed to create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearColor,
			},
		},
	})
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("failed to finish command encoder: %w", err)
	}
	defer commandBuffer.Release()

	v.queue.Submit(commandBuffer)
	v.surface.Present()
	return nil
}

func (v *viewportImpl) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.queue != nil {
		v.queue.Release()
		v.queue = nil
	}
	if v.device != nil {
		v.device.Release()
		v.device = nil
	}
	if v.adapter != nil {
		v.adapter.Release()
		v.adapter = nil
	}
	if v.surface != nil {
		v.surface.Release()
		v.surface = nil
	}
	if v.instance != nil {
		v.instance.Release()
		v.instance = nil
	}
	v.configured = false
}
