package input

import (
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/freecam/engine/camera"
)

// Mapper turns raw window input into per-step CameraState calls.
//
// Window callbacks record key and mouse state as events arrive. Apply runs once per
// engine tick, before the step is solved, and issues at most one call per camera axis.
// Held keys produce continuous input scaled by the tick delta; recenter and speed
// changes fire once per key press.
type Mapper interface {
	// KeyDown records a key press. Repeats of an already held key are ignored.
	//
	// Parameters:
	//   - keyCode: the GLFW key code
	KeyDown(keyCode uint32)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - keyCode: the GLFW key code
	KeyUp(keyCode uint32)

	// LookStart begins mouse-look at the given cursor position.
	//
	// Parameters:
	//   - x, y: cursor position in window pixels
	LookStart(x, y int32)

	// LookEnd stops mouse-look. Motion already accumulated is still applied.
	LookEnd()

	// MouseMove records cursor motion. Motion only counts while mouse-look is active.
	//
	// Parameters:
	//   - x, y: cursor position in window pixels
	MouseMove(x, y int32)

	// Scroll records wheel motion; each notch scales the movement speed by the speed step.
	//
	// Parameters:
	//   - delta: wheel delta, positive away from the user
	Scroll(delta float32)

	// Apply issues the step's rotation and movement calls on state and clears one-shot input.
	//
	// Parameters:
	//   - state: the camera state to drive
	//   - deltaTime: seconds since the previous tick
	//
	// Returns:
	//   - bool: true if any call was made on state
	Apply(state camera.CameraState, deltaTime float32) bool

	// Bindings returns a copy of the active key bindings.
	//
	// Returns:
	//   - Bindings: action to key code
	Bindings() Bindings
}

type mapperImpl struct {
	mu *sync.Mutex

	bindings Bindings
	actions  map[uint32][]Action

	held    map[Action]bool
	pressed map[Action]bool

	looking      bool
	lastX, lastY int32
	mouseDX      float32
	mouseDY      float32
	scroll       float32

	tickRate         float32
	mouseSensitivity float32
	boostMultiplier  float32
	speedStep        float32

	logger zerolog.Logger
}

var _ Mapper = &mapperImpl{}

// NewMapper creates a Mapper with the default bindings at a nominal 60 ticks per second.
//
// Parameters:
//   - options: functional options to configure the mapper
//
// Returns:
//   - Mapper: the newly created mapper
func NewMapper(options ...MapperBuilderOption) Mapper {
	m := &mapperImpl{
		mu:               &sync.Mutex{},
		bindings:         DefaultBindings(),
		held:             make(map[Action]bool),
		pressed:          make(map[Action]bool),
		tickRate:         60,
		mouseSensitivity: 0.25,
		boostMultiplier:  4,
		speedStep:        1.25,
		logger:           zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	m.actions = indexBindings(m.bindings)
	return m
}

// indexBindings inverts bindings so a key can trigger several actions.
func indexBindings(b Bindings) map[uint32][]Action {
	out := make(map[uint32][]Action, len(b))
	for _, a := range Actions {
		code, ok := b[a]
		if !ok {
			continue
		}
		out[code] = append(out[code], a)
	}
	return out
}

func (m *mapperImpl) KeyDown(keyCode uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.actions[keyCode] {
		if !m.held[a] {
			m.pressed[a] = true
		}
		m.held[a] = true
	}
}

func (m *mapperImpl) KeyUp(keyCode uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.actions[keyCode] {
		m.held[a] = false
	}
}

func (m *mapperImpl) LookStart(x, y int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.looking = true
	m.lastX, m.lastY = x, y
}

func (m *mapperImpl) LookEnd() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.looking = false
}

func (m *mapperImpl) MouseMove(x, y int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.looking {
		return
	}
	m.mouseDX += float32(x - m.lastX)
	m.mouseDY += float32(y - m.lastY)
	m.lastX, m.lastY = x, y
}

func (m *mapperImpl) Scroll(delta float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scroll += delta
}

func (m *mapperImpl) Bindings() Bindings {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(Bindings, len(m.bindings))
	for a, code := range m.bindings {
		out[a] = code
	}
	return out
}

func (m *mapperImpl) Apply(state camera.CameraState, deltaTime float32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	scale := float32(1)
	if m.tickRate > 0 && deltaTime > 0 {
		scale = deltaTime * m.tickRate
	}
	moveScale := scale
	if m.held[ActionBoost] {
		moveScale *= m.boostMultiplier
	}

	applied := false

	if m.pressed[ActionRecenter] {
		state.ResetAngles()
		applied = true
	}
	if notches := m.speedNotches(); notches != 0 {
		factor := float32(math.Pow(float64(m.speedStep), float64(notches)))
		speed := state.MovementSpeed() * factor
		state.SetMovementSpeed(speed)
		m.logger.Debug().Float32("movementSpeed", speed).Msg("movement speed changed")
		applied = true
	}

	if v := m.axis(ActionPitchUp, ActionPitchDown)*scale + m.mouseDY*m.mouseSensitivity; v != 0 {
		state.Pitch(v)
		applied = true
	}
	if v := m.axis(ActionYawLeft, ActionYawRight)*scale + m.mouseDX*m.mouseSensitivity; v != 0 {
		state.Yaw(v)
		applied = true
	}
	if v := m.axis(ActionRollLeft, ActionRollRight) * scale; v != 0 {
		state.Roll(v)
		applied = true
	}

	if v := m.axis(ActionBackward, ActionForward) * moveScale; v != 0 {
		state.MoveForward(v)
		applied = true
	}
	if v := m.axis(ActionLeft, ActionRight) * moveScale; v != 0 {
		state.MoveRight(v)
		applied = true
	}
	if v := m.axis(ActionDown, ActionUp) * moveScale; v != 0 {
		state.MoveUp(v)
		applied = true
	}

	m.mouseDX, m.mouseDY = 0, 0
	m.scroll = 0
	clear(m.pressed)
	return applied
}

// axis returns +1 if only pos is held, -1 if only neg is held, else 0.
// Caller must hold the mutex.
func (m *mapperImpl) axis(neg, pos Action) float32 {
	var v float32
	if m.held[pos] {
		v++
	}
	if m.held[neg] {
		v--
	}
	return v
}

// speedNotches combines speed key presses and wheel motion into a signed notch count.
// Caller must hold the mutex.
func (m *mapperImpl) speedNotches() float32 {
	n := m.scroll
	if m.pressed[ActionFaster] {
		n++
	}
	if m.pressed[ActionSlower] {
		n--
	}
	return n
}
