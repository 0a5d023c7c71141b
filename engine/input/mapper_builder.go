package input

import "github.com/rs/zerolog"

// MapperBuilderOption is a functional option for configuring a Mapper.
type MapperBuilderOption func(*mapperImpl)

// WithBindings replaces the key bindings. Actions absent from bindings are unbound.
//
// Parameters:
//   - bindings: action to key code
//
// Returns:
//   - MapperBuilderOption: functional option to set the bindings
func WithBindings(bindings Bindings) MapperBuilderOption {
	return func(m *mapperImpl) {
		m.bindings = make(Bindings, len(bindings))
		for a, code := range bindings {
			m.bindings[a] = code
		}
	}
}

// WithTickRate sets the nominal tick rate. At this rate a held key contributes an
// amount of 1 per step; other rates scale the amount by deltaTime so motion per second
// stays the same. A rate of 0 disables scaling.
//
// Parameters:
//   - ticksPerSecond: the nominal engine tick rate
//
// Returns:
//   - MapperBuilderOption: functional option to set the tick rate
func WithTickRate(ticksPerSecond float32) MapperBuilderOption {
	return func(m *mapperImpl) {
		m.tickRate = ticksPerSecond
	}
}

// WithMouseSensitivity sets the rotation amount per pixel of mouse-look motion.
func WithMouseSensitivity(sensitivity float32) MapperBuilderOption {
	return func(m *mapperImpl) {
		m.mouseSensitivity = sensitivity
	}
}

// WithBoostMultiplier sets the movement factor applied while the boost key is held.
func WithBoostMultiplier(multiplier float32) MapperBuilderOption {
	return func(m *mapperImpl) {
		m.boostMultiplier = multiplier
	}
}

// WithSpeedStep sets the factor applied to the movement speed per faster/slower notch.
func WithSpeedStep(step float32) MapperBuilderOption {
	return func(m *mapperImpl) {
		m.speedStep = step
	}
}

// WithMapperLogger sets the logger used for diagnostics.
func WithMapperLogger(logger zerolog.Logger) MapperBuilderOption {
	return func(m *mapperImpl) {
		m.logger = logger
	}
}
