package camera

// Default tuning for a CameraState. Hosts normally override these through configuration.
const (
	// DefaultMovementSpeed scales every movement amount.
	DefaultMovementSpeed float32 = 0.1
	// DefaultRotationSpeed scales every rotation amount, in radians per unit of input.
	DefaultRotationSpeed float32 = 0.01
	// DefaultVerticalMultiplier scales MoveUp relative to horizontal movement.
	DefaultVerticalMultiplier float32 = 0.5

	// InitialYawRadians, InitialPitchRadians and InitialRollRadians form the home orientation
	// restored by ResetAngles.
	InitialYawRadians   float32 = 0
	InitialPitchRadians float32 = 0
	InitialRollRadians  float32 = 0
)
