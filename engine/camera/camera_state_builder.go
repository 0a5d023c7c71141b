package camera

import (
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/freecam/common"
)

// CameraStateBuilderOption is a functional option for configuring a CameraState.
type CameraStateBuilderOption func(*cameraStateImpl)

// WithMovementSpeed sets the movement speed scale factor.
//
// Parameters:
//   - speed: multiplier applied to every movement amount
//
// Returns:
//   - CameraStateBuilderOption: functional option to set the movement speed
func WithMovementSpeed(speed float32) CameraStateBuilderOption {
	return func(cs *cameraStateImpl) {
		cs.movementSpeed = speed
	}
}

// WithRotationSpeed sets the rotation speed scale factor.
//
// Parameters:
//   - speed: radians per unit of rotation input
//
// Returns:
//   - CameraStateBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(speed float32) CameraStateBuilderOption {
	return func(cs *cameraStateImpl) {
		cs.rotationSpeed = speed
	}
}

// WithVerticalMultiplier sets the factor applied to MoveUp amounts.
//
// Parameters:
//   - multiplier: vertical sensitivity relative to horizontal movement
//
// Returns:
//   - CameraStateBuilderOption: functional option to set the vertical multiplier
func WithVerticalMultiplier(multiplier float32) CameraStateBuilderOption {
	return func(cs *cameraStateImpl) {
		cs.verticalMultiplier = multiplier
	}
}

// WithHomeAngles sets the orientation restored by ResetAngles.
//
// Parameters:
//   - yaw, pitch, roll: home angles in radians
//
// Returns:
//   - CameraStateBuilderOption: functional option to set the home orientation
func WithHomeAngles(yaw, pitch, roll float32) CameraStateBuilderOption {
	return func(cs *cameraStateImpl) {
		cs.homeYaw = yaw
		cs.homePitch = pitch
		cs.homeRoll = roll
	}
}

// WithInitialAngles sets the starting orientation.
//
// Parameters:
//   - yaw, pitch, roll: angles in radians, normalized into [0, 2π)
//
// Returns:
//   - CameraStateBuilderOption: functional option to set the starting orientation
func WithInitialAngles(yaw, pitch, roll float32) CameraStateBuilderOption {
	return func(cs *cameraStateImpl) {
		cs.yaw = common.NormalizeAngle(yaw)
		cs.pitch = common.NormalizeAngle(pitch)
		cs.roll = common.NormalizeAngle(roll)
	}
}

// WithLogger sets the logger used for diagnostics.
//
// Parameters:
//   - logger: the zerolog logger to write to
//
// Returns:
//   - CameraStateBuilderOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) CameraStateBuilderOption {
	return func(cs *cameraStateImpl) {
		cs.logger = logger
	}
}
