package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Carmen-Shannon/freecam/engine/camera"
)

// ConfigName is the file name Load looks for in the config directory.
const ConfigName = "freecam.cfg.json"

// CameraConfig holds the free camera tuning supplied by the host.
type CameraConfig struct {
	MovementSpeed      float32
	RotationSpeed      float32
	VerticalMultiplier float32
	HomeYaw            float32
	HomePitch          float32
	HomeRoll           float32
	StartPosition      [3]float32
	FovDegrees         float32
	Near               float32
	Far                float32
}

// InputConfig holds input mapping settings.
type InputConfig struct {
	MouseSensitivity float32
	BoostMultiplier  float32
	SpeedStep        float32
	Bindings         map[string]string
}

// EngineConfig holds engine loop, window and host-sync settings.
type EngineConfig struct {
	TickRate         float64
	RenderFrameLimit float64
	Profiling        bool
	ProfileInterval  time.Duration
	WindowTitle      string
	WindowWidth      int
	WindowHeight     int
	ViewportEnabled  bool
	SyncWorkers      int
}

// DefaultBindings maps input actions to key binding names understood by common.KeyCode.
var DefaultBindings = map[string]string{
	"forward":   "w",
	"backward":  "s",
	"left":      "a",
	"right":     "d",
	"up":        "space",
	"down":      "c",
	"rollLeft":  "q",
	"rollRight": "e",
	"yawLeft":   "left",
	"yawRight":  "right",
	"pitchUp":   "up",
	"pitchDown": "down",
	"boost":     "leftshift",
	"recenter":  "backspace",
	"faster":    "kpadd",
	"slower":    "kpsubtract",
}

// setDefaults registers every default value with viper.
func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./freecamlogs")

	viper.SetDefault("camera.movementSpeed", camera.DefaultMovementSpeed)
	viper.SetDefault("camera.rotationSpeed", camera.DefaultRotationSpeed)
	viper.SetDefault("camera.verticalMultiplier", camera.DefaultVerticalMultiplier)
	viper.SetDefault("camera.home.yaw", camera.InitialYawRadians)
	viper.SetDefault("camera.home.pitch", camera.InitialPitchRadians)
	viper.SetDefault("camera.home.roll", camera.InitialRollRadians)
	viper.SetDefault("camera.startPosition", []float64{0, 0, 0})
	viper.SetDefault("camera.fovDegrees", 60)
	viper.SetDefault("camera.near", 0.1)
	viper.SetDefault("camera.far", 1000)

	viper.SetDefault("input.mouseSensitivity", 0.25)
	viper.SetDefault("input.boostMultiplier", 4.0)
	viper.SetDefault("input.speedStep", 1.25)
	viper.SetDefault("input.bindings", DefaultBindings)

	viper.SetDefault("engine.tickRate", 60)
	viper.SetDefault("engine.renderFrameLimit", 0)
	viper.SetDefault("engine.profiling", false)
	viper.SetDefault("engine.profileInterval", "1s")

	viper.SetDefault("window.title", "freecam")
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)

	viper.SetDefault("viewport.enabled", true)
	viper.SetDefault("sync.workers", 2)
}

// Load reads configuration from the JSON file in configDir and sets default values.
//
// Parameters:
//   - configDir: the directory containing freecam.cfg.json
//
// Returns:
//   - error: error if the file cannot be read or parsed
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// LoadFile reads configuration from an explicit file path. The format is taken from the
// file extension (json, yaml, toml and the other formats viper supports).
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - error: error if the file cannot be read or parsed
func LoadFile(path string) error {
	setDefaults()

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return nil
}

// LoadDefaults registers default values without reading a file.
func LoadDefaults() {
	setDefaults()
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetCameraConfig returns the camera section. A malformed startPosition leaves the origin.
func GetCameraConfig() CameraConfig {
	cfg := CameraConfig{
		MovementSpeed:      float32(viper.GetFloat64("camera.movementSpeed")),
		RotationSpeed:      float32(viper.GetFloat64("camera.rotationSpeed")),
		VerticalMultiplier: float32(viper.GetFloat64("camera.verticalMultiplier")),
		HomeYaw:            float32(viper.GetFloat64("camera.home.yaw")),
		HomePitch:          float32(viper.GetFloat64("camera.home.pitch")),
		HomeRoll:           float32(viper.GetFloat64("camera.home.roll")),
		FovDegrees:         float32(viper.GetFloat64("camera.fovDegrees")),
		Near:               float32(viper.GetFloat64("camera.near")),
		Far:                float32(viper.GetFloat64("camera.far")),
	}
	var start []float32
	if err := viper.UnmarshalKey("camera.startPosition", &start); err == nil {
		copy(cfg.StartPosition[:], start)
	}
	return cfg
}

// GetInputConfig returns the input section. Bindings missing from the file fall back
// to DefaultBindings.
func GetInputConfig() InputConfig {
	cfg := InputConfig{
		MouseSensitivity: float32(viper.GetFloat64("input.mouseSensitivity")),
		BoostMultiplier:  float32(viper.GetFloat64("input.boostMultiplier")),
		SpeedStep:        float32(viper.GetFloat64("input.speedStep")),
		Bindings:         make(map[string]string, len(DefaultBindings)),
	}
	for action, key := range DefaultBindings {
		cfg.Bindings[action] = key
	}
	// viper lowercases map keys read from files
	actions := make(map[string]string, len(DefaultBindings))
	for action := range DefaultBindings {
		actions[strings.ToLower(action)] = action
	}
	for name, key := range viper.GetStringMapString("input.bindings") {
		action, ok := actions[strings.ToLower(name)]
		if !ok {
			action = name
		}
		cfg.Bindings[action] = strings.ToLower(key)
	}
	return cfg
}

// GetEngineConfig returns the engine, window, viewport and sync sections.
func GetEngineConfig() EngineConfig {
	return EngineConfig{
		TickRate:         viper.GetFloat64("engine.tickRate"),
		RenderFrameLimit: viper.GetFloat64("engine.renderFrameLimit"),
		Profiling:        viper.GetBool("engine.profiling"),
		ProfileInterval:  viper.GetDuration("engine.profileInterval"),
		WindowTitle:      viper.GetString("window.title"),
		WindowWidth:      viper.GetInt("window.width"),
		WindowHeight:     viper.GetInt("window.height"),
		ViewportEnabled:  viper.GetBool("viewport.enabled"),
		SyncWorkers:      viper.GetInt("sync.workers"),
	}
}

// StateOptions converts the camera section into CameraState builder options.
//
// Returns:
//   - []camera.CameraStateBuilderOption: options applying speeds, vertical multiplier and home angles
func (c CameraConfig) StateOptions() []camera.CameraStateBuilderOption {
	return []camera.CameraStateBuilderOption{
		camera.WithMovementSpeed(c.MovementSpeed),
		camera.WithRotationSpeed(c.RotationSpeed),
		camera.WithVerticalMultiplier(c.VerticalMultiplier),
		camera.WithHomeAngles(c.HomeYaw, c.HomePitch, c.HomeRoll),
		camera.WithInitialAngles(c.HomeYaw, c.HomePitch, c.HomeRoll),
	}
}
