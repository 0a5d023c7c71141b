package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/freecam/common"
	"github.com/Carmen-Shannon/freecam/engine/camera"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(body), 0644))
	return dir
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"camera": {
			"movementSpeed": 2.5,
			"rotationSpeed": 0.05,
			"verticalMultiplier": 1,
			"home": { "yaw": 1.5, "pitch": 0.25, "roll": 0 },
			"startPosition": [1, 2, 3]
		},
		"window": { "width": 800 }
	}`)

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, 800, viper.GetInt("window.width"))

	cfg := GetCameraConfig()
	assert.InDelta(t, 2.5, cfg.MovementSpeed, 1e-6)
	assert.InDelta(t, 0.05, cfg.RotationSpeed, 1e-6)
	assert.InDelta(t, 1.0, cfg.VerticalMultiplier, 1e-6)
	assert.InDelta(t, 1.5, cfg.HomeYaw, 1e-6)
	assert.InDelta(t, 0.25, cfg.HomePitch, 1e-6)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.StartPosition)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{}`)
	require.NoError(t, Load(dir))

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./freecamlogs", viper.GetString("logsDir"))

	cam := GetCameraConfig()
	assert.InDelta(t, camera.DefaultMovementSpeed, cam.MovementSpeed, 1e-6)
	assert.InDelta(t, camera.DefaultRotationSpeed, cam.RotationSpeed, 1e-6)
	assert.InDelta(t, camera.DefaultVerticalMultiplier, cam.VerticalMultiplier, 1e-6)
	assert.Equal(t, [3]float32{}, cam.StartPosition)
	assert.InDelta(t, 60.0, cam.FovDegrees, 1e-6)
	assert.InDelta(t, 0.1, cam.Near, 1e-6)
	assert.InDelta(t, 1000.0, cam.Far, 1e-6)

	eng := GetEngineConfig()
	assert.Equal(t, 60.0, eng.TickRate)
	assert.Equal(t, 0.0, eng.RenderFrameLimit)
	assert.False(t, eng.Profiling)
	assert.Equal(t, time.Second, eng.ProfileInterval)
	assert.Equal(t, "freecam", eng.WindowTitle)
	assert.Equal(t, 1280, eng.WindowWidth)
	assert.Equal(t, 720, eng.WindowHeight)
	assert.True(t, eng.ViewportEnabled)
	assert.Equal(t, 2, eng.SyncWorkers)

	in := GetInputConfig()
	assert.InDelta(t, 0.25, in.MouseSensitivity, 1e-6)
	assert.InDelta(t, 4.0, in.BoostMultiplier, 1e-6)
	assert.InDelta(t, 1.25, in.SpeedStep, 1e-6)
	assert.Equal(t, DefaultBindings, in.Bindings)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{ "camera": `)
	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadFile_YAML(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "freecam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  movementSpeed: 3\nsync:\n  workers: 5\n"), 0644))

	require.NoError(t, LoadFile(path))
	assert.InDelta(t, 3.0, GetCameraConfig().MovementSpeed, 1e-6)
	assert.Equal(t, 5, GetEngineConfig().SyncWorkers)
	assert.InDelta(t, camera.DefaultRotationSpeed, GetCameraConfig().RotationSpeed, 1e-6)
}

func TestGetInputConfig_BindingOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"input": { "bindings": { "forward": "Up", "rollLeft": "z" } }
	}`)
	require.NoError(t, Load(dir))

	in := GetInputConfig()
	assert.Equal(t, "up", in.Bindings["forward"])
	assert.Equal(t, "z", in.Bindings["rollLeft"])
	assert.Equal(t, "s", in.Bindings["backward"])
	assert.Len(t, in.Bindings, len(DefaultBindings))
}

func TestGetString(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", "testValue")
	assert.Equal(t, "testValue", GetString("testKey"))
}

func TestCameraConfig_StateOptions(t *testing.T) {
	cfg := CameraConfig{
		MovementSpeed:      2,
		RotationSpeed:      0.5,
		VerticalMultiplier: 0.75,
		HomeYaw:            1,
		HomePitch:          -0.5,
		HomeRoll:           0.25,
	}

	cs := camera.NewCameraState(cfg.StateOptions()...)

	assert.Equal(t, float32(2), cs.MovementSpeed())
	assert.Equal(t, float32(0.5), cs.RotationSpeed())
	assert.Equal(t, float32(0.75), cs.VerticalMultiplier())

	yaw, pitch, roll := cs.Angles()
	assert.InDelta(t, 1.0, yaw, 1e-6)
	assert.InDelta(t, float64(common.TwoPi)-0.5, pitch, 1e-5)
	assert.InDelta(t, 0.25, roll, 1e-6)

	hy, hp, hr := cs.HomeAngles()
	assert.Equal(t, float32(1), hy)
	assert.Equal(t, float32(-0.5), hp)
	assert.Equal(t, float32(0.25), hr)
}
