package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/Carmen-Shannon/freecam/common"
	"github.com/Carmen-Shannon/freecam/engine"
	"github.com/Carmen-Shannon/freecam/engine/camera"
	"github.com/Carmen-Shannon/freecam/engine/config"
	"github.com/Carmen-Shannon/freecam/engine/hostsync"
	"github.com/Carmen-Shannon/freecam/engine/input"
	"github.com/Carmen-Shannon/freecam/engine/logging"
	"github.com/Carmen-Shannon/freecam/engine/viewport"
	"github.com/Carmen-Shannon/freecam/engine/window"
)

const appName = "freecam"

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.ConfigName)
	configFile := flag.String("config-file", "", "explicit config file (json, yaml, toml); overrides -config")
	headless := flag.Bool("headless", false, "run without a window, stepping the camera until interrupted")
	flag.Parse()

	if err := run(*configDir, *configFile, *headless); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(configDir, configFile string, headless bool) error {
	configErr, err := loadConfig(configDir, configFile)
	if err != nil {
		return err
	}

	logger, closeLog := setupLogging()
	defer closeLog()

	if configErr != nil {
		logger.Warn().Err(configErr).Msg("config file not found, using defaults")
	}

	camCfg := config.GetCameraConfig()
	inCfg := config.GetInputConfig()
	engCfg := config.GetEngineConfig()

	bindings, err := input.ResolveBindings(inCfg.Bindings)
	if err != nil {
		return err
	}

	stateOptions := append(camCfg.StateOptions(), camera.WithLogger(logging.Component(logger, "camera")))
	controller := camera.NewCameraController(
		camera.WithPosition(camCfg.StartPosition[0], camCfg.StartPosition[1], camCfg.StartPosition[2]),
		camera.WithStateOptions(stateOptions...),
		camera.WithControllerLogger(logging.Component(logger, "controller")),
	)

	mapper := input.NewMapper(
		input.WithBindings(bindings),
		input.WithTickRate(float32(engCfg.TickRate)),
		input.WithMouseSensitivity(inCfg.MouseSensitivity),
		input.WithBoostMultiplier(inCfg.BoostMultiplier),
		input.WithSpeedStep(inCfg.SpeedStep),
		input.WithMapperLogger(logging.Component(logger, "input")),
	)

	syncLogger := logging.Component(logger, "hostsync")
	dispatcher := hostsync.NewDispatcher(
		hostsync.WithWorkers(engCfg.SyncWorkers),
		hostsync.WithDispatcherLogger(syncLogger),
		// allow 5 entries per 10 seconds, then 1 in 100
		hostsync.WithSinks(hostsync.NewLogSink(syncLogger, 5, 10*time.Second, 100)),
	)

	cam := camera.NewCamera(
		camera.WithFov(common.DegToRad(common.Coalesce(camCfg.FovDegrees, 60))),
		camera.WithNear(common.Coalesce(camCfg.Near, 0.1)),
		camera.WithFar(common.Coalesce(camCfg.Far, 1000)),
		camera.WithController(controller),
	)

	options := []engine.EngineBuilderOption{
		engine.WithLogger(logging.Component(logger, "engine")),
		engine.WithTickRate(engCfg.TickRate),
		engine.WithRenderFrameLimit(engCfg.RenderFrameLimit),
		engine.WithProfiling(engCfg.Profiling),
		engine.WithProfileInterval(engCfg.ProfileInterval),
		engine.WithController(controller),
		engine.WithCamera(cam),
		engine.WithInputMapper(mapper),
		engine.WithDispatcher(dispatcher),
	}

	if !headless {
		win := window.NewWindow(
			window.WithTitle(common.Coalesce(engCfg.WindowTitle, appName)),
			window.WithWidth(engCfg.WindowWidth),
			window.WithHeight(engCfg.WindowHeight),
			window.WithMaxWidth(max(engCfg.WindowWidth, 3840)),
			window.WithMaxHeight(max(engCfg.WindowHeight, 2160)),
			window.WithLogger(logging.Component(logger, "window")),
		)
		options = append(options, engine.WithWindow(win))
		if win.Height() > 0 {
			cam.SetAspect(float32(win.Width()) / float32(win.Height()))
		}

		if engCfg.ViewportEnabled {
			vp, err := viewport.NewViewport(
				win.SurfaceDescriptor(),
				win.Width(),
				win.Height(),
				viewport.WithViewportLogger(logging.Component(logger, "viewport")),
			)
			if err != nil {
				logger.Warn().Err(err).Msg("viewport unavailable, running without presentation")
			} else {
				options = append(options, engine.WithViewport(vp))
			}
		}
	}

	eng := engine.NewEngine(options...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		eng.Quit()
	}()

	eng.Run()
	return nil
}

// loadConfig reads configFile if set, otherwise freecam.cfg.json from configDir.
// A missing file loads the defaults and is reported through the first return value.
// Any other read or parse failure is returned as the second.
func loadConfig(configDir, configFile string) (missing error, err error) {
	if configFile != "" {
		err = config.LoadFile(configFile)
	} else {
		err = config.Load(configDir)
	}
	if err == nil {
		return nil, nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		config.LoadDefaults()
		return err, nil
	}
	return nil, err
}

// setupLogging builds the root logger from the logLevel and logsDir settings.
// The returned func closes the log file.
func setupLogging() (zerolog.Logger, func()) {
	level := logging.ParseLevel(config.GetString("logLevel"))
	zerolog.SetGlobalLevel(level)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	var file io.Writer
	closeFn := func() {}
	f, err := logging.OpenLogFile(config.GetString("logsDir"), appName, time.Now())
	if err == nil {
		file = f
		closeFn = func() { _ = f.Close() }
	}

	logger := logging.New(level, os.Stdout, file)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	logger.Info().Str("loglevel", level.String()).Msg("logging set up")
	return logger, closeFn
}
