package engine

import (
	"time"

	"github.com/goalves/korangar/engine/camera"
	"github.com/goalves/korangar/engine/input"
	"github.com/goalves/korangar/engine/settings"
	"github.com/goalves/korangar/engine/ui"
	"github.com/goalves/korangar/engine/window"
	"github.com/goalves/korangar/engine/world"
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
		e.profilingEnabled = enabled
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
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a pre-configured window for the engine to use.
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

// WithPlayerCamera sets a pre-configured player camera.
//
// Parameters:
//   - cam: the follow camera to use during normal play
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPlayerCamera(cam camera.PlayerCamera) EngineBuilderOption {
	return func(e *engine) {
		e.playerCamera = cam
	}
}

// WithDebugCamera sets a pre-configured free-fly debug camera.
//
// Parameters:
//   - cam: the debug camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDebugCamera(cam camera.FlyCamera) EngineBuilderOption {
	return func(e *engine) {
		e.debugCamera = cam
	}
}

// WithMapper sets a pre-configured input mapper, e.g. with custom bindings.
//
// Parameters:
//   - m: the input mapper
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMapper(m input.Mapper) EngineBuilderOption {
	return func(e *engine) {
		e.mapper = m
	}
}

// WithSoundWorld sets a pre-configured sound world.
//
// Parameters:
//   - w: the sound world
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSoundWorld(w world.SoundWorld) EngineBuilderOption {
	return func(e *engine) {
		e.soundWorld = w
	}
}

// WithSettingsStore sets the store the engine loads settings from at startup
// and saves them to on shutdown.
//
// Parameters:
//   - store: the settings store
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSettingsStore(store settings.Store) EngineBuilderOption {
	return func(e *engine) {
		e.settingsStore = store
	}
}

// WithInterfaceWindow opens an interface window during construction.
//
// Parameters:
//   - w: the window to open
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInterfaceWindow(w *ui.FramedWindow) EngineBuilderOption {
	return func(e *engine) {
		e.interfaceWindows = append(e.interfaceWindows, w)
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
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}
