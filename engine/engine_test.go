package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalves/korangar/engine/input"
	"github.com/goalves/korangar/engine/settings"
	"github.com/goalves/korangar/engine/ui"
)

// memoryStore keeps settings in memory so tests never touch the real
// application data directory.
type memoryStore struct {
	loaded settings.Settings
	saved  *settings.Settings
}

func (m *memoryStore) Load() settings.Settings { return m.loaded }

func (m *memoryStore) Save(s settings.Settings) error {
	m.saved = &s
	return nil
}

func newTestEngine(options ...EngineBuilderOption) *engine {
	options = append([]EngineBuilderOption{
		WithSettingsStore(&memoryStore{loaded: settings.DefaultSettings()}),
	}, options...)
	return NewEngine(options...).(*engine)
}

func TestEngineTogglesDebugCamera(t *testing.T) {
	e := newTestEngine()
	require.False(t, e.UsingDebugCamera())
	assert.Same(t, e.PlayerCamera(), e.ActiveCamera())

	e.HandleEvent(input.ToggleUseDebugCamera{})
	e.advance(1.0 / 60)

	assert.True(t, e.UsingDebugCamera())
	assert.Same(t, e.DebugCamera(), e.ActiveCamera())
	assert.Equal(t, e.PlayerCamera().Position(), e.DebugCamera().Position(),
		"the debug camera takes over from the orbit position")

	e.HandleEvent(input.ToggleUseDebugCamera{})
	e.advance(1.0 / 60)
	assert.Same(t, e.PlayerCamera(), e.ActiveCamera())
}

func TestEngineAppliesRenderFlagToggles(t *testing.T) {
	e := newTestEngine()
	require.True(t, e.RenderFlags().ShowMap)
	require.False(t, e.RenderFlags().ShowFramesPerSecond)

	e.HandleEvent(input.ToggleShowMap{})
	e.HandleEvent(input.ToggleShowFramesPerSecond{})
	e.advance(1.0 / 60)

	assert.False(t, e.RenderFlags().ShowMap)
	assert.True(t, e.RenderFlags().ShowFramesPerSecond)
}

func TestEngineZoomEventReachesPlayerCamera(t *testing.T) {
	e := newTestEngine()

	before := e.PlayerCamera().Position().Y()
	e.HandleEvent(input.CameraZoom{Delta: 50})
	for range 600 {
		e.advance(1.0 / 60)
	}

	assert.Greater(t, e.PlayerCamera().Position().Y(), before,
		"a positive zoom delta moves the orbit outward")
}

func TestEngineMovementEventMovesDebugCamera(t *testing.T) {
	e := newTestEngine()

	before := e.DebugCamera().Position()
	e.HandleEvent(input.CameraMoveForward{})
	e.advance(1.0 / 60)

	after := e.DebugCamera().Position()
	assert.Greater(t, after.Z(), before.Z(), "the debug camera starts out facing +Z")
}

func TestEngineMoveInterfaceEvent(t *testing.T) {
	w := ui.NewFramedWindow("Test", "test", ui.SizeConstraint{MinimumWidth: 100, PreferredWidth: 100, MaximumWidth: 100})
	e := newTestEngine(WithInterfaceWindow(w))

	e.HandleEvent(input.MoveInterface{Window: 0, Offset: mgl32.Vec2{30, 40}})
	e.HandleEvent(input.MoveInterface{Window: 7, Offset: mgl32.Vec2{1, 1}})
	e.advance(1.0 / 60)

	assert.Equal(t, mgl32.Vec2{30, 40}, w.State().Position)
}

func TestEngineOpenWindowDeduplicatesByClass(t *testing.T) {
	e := newTestEngine()
	audio := e.Settings().Audio

	first := ui.NewAudioSettingsWindow(&audio)
	second := ui.NewAudioSettingsWindow(&audio)

	assert.True(t, e.OpenWindow(first))
	assert.False(t, e.OpenWindow(second), "a window class opens at most once")
	require.Len(t, e.InterfaceWindows(), 1)

	e.CloseWindow(ui.AudioSettingsWindowClass)
	assert.Empty(t, e.InterfaceWindows())
	assert.True(t, e.OpenWindow(second))
}

func TestEngineScrollOverNonConsumingElementFallsThrough(t *testing.T) {
	muted := false
	w := ui.NewFramedWindow("Test", "test",
		ui.SizeConstraint{MinimumWidth: 100, PreferredWidth: 100, MaximumWidth: 100},
		ui.NewToggle("Mute", &muted))
	e := newTestEngine(WithInterfaceWindow(w))
	w.Resolve(mgl32.Vec2{800, 600})
	e.mousePosition = mgl32.Vec2{10, 30} // over the toggle row

	// a toggle never consumes the wheel, so repeated deltas must fall through
	// to the camera zoom binding without corrupting the engine lock
	assert.NotPanics(t, func() {
		e.handleScroll(1)
		e.handleScroll(1)
	})

	require.Len(t, e.eventChannel, 2)
	assert.IsType(t, input.CameraZoom{}, <-e.eventChannel)
}

func TestEngineScrollOverConsumingElementStaysInInterface(t *testing.T) {
	volume := 0.5
	w := ui.NewFramedWindow("Test", "test",
		ui.SizeConstraint{MinimumWidth: 100, PreferredWidth: 100, MaximumWidth: 100},
		ui.NewSlider("Volume", &volume))
	e := newTestEngine(WithInterfaceWindow(w))
	w.Resolve(mgl32.Vec2{800, 600})
	e.mousePosition = mgl32.Vec2{10, 30} // over the slider row

	e.handleScroll(1)

	assert.InDelta(t, 0.55, volume, 1e-9)
	assert.Empty(t, e.eventChannel, "a consumed scroll must not reach the camera")
}

func TestEngineScrollOutsideInterfaceZoomsCamera(t *testing.T) {
	e := newTestEngine()
	e.mousePosition = mgl32.Vec2{400, 300}

	e.handleScroll(1)

	require.Len(t, e.eventChannel, 1)
	zoom, ok := (<-e.eventChannel).(input.CameraZoom)
	require.True(t, ok)
	assert.Equal(t, float32(-1), zoom.Delta)
}

func TestEngineExposesProfilerFrameRate(t *testing.T) {
	e := newTestEngine()
	assert.Zero(t, e.FramesPerSecond(), "no frame rate before the first profiler interval")
}

func TestEngineQuitPersistsSettings(t *testing.T) {
	store := &memoryStore{loaded: settings.DefaultSettings()}
	e := NewEngine(WithSettingsStore(store)).(*engine)

	e.Settings().Audio.MusicVolume = 0.25
	e.Quit()
	e.Quit() // safe to call twice

	require.NotNil(t, store.saved)
	assert.Equal(t, 0.25, store.saved.Audio.MusicVolume)
}
