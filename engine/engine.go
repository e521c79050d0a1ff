package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/goalves/korangar/engine/camera"
	"github.com/goalves/korangar/engine/input"
	"github.com/goalves/korangar/engine/profiler"
	"github.com/goalves/korangar/engine/settings"
	"github.com/goalves/korangar/engine/ui"
	"github.com/goalves/korangar/engine/window"
	"github.com/goalves/korangar/engine/world"
)

// RenderFlags holds the debug visibility toggles driven by input events. The
// renderer reads them each frame.
type RenderFlags struct {
	ShowFramesPerSecond  bool
	ShowMap              bool
	ShowObjects          bool
	ShowAmbientLight     bool
	ShowDirectionalLight bool
	ShowPointLights      bool
	ShowParticleLights   bool
}

// engine implements the Engine interface.
// Coordinates the tick, render, and window threads.
type engine struct {
	mu *sync.Mutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// Input state. Events queue up from window callbacks on the main thread
	// and drain on the tick goroutine. Held movement keys repeat every tick.
	mapper        input.Mapper
	eventChannel  chan input.UserEvent
	heldMoves     map[uint32]input.UserEvent
	mousePosition mgl32.Vec2

	// Client state the ticks drive.
	playerCamera   camera.PlayerCamera
	debugCamera    camera.FlyCamera
	useDebugCamera bool

	soundWorld world.SoundWorld

	interfaceWindows []*ui.FramedWindow

	settingsStore settings.Store
	settings      settings.Settings

	renderFlags RenderFlags
}

// Engine is the main entry point for the client. It orchestrates the tick
// loop, render loop, and window management, routes input events to the
// cameras and the interface, and owns the persisted settings.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// PlayerCamera returns the follow camera used during normal play.
	PlayerCamera() camera.PlayerCamera

	// DebugCamera returns the free-fly debug camera.
	DebugCamera() camera.FlyCamera

	// ActiveCamera returns whichever camera is currently selected.
	//
	// Returns:
	//   - camera.Camera: the player camera, or the debug camera when toggled
	ActiveCamera() camera.Camera

	// UsingDebugCamera reports whether the debug camera is active.
	UsingDebugCamera() bool

	// SoundWorld returns the world's sound source registry.
	SoundWorld() world.SoundWorld

	// Settings returns the current client settings. The returned pointer is
	// live; interface elements bind to it directly.
	//
	// Returns:
	//   - *settings.Settings: the live settings
	Settings() *settings.Settings

	// RenderFlags returns the current debug visibility toggles.
	RenderFlags() RenderFlags

	// FramesPerSecond returns the frame rate measured over the last completed
	// profiler interval, for the interface FPS overlay. Zero until the first
	// interval elapses.
	//
	// Returns:
	//   - float64: the measured frame rate
	FramesPerSecond() float64

	// OpenWindow adds an interface window. A window whose class matches an
	// already open window is ignored, so each class opens at most once.
	//
	// Parameters:
	//   - w: the window to open
	//
	// Returns:
	//   - bool: true if the window was opened
	OpenWindow(w *ui.FramedWindow) bool

	// CloseWindow removes the interface window with the given class.
	//
	// Parameters:
	//   - windowClass: the class of the window to close
	CloseWindow(windowClass string)

	// InterfaceWindows returns the open interface windows in z-order.
	InterfaceWindows() []*ui.FramedWindow

	// HandleEvent applies a semantic input event. Window callbacks queue
	// events here automatically; callers can inject events directly, e.g.
	// from a scripted demo.
	//
	// Parameters:
	//   - event: the event to apply
	HandleEvent(event input.UserEvent)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetRenderCallback registers the function called each render frame,
	// after the active camera's matrices have been regenerated.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the main engine loop (blocks until the window closes).
	Run()

	// Quit signals all engine goroutines to stop, persists the settings, and
	// shuts down the engine. Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine with the provided options. Cameras, mapper,
// sound world, and settings store fall back to defaults when not supplied.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:              &sync.Mutex{},
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		eventChannel:    make(chan input.UserEvent, 256),
		heldMoves:       make(map[uint32]input.UserEvent),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
		renderFlags: RenderFlags{
			ShowMap:              true,
			ShowObjects:          true,
			ShowAmbientLight:     true,
			ShowDirectionalLight: true,
			ShowPointLights:      true,
			ShowParticleLights:   true,
		},
	}

	for _, opt := range options {
		opt(e)
	}

	if e.playerCamera == nil {
		e.playerCamera = camera.NewPlayerCamera()
	}
	if e.debugCamera == nil {
		e.debugCamera = camera.NewFlyCamera()
	}
	if e.mapper == nil {
		e.mapper = input.NewMapper()
	}
	if e.soundWorld == nil {
		e.soundWorld = world.NewSoundWorld()
	}
	if e.settingsStore == nil {
		e.settingsStore = settings.NewStore()
	}
	e.settings = e.settingsStore.Load()
	e.profiler.SetLogging(e.profilingEnabled)

	if e.window != nil {
		e.wireWindow()
	}

	return e
}

// wireWindow connects the window's raw input callbacks to the event queue and
// the layout/camera invalidation paths.
func (e *engine) wireWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			return // minimized; keep the previous matrices
		}
		if err := e.ActiveCamera().GenerateViewProjection(width, height); err != nil {
			log.Printf("[Engine] failed to regenerate camera after resize: %v", err)
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		available := mgl32.Vec2{float32(width), float32(height)}
		for _, w := range e.interfaceWindows {
			w.Resolve(available)
		}
	})

	e.window.SetScrollCallback(e.handleScroll)

	e.window.SetKeyDownCallback(func(keyCode uint32) {
		event, bound := e.mapper.MapKeyDown(keyCode)
		if !bound {
			return
		}
		if isCameraMove(event) {
			e.mu.Lock()
			e.heldMoves[keyCode] = event
			e.mu.Unlock()
			return
		}
		e.queueEvent(event)
	})

	e.window.SetKeyUpCallback(func(keyCode uint32) {
		e.mu.Lock()
		delete(e.heldMoves, keyCode)
		e.mu.Unlock()
	})

	e.window.SetMouseDragCallback(func(dx, dy float32) {
		e.mu.Lock()
		debug := e.useDebugCamera
		e.mu.Unlock()
		e.queueEvent(e.mapper.MapMouseDrag(mgl32.Vec2{dx, dy}, debug))
	})

	e.window.SetMouseMoveCallback(func(x, y float32) {
		e.mu.Lock()
		e.mousePosition = mgl32.Vec2{x, y}
		e.mu.Unlock()
	})
}

// handleScroll routes a mouse wheel delta. The hovered interface element gets
// first claim; a delta it does not consume falls through to the camera zoom
// binding.
func (e *engine) handleScroll(delta float32) {
	e.mu.Lock()
	var hovered ui.Element
	for _, w := range e.interfaceWindows {
		if hovered = w.HoveredElement(e.mousePosition); hovered != nil {
			break
		}
	}
	e.mu.Unlock()

	if hovered != nil && hovered.Scroll(delta) {
		return
	}
	e.queueEvent(e.mapper.MapScroll(delta))
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) PlayerCamera() camera.PlayerCamera {
	return e.playerCamera
}

func (e *engine) DebugCamera() camera.FlyCamera {
	return e.debugCamera
}

func (e *engine) ActiveCamera() camera.Camera {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.useDebugCamera {
		return e.debugCamera
	}
	return e.playerCamera
}

func (e *engine) UsingDebugCamera() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.useDebugCamera
}

func (e *engine) SoundWorld() world.SoundWorld {
	return e.soundWorld
}

func (e *engine) Settings() *settings.Settings {
	return &e.settings
}

func (e *engine) RenderFlags() RenderFlags {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.renderFlags
}

func (e *engine) FramesPerSecond() float64 {
	return e.profiler.FramesPerSecond()
}

func (e *engine) OpenWindow(w *ui.FramedWindow) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, open := range e.interfaceWindows {
		if open.WindowClass() == w.WindowClass() {
			return false
		}
	}
	e.interfaceWindows = append(e.interfaceWindows, w)
	if e.window != nil {
		w.Resolve(mgl32.Vec2{float32(e.window.Width()), float32(e.window.Height())})
	}
	return true
}

func (e *engine) CloseWindow(windowClass string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, open := range e.interfaceWindows {
		if open.WindowClass() == windowClass {
			e.interfaceWindows = append(e.interfaceWindows[:i], e.interfaceWindows[i+1:]...)
			return
		}
	}
}

func (e *engine) InterfaceWindows() []*ui.FramedWindow {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*ui.FramedWindow, len(e.interfaceWindows))
	copy(out, e.interfaceWindows)
	return out
}

func (e *engine) HandleEvent(event input.UserEvent) {
	e.queueEvent(event)
}

// queueEvent pushes an event for the next tick, dropping it when the queue is
// full rather than blocking the window thread.
func (e *engine) queueEvent(event input.UserEvent) {
	select {
	case e.eventChannel <- event:
	default:
		log.Printf("[Engine] input queue full, dropping %T", event)
	}
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	e.window.ProcessMessages()
	e.Quit()
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit and
// persists the settings. Uses sync.Once so the channel only closes once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		if err := e.settingsStore.Save(e.settings); err != nil {
			log.Printf("[Engine] failed to save settings: %v", err)
		}
		close(e.quitChannel)
	})
}

// handle launches the tick, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleTick()
	go e.handleRender()
	go e.handleQuit()
}

// handleTick runs the fixed-rate simulation loop in its own goroutine.
// Drains queued input events, advances cameras and the interface, and updates
// the sound world. Listens for dynamic rate changes via tickRateChannel and
// exits when the quit channel is closed.
func (e *engine) handleTick() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			e.advance(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// advance performs one simulation tick.
func (e *engine) advance(deltaTime float64) {
drain:
	for {
		select {
		case event := <-e.eventChannel:
			e.applyEvent(event)
		default:
			break drain
		}
	}

	e.mu.Lock()
	if e.useDebugCamera {
		for _, event := range e.heldMoves {
			e.applyCameraMove(event, deltaTime)
		}
	}
	windows := make([]*ui.FramedWindow, len(e.interfaceWindows))
	copy(windows, e.interfaceWindows)
	e.mu.Unlock()

	e.playerCamera.Update(deltaTime)

	for _, w := range windows {
		w.Update(deltaTime)
	}

	if err := e.soundWorld.Update(e.ActiveCamera(), deltaTime); err != nil {
		// The camera has no matrices until the first render; that is not a
		// reportable failure.
		if !errors.Is(err, camera.ErrCameraNotReady) {
			log.Printf("[Engine] sound world update failed: %v", err)
		}
	}
}

// applyEvent dispatches one semantic input event to its consumer.
func (e *engine) applyEvent(event input.UserEvent) {
	switch ev := event.(type) {
	case input.CameraZoom:
		e.playerCamera.SoftZoom(ev.Delta)
	case input.CameraRotate:
		e.playerCamera.SoftRotate(ev.Delta)
	case input.CameraLookAround:
		e.debugCamera.LookAround(ev.Offset)
	case input.ToggleUseDebugCamera:
		e.mu.Lock()
		e.useDebugCamera = !e.useDebugCamera
		if e.useDebugCamera {
			// Hand off seamlessly from the orbit position.
			e.debugCamera.SetPosition(e.playerCamera.Position())
		}
		e.mu.Unlock()
	case input.MoveInterface:
		e.mu.Lock()
		if ev.Window >= 0 && ev.Window < len(e.interfaceWindows) {
			e.interfaceWindows[ev.Window].MoveBy(ev.Offset)
		}
		e.mu.Unlock()
	case input.ToggleShowFramesPerSecond:
		e.toggleFlag(func(f *RenderFlags) { f.ShowFramesPerSecond = !f.ShowFramesPerSecond })
	case input.ToggleShowMap:
		e.toggleFlag(func(f *RenderFlags) { f.ShowMap = !f.ShowMap })
	case input.ToggleShowObjects:
		e.toggleFlag(func(f *RenderFlags) { f.ShowObjects = !f.ShowObjects })
	case input.ToggleShowAmbientLight:
		e.toggleFlag(func(f *RenderFlags) { f.ShowAmbientLight = !f.ShowAmbientLight })
	case input.ToggleShowDirectionalLight:
		e.toggleFlag(func(f *RenderFlags) { f.ShowDirectionalLight = !f.ShowDirectionalLight })
	case input.ToggleShowPointLights:
		e.toggleFlag(func(f *RenderFlags) { f.ShowPointLights = !f.ShowPointLights })
	case input.ToggleShowParticleLights:
		e.toggleFlag(func(f *RenderFlags) { f.ShowParticleLights = !f.ShowParticleLights })
	default:
		// Movement events arriving through the queue apply a single tick's
		// worth of motion.
		e.applyCameraMove(event, e.engineTickRate.Seconds())
	}
}

// toggleFlag applies a mutation to the render flags under the engine lock.
func (e *engine) toggleFlag(mutate func(*RenderFlags)) {
	e.mu.Lock()
	mutate(&e.renderFlags)
	e.mu.Unlock()
}

// applyCameraMove drives the debug camera from a movement event.
func (e *engine) applyCameraMove(event input.UserEvent, deltaTime float64) {
	switch event.(type) {
	case input.CameraMoveForward:
		e.debugCamera.MoveForward(deltaTime)
	case input.CameraMoveBackward:
		e.debugCamera.MoveBackward(deltaTime)
	case input.CameraMoveLeft:
		e.debugCamera.MoveLeft(deltaTime)
	case input.CameraMoveRight:
		e.debugCamera.MoveRight(deltaTime)
	case input.CameraMoveUp:
		e.debugCamera.MoveUp(deltaTime)
	case input.CameraMoveDown:
		e.debugCamera.MoveDown(deltaTime)
	}
}

// isCameraMove reports whether an event is a held-style movement event.
func isCameraMove(event input.UserEvent) bool {
	switch event.(type) {
	case input.CameraMoveForward, input.CameraMoveBackward,
		input.CameraMoveLeft, input.CameraMoveRight,
		input.CameraMoveUp, input.CameraMoveDown:
		return true
	}
	return false
}

// handleRender runs the uncapped (or frame-limited) render loop in its own
// goroutine. Regenerates the active camera's matrices from the current window
// size and hands the frame to the render callback.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.window != nil {
				width, height := e.window.Width(), e.window.Height()
				if width > 0 && height > 0 {
					if err := e.ActiveCamera().GenerateViewProjection(width, height); err != nil {
						log.Printf("[Engine] failed to generate view projection: %v", err)
					}
				}
			}

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			// The profiler keeps measuring even with logging disabled so
			// the FPS overlay has a value to show.
			e.profiler.Tick()

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
	e.profiler.SetLogging(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
	e.profiler.SetLogging(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Non-blocking send - if the channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}
