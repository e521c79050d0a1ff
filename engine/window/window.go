package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and raw input event delivery for the
// client. It reports framebuffer-accurate dimensions (the unit the camera's
// aspect ratio and the renderer's surface configuration need) and surfaces
// scroll, key, and mouse-drag events for the input mapper.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized. The camera must regenerate its view projection afterwards.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the scroll delta (positive = up)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseDragCallback sets the callback for cursor movement while the
	// middle mouse button is held. Deltas are in pixels since the previous
	// cursor event; this is the raw input behind camera rotation.
	//
	// Parameters:
	//   - callback: function receiving the drag delta
	SetMouseDragCallback(callback func(dx, dy float32))

	// SetMouseMoveCallback sets the callback for absolute cursor movement,
	// used for interface hover testing.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in pixels
	SetMouseMoveCallback(callback func(x, y float32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating
	// a WebGPU surface. The descriptor is platform-appropriate (Windows HWND,
	// X11 Xlib, Wayland, macOS Metal, etc.) and is created by the wgpuglfw
	// bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if the window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// clientWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type clientWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// minWidth/minHeight and maxWidth/maxHeight bound window resizing.
	minWidth  int
	minHeight int
	maxWidth  int
	maxHeight int

	// width and height track the current framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	onScroll func(delta float32)

	// onKeyDown is called when a key is pressed or repeats.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)

	// onMouseDrag is called for cursor movement while the middle mouse button is held.
	onMouseDrag func(dx, dy float32)

	// onMouseMove is called for absolute cursor movement.
	onMouseMove func(x, y float32)
}

var _ Window = &clientWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &clientWindow{
		title:     "Korangar",
		minWidth:  600,
		minHeight: 200,
		maxWidth:  3840,
		maxHeight: 2160,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *clientWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *clientWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *clientWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *clientWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *clientWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *clientWindow) SetMouseDragCallback(callback func(dx, dy float32)) {
	w.onMouseDrag = callback
}

func (w *clientWindow) SetMouseMoveCallback(callback func(x, y float32)) {
	w.onMouseMove = callback
}

func (w *clientWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *clientWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *clientWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *clientWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *clientWindow) Width() int {
	return w.width
}

func (w *clientWindow) Height() int {
	return w.height
}
