package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mapper translates raw device input into UserEvents according to a key
// binding table. The mapper is stateless apart from its bindings; held-key
// repetition and drag accumulation are the window layer's concern.
type Mapper interface {
	// MapKeyDown resolves a pressed key to its bound event.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - UserEvent: the bound event
	//   - bool: false if the key has no binding
	MapKeyDown(keyCode uint32) (UserEvent, bool)

	// MapScroll converts a scroll wheel delta into a camera zoom event.
	// Scroll up (positive delta) zooms in, so the delta is negated.
	//
	// Parameters:
	//   - delta: the raw scroll delta
	//
	// Returns:
	//   - UserEvent: the zoom event
	MapScroll(delta float32) UserEvent

	// MapMouseDrag converts a mouse drag (middle button held) into a camera
	// event: a look-around for the debug camera or an orbit rotation for the
	// player camera.
	//
	// Parameters:
	//   - delta: mouse movement in pixels since the last frame
	//   - debugCamera: true when the debug camera is active
	//
	// Returns:
	//   - UserEvent: the rotation or look-around event
	MapMouseDrag(delta mgl32.Vec2, debugCamera bool) UserEvent

	// Bind replaces or adds the event bound to a key.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//   - event: the event to emit when the key is pressed
	Bind(keyCode uint32, event UserEvent)
}

type mapper struct {
	bindings map[uint32]UserEvent
}

var _ Mapper = &mapper{}

// NewMapper creates a Mapper with the default client bindings.
//
// Parameters:
//   - options: functional options to adjust the bindings
//
// Returns:
//   - Mapper: the newly created mapper
func NewMapper(options ...MapperOption) Mapper {
	m := &mapper{
		bindings: map[uint32]UserEvent{
			KeyF1: ToggleShowFramesPerSecond{},
			KeyM:  ToggleShowMap{},
			KeyO:  ToggleShowObjects{},
			KeyT:  ToggleUseDebugCamera{},

			KeyW:         CameraMoveForward{},
			KeyS:         CameraMoveBackward{},
			KeyA:         CameraMoveLeft{},
			KeyD:         CameraMoveRight{},
			KeySpace:     CameraMoveUp{},
			KeyLeftShift: CameraMoveDown{},
		},
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *mapper) MapKeyDown(keyCode uint32) (UserEvent, bool) {
	event, bound := m.bindings[keyCode]
	return event, bound
}

func (m *mapper) MapScroll(delta float32) UserEvent {
	return CameraZoom{Delta: -delta}
}

func (m *mapper) MapMouseDrag(delta mgl32.Vec2, debugCamera bool) UserEvent {
	if debugCamera {
		return CameraLookAround{Offset: delta}
	}
	return CameraRotate{Delta: delta.X()}
}

func (m *mapper) Bind(keyCode uint32, event UserEvent) {
	m.bindings[keyCode] = event
}

type MapperOption func(*mapper)

// WithBinding binds an event to a key during construction.
//
// Parameters:
//   - keyCode: the virtual key code
//   - event: the event to emit when the key is pressed
//
// Returns:
//   - MapperOption: a function that adds the binding
func WithBinding(keyCode uint32, event UserEvent) MapperOption {
	return func(m *mapper) {
		m.bindings[keyCode] = event
	}
}

// WithoutDefaultBindings clears the default binding table so only explicitly
// configured bindings remain.
//
// Returns:
//   - MapperOption: a function that clears the bindings
func WithoutDefaultBindings() MapperOption {
	return func(m *mapper) {
		m.bindings = map[uint32]UserEvent{}
	}
}
