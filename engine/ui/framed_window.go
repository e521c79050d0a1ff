package ui

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/goalves/korangar/common"
)

// titleBarHeight is the height of a framed window's title bar in pixels.
const titleBarHeight float32 = 24

// SizeConstraint bounds a window's width: the window prefers PreferredWidth
// but yields to the available space within [MinimumWidth, MaximumWidth].
// Height follows the content.
type SizeConstraint struct {
	MinimumWidth   float32
	PreferredWidth float32
	MaximumWidth   float32
}

// Resolve picks the width to use for the given available space.
//
// Parameters:
//   - available: the width offered by the parent
//
// Returns:
//   - float32: the constrained width
func (c SizeConstraint) Resolve(available float32) float32 {
	width := c.PreferredWidth
	if available < width {
		width = available
	}
	return common.Clamp(width, c.MinimumWidth, c.MaximumWidth)
}

// FramedWindow is a titled, movable interface window stacking its elements
// vertically under the title bar.
type FramedWindow struct {
	title       string
	windowClass string
	state       ElementState
	elements    []Element
	constraint  SizeConstraint
}

var _ Element = &FramedWindow{}

// NewFramedWindow creates a framed window.
//
// Parameters:
//   - title: the title bar text
//   - windowClass: the window's class identifier, used to deduplicate windows
//   - constraint: the width constraint
//   - elements: the window's content elements
//
// Returns:
//   - *FramedWindow: the newly created window
func NewFramedWindow(title, windowClass string, constraint SizeConstraint, elements ...Element) *FramedWindow {
	return &FramedWindow{
		title:       title,
		windowClass: windowClass,
		constraint:  constraint,
		elements:    elements,
	}
}

// Title returns the title bar text.
//
// Returns:
//   - string: the title
func (w *FramedWindow) Title() string {
	return w.title
}

// WindowClass returns the window's class identifier.
//
// Returns:
//   - string: the window class
func (w *FramedWindow) WindowClass() string {
	return w.windowClass
}

// MoveBy shifts the window by a screen-space offset. Consumed by interface
// drag events.
//
// Parameters:
//   - offset: the offset in pixels
func (w *FramedWindow) MoveBy(offset mgl32.Vec2) {
	w.state.Position = w.state.Position.Add(offset)
}

func (w *FramedWindow) State() *ElementState {
	return &w.state
}

func (w *FramedWindow) Resolve(available mgl32.Vec2) {
	width := w.constraint.Resolve(available.X())

	offsetY := titleBarHeight
	for _, element := range w.elements {
		element.Resolve(mgl32.Vec2{width, available.Y() - offsetY})
		element.State().Position = mgl32.Vec2{0, offsetY}
		offsetY += element.State().Size.Y()
	}

	w.state.Size = mgl32.Vec2{width, offsetY}
}

func (w *FramedWindow) Update(deltaTime float64) bool {
	changed := false
	for _, element := range w.elements {
		if element.Update(deltaTime) {
			changed = true
		}
	}
	return changed
}

func (w *FramedWindow) HoveredElement(mouse mgl32.Vec2) Element {
	if !w.state.Contains(mouse) {
		return nil
	}
	local := mouse.Sub(w.state.Position)
	for _, element := range w.elements {
		if hovered := element.HoveredElement(local); hovered != nil {
			return hovered
		}
	}
	return w
}

func (w *FramedWindow) Scroll(delta float32) bool {
	for _, element := range w.elements {
		if element.Scroll(delta) {
			return true
		}
	}
	return false
}

func (w *FramedWindow) Render(renderer InterfaceRenderer, parentPosition mgl32.Vec2) {
	absolute := parentPosition.Add(w.state.Position)

	renderer.RenderRectangle(absolute, w.state.Size)
	renderer.RenderRectangle(absolute, mgl32.Vec2{w.state.Size.X(), titleBarHeight})
	renderer.RenderText(w.title, absolute)

	for _, element := range w.elements {
		element.Render(renderer, absolute)
	}
}
