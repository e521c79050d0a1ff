// package ui implements the client's retained-mode interface tree. Elements
// resolve their own layout, track hover, and draw through the narrow
// InterfaceRenderer contract so the actual renderer stays external.
package ui

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ElementState holds the resolved layout of an element: its position relative
// to the parent and its size, both in screen pixels. Parents assign Position
// during their own Resolve; elements assign their Size.
type ElementState struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
}

// Contains reports whether a point (relative to the parent) lies inside the
// element's resolved bounds.
//
// Parameters:
//   - point: the point to test, in the parent's coordinate space
//
// Returns:
//   - bool: true if the point is inside the element
func (s *ElementState) Contains(point mgl32.Vec2) bool {
	return point.X() >= s.Position.X() &&
		point.Y() >= s.Position.Y() &&
		point.X() < s.Position.X()+s.Size.X() &&
		point.Y() < s.Position.Y()+s.Size.Y()
}

// Element is a node in the interface tree.
type Element interface {
	// State returns the element's resolved layout state.
	//
	// Returns:
	//   - *ElementState: the layout state
	State() *ElementState

	// Resolve computes the element's size given the available space and lays
	// out its children. Called top-down whenever layout is invalidated.
	//
	// Parameters:
	//   - available: the space offered by the parent, in pixels
	Resolve(available mgl32.Vec2)

	// Update advances element animations.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds
	//
	// Returns:
	//   - bool: true if the element changed and needs a rerender
	Update(deltaTime float64) bool

	// HoveredElement returns the innermost element under the mouse, or nil.
	// The mouse position is relative to the element's parent.
	//
	// Parameters:
	//   - mouse: the mouse position in the parent's coordinate space
	//
	// Returns:
	//   - Element: the hovered element, or nil
	HoveredElement(mouse mgl32.Vec2) Element

	// Scroll handles a scroll wheel delta directed at this element.
	//
	// Parameters:
	//   - delta: the scroll delta, positive for scroll up
	//
	// Returns:
	//   - bool: true if the element consumed the scroll and needs a rerender
	Scroll(delta float32) bool

	// Render draws the element and its children.
	//
	// Parameters:
	//   - renderer: the interface renderer
	//   - parentPosition: the parent's absolute screen position
	Render(renderer InterfaceRenderer, parentPosition mgl32.Vec2)
}

// InterfaceRenderer is the drawing contract the interface tree renders
// through. Implemented outside this module by the graphics layer.
type InterfaceRenderer interface {
	// RenderRectangle draws a filled rectangle.
	//
	// Parameters:
	//   - position: absolute screen position of the top-left corner
	//   - size: rectangle size in pixels
	RenderRectangle(position, size mgl32.Vec2)

	// RenderText draws a text string.
	//
	// Parameters:
	//   - text: the string to draw
	//   - position: absolute screen position of the baseline origin
	RenderText(text string, position mgl32.Vec2)

	// PushClip restricts subsequent draws to a rectangle. Calls nest.
	//
	// Parameters:
	//   - position: absolute screen position of the clip's top-left corner
	//   - size: clip size in pixels
	PushClip(position, size mgl32.Vec2)

	// PopClip removes the most recent clip rectangle.
	PopClip()

	// SetScroll sets the vertical scroll offset applied to subsequent draws.
	//
	// Parameters:
	//   - offset: the scroll offset in pixels
	SetScroll(offset float32)
}
