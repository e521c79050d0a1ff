package ui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/goalves/korangar/common"
)

const (
	controlHeight float32 = 20

	// sliderScrollStep is how much one wheel notch over a slider moves its value.
	sliderScrollStep = 0.05
)

// Slider is a labeled horizontal slider bound to a float64 value in [0, 1].
// The bound pointer is written directly, so whatever owns the value sees
// changes without a callback.
type Slider struct {
	label string
	value *float64
	state ElementState
}

var _ Element = &Slider{}

// NewSlider creates a slider bound to a value.
//
// Parameters:
//   - label: the label drawn next to the slider
//   - value: the bound value, kept in [0, 1]
//
// Returns:
//   - *Slider: the newly created slider
func NewSlider(label string, value *float64) *Slider {
	return &Slider{
		label: label,
		value: value,
	}
}

// Value returns the current bound value.
//
// Returns:
//   - float64: the value in [0, 1]
func (s *Slider) Value() float64 {
	return *s.value
}

// SetValue sets the bound value, clamped to [0, 1].
//
// Parameters:
//   - value: the new value
func (s *Slider) SetValue(value float64) {
	*s.value = common.Clamp(value, 0, 1)
}

func (s *Slider) State() *ElementState {
	return &s.state
}

func (s *Slider) Resolve(available mgl32.Vec2) {
	s.state.Size = mgl32.Vec2{available.X(), controlHeight}
}

func (s *Slider) Update(deltaTime float64) bool {
	return false
}

func (s *Slider) HoveredElement(mouse mgl32.Vec2) Element {
	if s.state.Contains(mouse) {
		return s
	}
	return nil
}

func (s *Slider) Scroll(delta float32) bool {
	s.SetValue(*s.value + float64(delta)*sliderScrollStep)
	return true
}

func (s *Slider) Render(renderer InterfaceRenderer, parentPosition mgl32.Vec2) {
	absolute := parentPosition.Add(s.state.Position)

	renderer.RenderText(fmt.Sprintf("%s: %.0f%%", s.label, *s.value*100), absolute)

	filled := float32(*s.value) * s.state.Size.X()
	renderer.RenderRectangle(absolute, mgl32.Vec2{filled, s.state.Size.Y()})
}

// Toggle is a labeled on/off control bound to a bool value.
type Toggle struct {
	label string
	value *bool
	state ElementState
}

var _ Element = &Toggle{}

// NewToggle creates a toggle bound to a value.
//
// Parameters:
//   - label: the label drawn next to the toggle
//   - value: the bound value
//
// Returns:
//   - *Toggle: the newly created toggle
func NewToggle(label string, value *bool) *Toggle {
	return &Toggle{
		label: label,
		value: value,
	}
}

// Value returns the current bound value.
//
// Returns:
//   - bool: the value
func (t *Toggle) Value() bool {
	return *t.value
}

// Flip inverts the bound value.
func (t *Toggle) Flip() {
	*t.value = !*t.value
}

func (t *Toggle) State() *ElementState {
	return &t.state
}

func (t *Toggle) Resolve(available mgl32.Vec2) {
	t.state.Size = mgl32.Vec2{available.X(), controlHeight}
}

func (t *Toggle) Update(deltaTime float64) bool {
	return false
}

func (t *Toggle) HoveredElement(mouse mgl32.Vec2) Element {
	if t.state.Contains(mouse) {
		return t
	}
	return nil
}

func (t *Toggle) Scroll(delta float32) bool {
	return false
}

func (t *Toggle) Render(renderer InterfaceRenderer, parentPosition mgl32.Vec2) {
	absolute := parentPosition.Add(t.state.Position)

	marker := "off"
	if *t.value {
		marker = "on"
	}
	renderer.RenderText(fmt.Sprintf("%s: %s", t.label, marker), absolute)
}
