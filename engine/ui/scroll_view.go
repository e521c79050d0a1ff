package ui

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/goalves/korangar/common"
)

const (
	// ScrollSpeed scales raw wheel deltas into pixel offsets.
	ScrollSpeed = 0.8

	// scrollTweenDuration is how long the visible offset takes to reach a new
	// scroll target, in seconds.
	scrollTweenDuration = 0.2
)

// ScrollView is a vertically scrolling element container. The scroll target
// moves immediately on wheel input; the visible offset eases toward it so the
// content glides instead of jumping.
type ScrollView struct {
	state    ElementState
	elements []Element

	// scroll is the visible offset, targetScroll where it is headed.
	scroll       float32
	targetScroll float32
	tween        *gween.Tween

	// contentHeight is the stacked height of all children after Resolve.
	contentHeight float32
}

var _ Element = &ScrollView{}

// NewScrollView creates a ScrollView containing the given elements.
//
// Parameters:
//   - elements: the child elements, stacked top to bottom
//
// Returns:
//   - *ScrollView: the newly created scroll view
func NewScrollView(elements ...Element) *ScrollView {
	return &ScrollView{
		elements: elements,
	}
}

func (v *ScrollView) State() *ElementState {
	return &v.state
}

func (v *ScrollView) Resolve(available mgl32.Vec2) {
	var offsetY float32
	for _, element := range v.elements {
		element.Resolve(mgl32.Vec2{available.X(), available.Y() - offsetY})
		element.State().Position = mgl32.Vec2{0, offsetY}
		offsetY += element.State().Size.Y()
	}
	v.contentHeight = offsetY

	// The view hugs its content until the content no longer fits, then it
	// becomes the viewport the content scrolls within.
	height := offsetY
	if height > available.Y() {
		height = available.Y()
	}
	v.state.Size = mgl32.Vec2{available.X(), height}

	// Re-clamp against the new overflow; content may have shrunk.
	v.targetScroll = common.Clamp(v.targetScroll, 0, v.maximumScroll())
	v.scroll = common.Clamp(v.scroll, 0, v.maximumScroll())
}

func (v *ScrollView) Update(deltaTime float64) bool {
	changed := false
	if v.tween != nil {
		value, done := v.tween.Update(float32(deltaTime))
		v.scroll = value
		if done {
			v.scroll = v.targetScroll
			v.tween = nil
		}
		changed = true
	}
	for _, element := range v.elements {
		if element.Update(deltaTime) {
			changed = true
		}
	}
	return changed
}

func (v *ScrollView) HoveredElement(mouse mgl32.Vec2) Element {
	if !v.state.Contains(mouse) {
		return nil
	}
	// Children are addressed in content space, so the scroll offset shifts
	// the hit point downward.
	local := mouse.Sub(v.state.Position).Add(mgl32.Vec2{0, v.scroll})
	for _, element := range v.elements {
		if hovered := element.HoveredElement(local); hovered != nil {
			return hovered
		}
	}
	return v
}

func (v *ScrollView) Scroll(delta float32) bool {
	v.targetScroll = common.Clamp(v.targetScroll-delta*ScrollSpeed, 0, v.maximumScroll())
	v.tween = gween.New(v.scroll, v.targetScroll, scrollTweenDuration, ease.OutQuad)
	return true
}

func (v *ScrollView) Render(renderer InterfaceRenderer, parentPosition mgl32.Vec2) {
	absolute := parentPosition.Add(v.state.Position)
	renderer.PushClip(absolute, v.state.Size)
	renderer.SetScroll(v.scroll)

	content := absolute.Sub(mgl32.Vec2{0, v.scroll})
	for _, element := range v.elements {
		element.Render(renderer, content)
	}

	renderer.SetScroll(0)
	renderer.PopClip()
}

// ScrollOffset returns the current visible scroll offset in pixels.
//
// Returns:
//   - float32: the visible offset
func (v *ScrollView) ScrollOffset() float32 {
	return v.scroll
}

// TargetScrollOffset returns the offset the view is animating toward.
//
// Returns:
//   - float32: the target offset
func (v *ScrollView) TargetScrollOffset() float32 {
	return v.targetScroll
}

// maximumScroll is the content overflow, never negative.
func (v *ScrollView) maximumScroll() float32 {
	overflow := v.contentHeight - v.state.Size.Y()
	if overflow < 0 {
		return 0
	}
	return overflow
}
