package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalves/korangar/engine/settings"
)

func overflowingScrollView(t *testing.T) *ScrollView {
	t.Helper()

	audio := settings.DefaultSettings().Audio
	view := NewScrollView(
		NewSlider("one", &audio.MusicVolume),
		NewSlider("two", &audio.EffectVolume),
		NewSlider("three", &audio.MusicVolume),
		NewSlider("four", &audio.EffectVolume),
		NewSlider("five", &audio.MusicVolume),
	)
	// 100 pixels of content inside a 50 pixel viewport.
	view.Resolve(mgl32.Vec2{200, 50})
	require.Equal(t, float32(50), view.State().Size.Y())
	return view
}

func TestScrollViewTargetFollowsScrollSpeed(t *testing.T) {
	view := overflowingScrollView(t)

	view.Scroll(-25)
	assert.InDelta(t, 20, view.TargetScrollOffset(), 1e-5)

	view.Scroll(10)
	assert.InDelta(t, 12, view.TargetScrollOffset(), 1e-5)
}

func TestScrollViewTargetNeverNegative(t *testing.T) {
	view := overflowingScrollView(t)

	view.Scroll(100)
	assert.Equal(t, float32(0), view.TargetScrollOffset())
}

func TestScrollViewTargetClampedToOverflow(t *testing.T) {
	view := overflowingScrollView(t)

	view.Scroll(-1000)
	assert.Equal(t, float32(50), view.TargetScrollOffset())
}

func TestScrollViewOffsetAnimatesTowardTarget(t *testing.T) {
	view := overflowingScrollView(t)

	view.Scroll(-25)
	assert.Equal(t, float32(0), view.ScrollOffset(), "offset moves on update, not on input")

	changed := view.Update(0.05)
	assert.True(t, changed)
	middle := view.ScrollOffset()
	assert.Greater(t, middle, float32(0))
	assert.Less(t, middle, float32(20))

	view.Update(1.0)
	assert.Equal(t, float32(20), view.ScrollOffset())
	assert.False(t, view.Update(0.05), "settled view reports no change")
}

func TestScrollViewResolveReclampsAfterContentShrinks(t *testing.T) {
	view := overflowingScrollView(t)

	view.Scroll(-1000)
	view.Update(1.0)
	require.Equal(t, float32(50), view.ScrollOffset())

	// A taller viewport leaves no overflow to scroll into.
	view.Resolve(mgl32.Vec2{200, 200})
	assert.Equal(t, float32(0), view.ScrollOffset())
	assert.Equal(t, float32(0), view.TargetScrollOffset())
}

func TestScrollViewHoverAccountsForScrollOffset(t *testing.T) {
	view := overflowingScrollView(t)

	// Without scroll, 10 pixels down is the first 20 pixel row.
	hovered := view.HoveredElement(mgl32.Vec2{10, 10})
	require.NotNil(t, hovered)
	first, ok := hovered.(*Slider)
	require.True(t, ok)
	assert.Equal(t, "one", first.label)

	// Scrolled down 30 pixels the same point lands two rows later.
	view.Scroll(-37.5)
	view.Update(1.0)
	require.Equal(t, float32(30), view.ScrollOffset())

	hovered = view.HoveredElement(mgl32.Vec2{10, 10})
	require.NotNil(t, hovered)
	third, ok := hovered.(*Slider)
	require.True(t, ok)
	assert.Equal(t, "three", third.label)
}

func TestScrollViewHoverOutsideBounds(t *testing.T) {
	view := overflowingScrollView(t)

	assert.Nil(t, view.HoveredElement(mgl32.Vec2{10, 60}))
	assert.Nil(t, view.HoveredElement(mgl32.Vec2{-1, 10}))
}
