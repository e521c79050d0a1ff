package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalves/korangar/engine/settings"
)

func TestSizeConstraintResolve(t *testing.T) {
	constraint := SizeConstraint{MinimumWidth: 200, PreferredWidth: 250, MaximumWidth: 300}

	assert.Equal(t, float32(250), constraint.Resolve(1000), "ample space yields the preferred width")
	assert.Equal(t, float32(220), constraint.Resolve(220), "tight space yields the available width")
	assert.Equal(t, float32(200), constraint.Resolve(100), "the minimum width wins over available space")
}

func TestFramedWindowMoveBy(t *testing.T) {
	window := NewFramedWindow("Test", "test", SizeConstraint{MinimumWidth: 100, PreferredWidth: 100, MaximumWidth: 100})

	window.MoveBy(mgl32.Vec2{15, -5})
	window.MoveBy(mgl32.Vec2{5, 10})
	assert.Equal(t, mgl32.Vec2{20, 5}, window.State().Position)
}

func TestAudioSettingsWindowIdentity(t *testing.T) {
	audio := settings.DefaultSettings().Audio
	window := NewAudioSettingsWindow(&audio)

	assert.Equal(t, "audio_settings", window.WindowClass())
	assert.Equal(t, "Audio Settings", window.Title())
}

func TestAudioSettingsWindowLayout(t *testing.T) {
	audio := settings.DefaultSettings().Audio
	window := NewAudioSettingsWindow(&audio)

	window.Resolve(mgl32.Vec2{1000, 800})
	assert.Equal(t, float32(250), window.State().Size.X())
	// Title bar plus two sliders and a toggle.
	assert.Equal(t, titleBarHeight+3*controlHeight, window.State().Size.Y())
}

func TestAudioSettingsWindowBindsSettings(t *testing.T) {
	audio := settings.DefaultSettings().Audio
	audio.MusicVolume = 0.5
	window := NewAudioSettingsWindow(&audio)
	window.Resolve(mgl32.Vec2{1000, 800})

	hovered := window.HoveredElement(mgl32.Vec2{10, float32(30)})
	require.NotNil(t, hovered)
	slider, ok := hovered.(*Slider)
	require.True(t, ok)

	slider.Scroll(1)
	assert.InDelta(t, 0.55, audio.MusicVolume, 1e-9)

	slider.Scroll(100)
	assert.Equal(t, 1.0, audio.MusicVolume, "the bound value stays in range")
}

func TestToggleFlip(t *testing.T) {
	audio := settings.DefaultSettings().Audio
	toggle := NewToggle("Mute", &audio.Muted)

	toggle.Flip()
	assert.True(t, audio.Muted)
	toggle.Flip()
	assert.False(t, audio.Muted)
}
