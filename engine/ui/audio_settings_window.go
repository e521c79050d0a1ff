package ui

import (
	"github.com/goalves/korangar/engine/settings"
)

// AudioSettingsWindowClass identifies the audio settings window so the
// interface opens at most one instance.
const AudioSettingsWindowClass = "audio_settings"

// NewAudioSettingsWindow builds the audio settings window. Its controls bind
// directly to the given AudioSettings, so adjustments take effect immediately;
// persisting them afterwards is the caller's job.
//
// Parameters:
//   - audio: the audio settings the controls are bound to
//
// Returns:
//   - *FramedWindow: the window, class "audio_settings"
func NewAudioSettingsWindow(audio *settings.AudioSettings) *FramedWindow {
	constraint := SizeConstraint{
		MinimumWidth:   200,
		PreferredWidth: 250,
		MaximumWidth:   300,
	}

	return NewFramedWindow(
		"Audio Settings",
		AudioSettingsWindowClass,
		constraint,
		NewScrollView(
			NewSlider("Music volume", &audio.MusicVolume),
			NewSlider("Effect volume", &audio.EffectVolume),
			NewToggle("Mute", &audio.Muted),
		),
	)
}
