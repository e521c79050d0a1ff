// package settings holds the persisted client configuration. Values live in
// plain structs so the interface layer can bind to them directly; the Store
// handles moving them to and from per-OS application data.
package settings

import (
	"github.com/goalves/korangar/common"
)

// AudioSettings holds the user-facing audio configuration.
type AudioSettings struct {
	// MusicVolume is the background music volume in [0, 1].
	MusicVolume float64 `json:"musicVolume"`

	// EffectVolume is the sound effect volume in [0, 1].
	EffectVolume float64 `json:"effectVolume"`

	// Muted silences all audio without losing the volume values.
	Muted bool `json:"muted"`
}

// Settings is the root of all persisted client configuration.
type Settings struct {
	Audio AudioSettings `json:"audio"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
//
// Returns:
//   - Settings: full volume, not muted
func DefaultSettings() Settings {
	return Settings{
		Audio: AudioSettings{
			MusicVolume:  1.0,
			EffectVolume: 1.0,
			Muted:        false,
		},
	}
}

// EffectiveMusicVolume returns the music volume with mute applied and the
// value clamped to [0, 1].
//
// Returns:
//   - float64: the volume the audio layer should use
func (a AudioSettings) EffectiveMusicVolume() float64 {
	if a.Muted {
		return 0
	}
	return common.Clamp(a.MusicVolume, 0, 1)
}

// EffectiveEffectVolume returns the effect volume with mute applied and the
// value clamped to [0, 1].
//
// Returns:
//   - float64: the volume the audio layer should use
func (a AudioSettings) EffectiveEffectVolume() float64 {
	if a.Muted {
		return 0
	}
	return common.Clamp(a.EffectVolume, 0, 1)
}
