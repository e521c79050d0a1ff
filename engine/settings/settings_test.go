package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 1.0, s.Audio.MusicVolume)
	assert.Equal(t, 1.0, s.Audio.EffectVolume)
	assert.False(t, s.Audio.Muted)
}

func TestSettingsCodecRoundTrip(t *testing.T) {
	original := Settings{
		Audio: AudioSettings{
			MusicVolume:  0.25,
			EffectVolume: 0.75,
			Muted:        true,
		},
	}

	data, err := encodeSettings(original)
	require.NoError(t, err)

	decoded, err := decodeSettings(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeSettingsKeepsDefaultsForMissingFields(t *testing.T) {
	decoded, err := decodeSettings([]byte(`{"audio":{"muted":true}}`))
	require.NoError(t, err)

	assert.True(t, decoded.Audio.Muted)
	assert.Equal(t, 1.0, decoded.Audio.MusicVolume, "absent fields keep their defaults")

	decoded, err = decodeSettings([]byte(`{"audio":{"musicVolume":0}}`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, decoded.Audio.MusicVolume, "explicit zero overrides the default")

	decoded, err = decodeSettings([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), decoded)
}

func TestDecodeSettingsRejectsCorruptData(t *testing.T) {
	_, err := decodeSettings([]byte(`{"audio":`))
	assert.Error(t, err)
}

func TestEffectiveVolumes(t *testing.T) {
	a := AudioSettings{MusicVolume: 0.5, EffectVolume: 1.5, Muted: false}

	assert.Equal(t, 0.5, a.EffectiveMusicVolume())
	assert.Equal(t, 1.0, a.EffectiveEffectVolume(), "out of range volumes are clamped")

	a.Muted = true
	assert.Equal(t, 0.0, a.EffectiveMusicVolume())
	assert.Equal(t, 0.0, a.EffectiveEffectVolume())
}
