package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUCameraUniformMarshal(t *testing.T) {
	cam := NewPlayerCamera(WithViewAngle(0), WithZoom(400))
	require.NoError(t, cam.GenerateViewProjection(800, 600))

	uniform := NewGPUCameraUniform(cam, 800, 600)
	buf := uniform.Marshal()
	require.Len(t, buf, uniform.Size())
	require.Len(t, buf, 96)

	// spot-check the layout: matrix at offset 0, position at 64, screen size at 80
	first := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:]))
	assert.Equal(t, uniform.ViewProjection[0], first)

	positionX := math.Float32frombits(binary.LittleEndian.Uint32(buf[64:]))
	assert.InDelta(t, 400, positionX, 1e-3)

	width := math.Float32frombits(binary.LittleEndian.Uint32(buf[80:]))
	height := math.Float32frombits(binary.LittleEndian.Uint32(buf[84:]))
	assert.Equal(t, float32(800), width)
	assert.Equal(t, float32(600), height)
}

func TestGPUCameraUniformMatchesMatrices(t *testing.T) {
	cam := NewPlayerCamera(WithViewAngle(0.4), WithZoom(300))
	require.NoError(t, cam.GenerateViewProjection(1024, 768))

	uniform := NewGPUCameraUniform(cam, 1024, 768)

	view, projection := cam.ViewProjectionMatrices()
	expected := projection.Mul4(view)
	for i := range expected {
		assert.Equal(t, expected[i], uniform.ViewProjection[i])
	}
}
