package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDirectionSectorCenters(t *testing.T) {
	cases := []struct {
		name      string
		direction mgl32.Vec2
		expected  int
	}{
		{"positive x", mgl32.Vec2{1, 0}, 0},
		{"diagonal", mgl32.Vec2{1, 1}, 1},
		{"positive y", mgl32.Vec2{0, 1}, 2},
		{"negative x", mgl32.Vec2{-1, 0}, 4},
		{"negative y", mgl32.Vec2{0, -1}, 6},
		{"unnormalized", mgl32.Vec2{300, 0}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Direction(tc.direction, 8))
		})
	}
}

func TestDirectionRotationalSymmetry(t *testing.T) {
	const sectors = 8
	sectorSize := 2 * math.Pi / float64(sectors)

	for step := range sectors {
		angle := float64(step) * sectorSize
		direction := mgl32.Vec2{float32(math.Cos(angle)), float32(math.Sin(angle))}
		assert.Equal(t, step, Direction(direction, sectors), "rotating by one sector must shift the index by one")
	}
}

func TestDirectionOppositeDirections(t *testing.T) {
	const sectors = 8
	for _, direction := range []mgl32.Vec2{{1, 0}, {1, 1}, {0, 1}, {-1, 1}} {
		forward := Direction(direction, sectors)
		backward := Direction(direction.Mul(-1), sectors)
		assert.Equal(t, sectors/2, (backward-forward+sectors)%sectors, "opposite directions must map to opposite sectors")
	}
}

func TestDirectionDegenerateInput(t *testing.T) {
	assert.Equal(t, 0, Direction(mgl32.Vec2{}, 8), "the zero vector maps to sector zero")
	assert.Equal(t, 0, Direction(mgl32.Vec2{0, 1}, 1), "fewer than two sectors collapse to a single bucket")
	assert.Equal(t, 0, Direction(mgl32.Vec2{0, 1}, 0))
}
