package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultDirectionSectors is the number of discrete facing directions used by
// sprite selection when no override is configured.
const DefaultDirectionSectors = 8

// Direction quantizes a 2D direction vector into one of `sectors` equal
// angular buckets. Sector 0 is centered on the positive X axis and indices
// increase counter-clockwise, so for 8 sectors opposite directions differ by
// 4 and adjacent directions by 1. The mapping is rotationally symmetric:
// rotating the input by one sector width shifts the index by one.
//
// A zero vector maps to sector 0. Fewer than two sectors collapse to a single
// bucket.
//
// Parameters:
//   - direction: the 2D direction to quantize; does not need to be normalized
//   - sectors: number of equal angular buckets (>= 2)
//
// Returns:
//   - int: a stable sector index in [0, sectors)
func Direction(direction mgl32.Vec2, sectors int) int {
	if sectors < 2 {
		return 0
	}

	angle := math32.Atan2(direction.Y(), direction.X())
	if angle < 0 {
		angle += 2 * math32.Pi
	}

	sectorSize := 2 * math32.Pi / float32(sectors)
	return int((angle+sectorSize/2)/sectorSize) % sectors
}
