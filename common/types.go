// package common contains common types that are used throughout this client engine. They are not interface-wrapped structs, just plain structs that
// express commonly used data-types.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform describes the placement of an entity in world space.
// This is the unit consumed by Camera.TransformMatrix when building model matrices.
type Transform struct {
	// Position is the world-space translation.
	Position mgl32.Vec3
	// Rotation holds Euler angles in radians, applied in X, Y, Z order.
	Rotation mgl32.Vec3
	// Scale holds per-axis scale factors.
	Scale mgl32.Vec3
}

// NewTransform creates a Transform at the given position with no rotation and unit scale.
//
// Parameters:
//   - position: world-space translation
//
// Returns:
//   - Transform: the initialized transform
func NewTransform(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}
