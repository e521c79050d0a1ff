package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

type PlayerCameraOption func(*playerCamera)

// WithFocusPoint sets the initial world-space orbit center.
//
// Parameters:
//   - position: the focus point
//
// Returns:
//   - PlayerCameraOption: a function that sets the focus point
func WithFocusPoint(position mgl32.Vec3) PlayerCameraOption {
	return func(c *playerCamera) {
		c.focusPosition = position
	}
}

// WithUp sets the world-space up reference used for the look-at and billboard
// basis construction. Must not be parallel to the view direction.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - PlayerCameraOption: a function that sets the up vector
func WithUp(up mgl32.Vec3) PlayerCameraOption {
	return func(c *playerCamera) {
		c.lookUpVector = up
	}
}

// WithZoomLimits overrides the clamp range applied to the zoom target.
//
// Parameters:
//   - minimum: closest orbit radius in world units
//   - maximum: farthest orbit radius in world units
//
// Returns:
//   - PlayerCameraOption: a function that sets the zoom limits
func WithZoomLimits(minimum, maximum float32) PlayerCameraOption {
	return func(c *playerCamera) {
		c.minimumZoom = minimum
		c.maximumZoom = maximum
	}
}

// WithZoom jumps the zoom to the given radius, skipping smoothing.
//
// Parameters:
//   - zoom: orbit radius in world units
//
// Returns:
//   - PlayerCameraOption: a function that sets the zoom
func WithZoom(zoom float32) PlayerCameraOption {
	return func(c *playerCamera) {
		c.zoom.Set(zoom)
	}
}

// WithViewAngle jumps the orbit angle to the given value in radians, skipping
// smoothing.
//
// Parameters:
//   - angle: orbit angle in radians
//
// Returns:
//   - PlayerCameraOption: a function that sets the view angle
func WithViewAngle(angle float32) PlayerCameraOption {
	return func(c *playerCamera) {
		c.viewAngle.Set(angle)
	}
}

// WithFieldOfView overrides the vertical field of view.
//
// Parameters:
//   - fov: vertical field of view in radians
//
// Returns:
//   - PlayerCameraOption: a function that sets the field of view
func WithFieldOfView(fov float32) PlayerCameraOption {
	return func(c *playerCamera) {
		c.fov = fov
	}
}

// WithPlanes overrides the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - PlayerCameraOption: a function that sets the clipping planes
func WithPlanes(near, far float32) PlayerCameraOption {
	return func(c *playerCamera) {
		c.near = near
		c.far = far
	}
}

// WithDirectionSectors overrides the number of discrete facing-direction
// buckets reported by FacingDirection.
//
// Parameters:
//   - sectors: number of equal angular buckets (>= 2)
//
// Returns:
//   - PlayerCameraOption: a function that sets the sector count
func WithDirectionSectors(sectors int) PlayerCameraOption {
	return func(c *playerCamera) {
		c.directionSectors = sectors
	}
}
