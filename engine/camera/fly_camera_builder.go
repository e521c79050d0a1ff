package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

type FlyCameraOption func(*flyCamera)

// WithFlyPosition sets the initial world-space position.
//
// Parameters:
//   - position: the starting position
//
// Returns:
//   - FlyCameraOption: a function that sets the position
func WithFlyPosition(position mgl32.Vec3) FlyCameraOption {
	return func(c *flyCamera) {
		c.position = position
	}
}

// WithFlySpeed overrides the movement speed in world units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - FlyCameraOption: a function that sets the movement speed
func WithFlySpeed(speed float32) FlyCameraOption {
	return func(c *flyCamera) {
		c.moveSpeed = speed
	}
}

// WithLookSensitivity overrides the look-around sensitivity in radians per
// pixel of mouse movement.
//
// Parameters:
//   - sensitivity: radians per pixel
//
// Returns:
//   - FlyCameraOption: a function that sets the sensitivity
func WithLookSensitivity(sensitivity float32) FlyCameraOption {
	return func(c *flyCamera) {
		c.lookSensitivity = sensitivity
	}
}

// WithFlyUp sets the world-space up reference.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - FlyCameraOption: a function that sets the up vector
func WithFlyUp(up mgl32.Vec3) FlyCameraOption {
	return func(c *flyCamera) {
		c.lookUpVector = up
	}
}

// WithFlyProjection overrides the field of view and clipping planes.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - FlyCameraOption: a function that sets the projection parameters
func WithFlyProjection(fov, near, far float32) FlyCameraOption {
	return func(c *flyCamera) {
		c.fov = fov
		c.near = near
		c.far = far
	}
}
