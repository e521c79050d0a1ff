package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/goalves/korangar/common"
)

const (
	// ZoomSpeed scales zoom input deltas into world units.
	ZoomSpeed = 2.0
	// RotationSpeed scales rotation input deltas into radians.
	RotationSpeed = 0.02
	// MinimumZoom is the closest orbit radius in world units.
	MinimumZoom = 150.0
	// MaximumZoom is the farthest orbit radius in world units.
	MaximumZoom = 600.0
	// DefaultZoom is the initial orbit radius in world units.
	DefaultZoom = 400.0

	// DefaultFieldOfView is the fixed vertical field of view in radians (~15 degrees).
	DefaultFieldOfView = 0.2617
	// DefaultNearPlane is the near clipping plane distance.
	DefaultNearPlane = 1.0
	// DefaultFarPlane is the far clipping plane distance.
	DefaultFarPlane = 2000.0
)

// PlayerCamera is the smoothed follow camera used during normal play. It
// orbits a focus point (the player position) at a smoothed distance and angle,
// sitting above the focus by an amount equal to the zoom distance. This is a
// deliberate isometric-style rig, not a true spherical orbit.
type PlayerCamera interface {
	Camera

	// SetFocusPoint sets the world-space point the camera orbits and looks at.
	// Typically called once per simulation tick to track the player entity.
	//
	// Parameters:
	//   - position: the new focus point
	SetFocusPoint(position mgl32.Vec3)

	// SoftZoom nudges the zoom target by factor * ZoomSpeed. The target is
	// clamped to the configured zoom limits; the current zoom converges to it
	// over the following updates.
	//
	// Parameters:
	//   - factor: normalized zoom input, typically a scroll delta
	SoftZoom(factor float32)

	// SoftRotate nudges the rotation target by delta * RotationSpeed. The
	// angle is unclamped and wraps naturally through the trigonometric
	// functions.
	//
	// Parameters:
	//   - delta: normalized rotation input
	SoftRotate(delta float32)

	// Update advances the zoom and rotation smoothing by the elapsed time.
	// Must be called once per simulation tick before GenerateViewProjection.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds
	Update(deltaTime float64)
}

type playerCamera struct {
	mu *sync.Mutex

	focusPosition mgl32.Vec3
	lookUpVector  mgl32.Vec3

	viewAngle SmoothedValue
	zoom      SmoothedValue

	minimumZoom float32
	maximumZoom float32

	fov  float32
	near float32
	far  float32

	directionSectors int

	matrices matrixSet
}

var _ PlayerCamera = &playerCamera{}

// NewPlayerCamera creates a player camera with the default isometric rig:
// focus at the origin, zoom at DefaultZoom, view angle at pi/2, up vector
// (0, -1, 0), and the fixed ~15 degree field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - PlayerCamera: the newly created camera
func NewPlayerCamera(options ...PlayerCameraOption) PlayerCamera {
	c := &playerCamera{
		mu:               &sync.Mutex{},
		focusPosition:    mgl32.Vec3{0, 0, 0},
		lookUpVector:     mgl32.Vec3{0, -1, 0},
		viewAngle:        NewSmoothedValue(math32.Pi/2, 0.01, 15.0),
		zoom:             NewSmoothedValue(DefaultZoom, 0.01, 5.0),
		minimumZoom:      MinimumZoom,
		maximumZoom:      MaximumZoom,
		fov:              DefaultFieldOfView,
		near:             DefaultNearPlane,
		far:              DefaultFarPlane,
		directionSectors: DefaultDirectionSectors,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *playerCamera) SetFocusPoint(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focusPosition = position
}

func (c *playerCamera) SoftZoom(factor float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom.MoveDesiredClamp(factor*ZoomSpeed, c.minimumZoom, c.maximumZoom)
}

func (c *playerCamera) SoftRotate(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewAngle.MoveDesired(delta * RotationSpeed)
}

func (c *playerCamera) Update(deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom.Update(deltaTime)
	c.viewAngle.Update(deltaTime)
}

func (c *playerCamera) GenerateViewProjection(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matrices.rebuild(c.cameraPosition(), c.focusPosition, c.lookUpVector, c.fov, c.near, c.far, width, height)
}

func (c *playerCamera) ViewProjectionMatrices() (view, projection mgl32.Mat4) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matrices.viewMatrix, c.matrices.projectionMatrix
}

func (c *playerCamera) TransformMatrix(transform common.Transform) mgl32.Mat4 {
	return transformMatrix(transform)
}

func (c *playerCamera) BillboardMatrix(position, origin mgl32.Vec3, size mgl32.Vec2) mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return billboardMatrix(c.lookUpVector, c.viewDirection(), position, origin, size)
}

func (c *playerCamera) BillboardCoordinates(position mgl32.Vec3, size float32) (topLeft, bottomRight mgl32.Vec4) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return billboardCoordinates(c.matrices.worldToScreenMatrix, c.lookUpVector, c.viewDirection(), position, size)
}

func (c *playerCamera) ScreenPositionSize(topLeft, bottomRight mgl32.Vec4) (position, size mgl32.Vec2, err error) {
	return screenPositionSize(topLeft, bottomRight)
}

func (c *playerCamera) DistanceTo(position mgl32.Vec3) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cameraPosition().Sub(position).Len()
}

func (c *playerCamera) ScreenToWorldMatrix() (mgl32.Mat4, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.matrices.ready {
		return mgl32.Mat4{}, ErrCameraNotReady
	}
	return c.matrices.screenToWorldMatrix, nil
}

func (c *playerCamera) FacingDirection() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	direction := c.viewDirection()
	return Direction(mgl32.Vec2{direction.X(), direction.Z()}, c.directionSectors)
}

func (c *playerCamera) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cameraPosition()
}

func (c *playerCamera) Frustum() (common.Frustum, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.matrices.ready {
		return common.Frustum{}, ErrCameraNotReady
	}
	return common.ExtractFrustumFromMatrix(c.matrices.worldToScreenMatrix), nil
}

// cameraPosition derives the camera's world position from the smoothed orbit
// state: the camera circles the focus at the zoom radius while always sitting
// above it by the same amount. Caller must hold the mutex.
func (c *playerCamera) cameraPosition() mgl32.Vec3 {
	zoom := c.zoom.Current()
	viewAngle := c.viewAngle.Current()
	return mgl32.Vec3{
		c.focusPosition.X() + zoom*math32.Cos(viewAngle),
		c.focusPosition.Y() + zoom,
		c.focusPosition.Z() + -zoom*math32.Sin(viewAngle),
	}
}

// viewDirection returns the normalized direction from the camera position to
// the focus point. Caller must hold the mutex.
func (c *playerCamera) viewDirection() mgl32.Vec3 {
	return c.focusPosition.Sub(c.cameraPosition()).Normalize()
}
