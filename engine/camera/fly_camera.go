package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/goalves/korangar/common"
)

const (
	// DefaultFlySpeed is the debug camera movement speed in world units per second.
	DefaultFlySpeed = 250.0
	// DefaultLookSensitivity scales look-around input deltas into radians.
	DefaultLookSensitivity = 0.002
	// maxPitch keeps the debug camera away from the poles where the up vector
	// and view direction become parallel.
	maxPitch = math32.Pi/2 - 0.1
)

// FlyCamera is the free-fly debug camera. It shares the Camera capability
// interface with PlayerCamera and is selected at composition time, so debug
// fly-through needs no conditional compilation in consumers.
type FlyCamera interface {
	Camera

	// LookAround rotates the view by a mouse movement delta. The horizontal
	// component adjusts yaw, the vertical component adjusts pitch (clamped
	// short of straight up/down).
	//
	// Parameters:
	//   - delta: mouse movement in pixels
	LookAround(delta mgl32.Vec2)

	// MoveForward moves along the view direction.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds
	MoveForward(deltaTime float64)

	// MoveBackward moves against the view direction.
	MoveBackward(deltaTime float64)

	// MoveLeft strafes along the negative local right axis.
	MoveLeft(deltaTime float64)

	// MoveRight strafes along the local right axis.
	MoveRight(deltaTime float64)

	// MoveUp moves along the world up reference.
	MoveUp(deltaTime float64)

	// MoveDown moves against the world up reference.
	MoveDown(deltaTime float64)

	// SetPosition places the camera directly, typically when taking over from
	// the player camera.
	//
	// Parameters:
	//   - position: the new world-space position
	SetPosition(position mgl32.Vec3)
}

type flyCamera struct {
	mu *sync.Mutex

	position     mgl32.Vec3
	lookUpVector mgl32.Vec3

	yaw   float32
	pitch float32

	moveSpeed       float32
	lookSensitivity float32

	fov  float32
	near float32
	far  float32

	directionSectors int

	matrices matrixSet
}

var _ FlyCamera = &flyCamera{}

// NewFlyCamera creates a free-fly debug camera at the origin, looking along
// the same initial bearing as the player camera and sharing its projection
// settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - FlyCamera: the newly created camera
func NewFlyCamera(options ...FlyCameraOption) FlyCamera {
	c := &flyCamera{
		mu:               &sync.Mutex{},
		position:         mgl32.Vec3{0, 0, 0},
		lookUpVector:     mgl32.Vec3{0, -1, 0},
		yaw:              math32.Pi / 2,
		pitch:            0,
		moveSpeed:        DefaultFlySpeed,
		lookSensitivity:  DefaultLookSensitivity,
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

func (c *flyCamera) LookAround(delta mgl32.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw += delta.X() * c.lookSensitivity
	c.pitch = common.Clamp(c.pitch+delta.Y()*c.lookSensitivity, -maxPitch, maxPitch)
}

func (c *flyCamera) MoveForward(deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.viewDirection(), deltaTime)
}

func (c *flyCamera) MoveBackward(deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.viewDirection().Mul(-1), deltaTime)
}

func (c *flyCamera) MoveLeft(deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.rightVector().Mul(-1), deltaTime)
}

func (c *flyCamera) MoveRight(deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.rightVector(), deltaTime)
}

func (c *flyCamera) MoveUp(deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.lookUpVector, deltaTime)
}

func (c *flyCamera) MoveDown(deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.lookUpVector.Mul(-1), deltaTime)
}

func (c *flyCamera) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
}

func (c *flyCamera) GenerateViewProjection(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	focus := c.position.Add(c.viewDirection())
	return c.matrices.rebuild(c.position, focus, c.lookUpVector, c.fov, c.near, c.far, width, height)
}

func (c *flyCamera) ViewProjectionMatrices() (view, projection mgl32.Mat4) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matrices.viewMatrix, c.matrices.projectionMatrix
}

func (c *flyCamera) TransformMatrix(transform common.Transform) mgl32.Mat4 {
	return transformMatrix(transform)
}

func (c *flyCamera) BillboardMatrix(position, origin mgl32.Vec3, size mgl32.Vec2) mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return billboardMatrix(c.lookUpVector, c.viewDirection(), position, origin, size)
}

func (c *flyCamera) BillboardCoordinates(position mgl32.Vec3, size float32) (topLeft, bottomRight mgl32.Vec4) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return billboardCoordinates(c.matrices.worldToScreenMatrix, c.lookUpVector, c.viewDirection(), position, size)
}

func (c *flyCamera) ScreenPositionSize(topLeft, bottomRight mgl32.Vec4) (position, size mgl32.Vec2, err error) {
	return screenPositionSize(topLeft, bottomRight)
}

func (c *flyCamera) DistanceTo(position mgl32.Vec3) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position.Sub(position).Len()
}

func (c *flyCamera) ScreenToWorldMatrix() (mgl32.Mat4, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.matrices.ready {
		return mgl32.Mat4{}, ErrCameraNotReady
	}
	return c.matrices.screenToWorldMatrix, nil
}

func (c *flyCamera) FacingDirection() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	direction := c.viewDirection()
	return Direction(mgl32.Vec2{direction.X(), direction.Z()}, c.directionSectors)
}

func (c *flyCamera) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *flyCamera) Frustum() (common.Frustum, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.matrices.ready {
		return common.Frustum{}, ErrCameraNotReady
	}
	return common.ExtractFrustumFromMatrix(c.matrices.worldToScreenMatrix), nil
}

// viewDirection derives the unit view direction from yaw and pitch, matching
// the player camera's bearing convention. Caller must hold the mutex.
func (c *flyCamera) viewDirection() mgl32.Vec3 {
	cosPitch := math32.Cos(c.pitch)
	return mgl32.Vec3{
		-cosPitch * math32.Cos(c.yaw),
		-math32.Sin(c.pitch),
		cosPitch * math32.Sin(c.yaw),
	}
}

// rightVector returns the local right axis derived from the up reference and
// the view direction. Caller must hold the mutex.
func (c *flyCamera) rightVector() mgl32.Vec3 {
	return c.lookUpVector.Cross(c.viewDirection()).Normalize()
}

// translate moves the camera along the given direction scaled by the move
// speed and elapsed time. Caller must hold the mutex.
func (c *flyCamera) translate(direction mgl32.Vec3, deltaTime float64) {
	c.position = c.position.Add(direction.Mul(c.moveSpeed * float32(deltaTime)))
}
