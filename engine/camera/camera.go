package camera

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/goalves/korangar/common"
)

var (
	// ErrDegenerateConfiguration is returned when the camera geometry cannot
	// produce an invertible view-projection matrix, for example a zero-area
	// window or an up vector parallel to the view direction. The camera keeps
	// the matrix set from the last successful rebuild.
	ErrDegenerateConfiguration = errors.New("camera: degenerate configuration")

	// ErrCameraNotReady is returned by matrix queries before the first
	// successful GenerateViewProjection call.
	ErrCameraNotReady = errors.New("camera: view projection has not been generated")

	// ErrBehindCamera is returned by clip-to-screen conversion when a point
	// sits on or behind the camera plane (w near zero or negative), where the
	// perspective divide is undefined.
	ErrBehindCamera = errors.New("camera: position is behind the camera")
)

// wEpsilon is the smallest clip-space w accepted by the perspective divide.
const wEpsilon = 1e-6

// Camera is the capability interface shared by all camera variants. The player
// follow camera and the free-fly debug camera both implement it, so the client
// can swap them at composition time.
//
// The expected per-frame sequence is: feed producer methods on the concrete
// camera (focus point, zoom, rotation or movement), advance smoothing with
// Update, rebuild matrices with GenerateViewProjection, then call query
// methods. Matrix queries before the first successful rebuild return
// ErrCameraNotReady rather than zero-derived garbage.
type Camera interface {
	// GenerateViewProjection recomputes the view, projection, world-to-screen
	// and screen-to-world matrices for the given window size in pixels.
	// On failure the previous valid matrix set is retained.
	//
	// Parameters:
	//   - width, height: window size in pixels (both must be > 0)
	//
	// Returns:
	//   - error: ErrDegenerateConfiguration if the matrices cannot be rebuilt
	GenerateViewProjection(width, height int) error

	// ViewProjectionMatrices returns the last computed view and projection
	// matrices without recomputing them.
	//
	// Returns:
	//   - view: the view matrix
	//   - projection: the projection matrix
	ViewProjectionMatrices() (view, projection mgl32.Mat4)

	// TransformMatrix builds a model matrix for the given transform as
	// translate * rotateX * rotateY * rotateZ * scale. Pure function of its
	// argument, independent of camera state.
	//
	// Parameters:
	//   - transform: position, Euler rotation, and scale
	//
	// Returns:
	//   - mgl32.Mat4: the composed model matrix
	TransformMatrix(transform common.Transform) mgl32.Mat4

	// BillboardMatrix builds a matrix orienting a quad to face the camera,
	// composed as translate(position) * (rotation * translate(origin)) *
	// scale(size.x, size.y, 1). The rotation basis is derived from the up
	// vector and the current view direction.
	//
	// Parameters:
	//   - position: world-space placement of the billboard
	//   - origin: local offset applied inside the billboard rotation
	//   - size: billboard extent along its right and up axes
	//
	// Returns:
	//   - mgl32.Mat4: the billboard matrix
	BillboardMatrix(position, origin mgl32.Vec3, size mgl32.Vec2) mgl32.Mat4

	// BillboardCoordinates computes the two opposite clip-space corners of a
	// camera-facing square of the given half-size centered at position.
	//
	// Parameters:
	//   - position: world-space center of the square
	//   - size: half-extent of the square in world units
	//
	// Returns:
	//   - topLeft: clip-space position of the top-left corner
	//   - bottomRight: clip-space position of the bottom-right corner
	BillboardCoordinates(position mgl32.Vec3, size float32) (topLeft, bottomRight mgl32.Vec4)

	// ScreenPositionSize perspective-divides two clip-space corners into
	// normalized screen space (xy/w + 1) and returns the top-left position
	// together with the size (bottom-right minus top-left).
	//
	// Parameters:
	//   - topLeft: clip-space top-left corner
	//   - bottomRight: clip-space bottom-right corner
	//
	// Returns:
	//   - position: normalized screen position of the top-left corner
	//   - size: normalized screen size
	//   - err: ErrBehindCamera if either corner has w near or below zero
	ScreenPositionSize(topLeft, bottomRight mgl32.Vec4) (position, size mgl32.Vec2, err error)

	// DistanceTo returns the Euclidean distance from the camera position to a
	// world-space point. Pure query, triggers no recomputation.
	//
	// Parameters:
	//   - position: the world-space point
	//
	// Returns:
	//   - float32: the distance in world units
	DistanceTo(position mgl32.Vec3) float32

	// ScreenToWorldMatrix returns the cached inverse of the combined
	// view-projection matrix from the last successful rebuild.
	//
	// Returns:
	//   - mgl32.Mat4: the screen-to-world matrix
	//   - error: ErrCameraNotReady before the first successful rebuild
	ScreenToWorldMatrix() (mgl32.Mat4, error)

	// FacingDirection quantizes the (x, z) components of the view direction
	// into one of the camera's configured number of equal sectors.
	//
	// Returns:
	//   - int: a stable sector index in [0, sectors)
	FacingDirection() int

	// Position returns the camera's current world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// Frustum extracts the six culling planes from the combined
	// view-projection matrix of the last successful rebuild.
	//
	// Returns:
	//   - common.Frustum: the extracted frustum
	//   - error: ErrCameraNotReady before the first successful rebuild
	Frustum() (common.Frustum, error)
}

// matrixSet holds the derived matrices a camera rebuilds each frame. All
// matrices are replaced wholesale by rebuild; there is no incremental mutation
// between frames. The zero value is the "not ready" state.
type matrixSet struct {
	viewMatrix          mgl32.Mat4
	projectionMatrix    mgl32.Mat4
	worldToScreenMatrix mgl32.Mat4
	screenToWorldMatrix mgl32.Mat4
	aspectRatio         float32
	ready               bool
}

// rebuild recomputes the full matrix set for the given rig. On any degenerate
// input (zero-area window, up parallel to the view direction, singular
// combined matrix) the receiver is left untouched and
// ErrDegenerateConfiguration is returned.
//
// Parameters:
//   - position: camera world-space position
//   - focus: world-space point the camera looks at
//   - up: world-space up reference
//   - fov: vertical field of view in radians
//   - near, far: clipping plane distances
//   - width, height: window size in pixels
//
// Returns:
//   - error: ErrDegenerateConfiguration if the matrices cannot be rebuilt
func (m *matrixSet) rebuild(position, focus, up mgl32.Vec3, fov, near, far float32, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrDegenerateConfiguration
	}
	if position.Sub(focus).Len() < wEpsilon {
		return ErrDegenerateConfiguration
	}

	aspectRatio := float32(width) / float32(height)
	projection := mgl32.Perspective(fov, aspectRatio, near, far)
	view := mgl32.LookAtV(position, focus, up)
	worldToScreen := projection.Mul4(view)

	// mgl32 silently returns the zero matrix for singular input, and an up
	// vector parallel to the view direction makes LookAtV emit NaNs, so the
	// determinant check has to happen here. NaN fails every comparison, so
	// the accept condition is phrased positively to reject it as well.
	if det := worldToScreen.Det(); !(math32.Abs(det) >= wEpsilon) {
		return ErrDegenerateConfiguration
	}

	m.aspectRatio = aspectRatio
	m.projectionMatrix = projection
	m.viewMatrix = view
	m.worldToScreenMatrix = worldToScreen
	m.screenToWorldMatrix = worldToScreen.Inv()
	m.ready = true
	return nil
}

// transformMatrix composes translate * rotateX * rotateY * rotateZ * scale.
func transformMatrix(transform common.Transform) mgl32.Mat4 {
	translation := mgl32.Translate3D(transform.Position.X(), transform.Position.Y(), transform.Position.Z())
	rotation := mgl32.HomogRotate3DX(transform.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(transform.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(transform.Rotation.Z()))
	scale := mgl32.Scale3D(transform.Scale.X(), transform.Scale.Y(), transform.Scale.Z())

	return translation.Mul4(rotation).Mul4(scale)
}

// billboardBasis derives the orthonormal right/up basis for a quad facing the
// camera: right = normalize(up x direction), up = normalize(direction x right).
func billboardBasis(up, direction mgl32.Vec3) (right, billboardUp mgl32.Vec3) {
	right = up.Cross(direction).Normalize()
	billboardUp = direction.Cross(right).Normalize()
	return right, billboardUp
}

// billboardMatrix builds translate(position) * (rotation * translate(origin)) * scale(size.x, size.y, 1).
func billboardMatrix(up, direction, position, origin mgl32.Vec3, size mgl32.Vec2) mgl32.Mat4 {
	right, billboardUp := billboardBasis(up, direction)

	rotation := mgl32.Ident4()
	rotation.SetCol(0, right.Vec4(0))
	rotation.SetCol(1, billboardUp.Vec4(0))
	rotation.SetCol(2, direction.Vec4(0))

	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	originMatrix := mgl32.Translate3D(origin.X(), origin.Y(), origin.Z())
	scale := mgl32.Scale3D(size.X(), size.Y(), 1)

	return translation.Mul4(rotation.Mul4(originMatrix)).Mul4(scale)
}

// billboardCoordinates projects the two opposite corners of a camera-facing
// square into clip space through the given world-to-screen matrix.
func billboardCoordinates(worldToScreen mgl32.Mat4, up, direction, position mgl32.Vec3, size float32) (topLeft, bottomRight mgl32.Vec4) {
	right, billboardUp := billboardBasis(up, direction)

	topLeftWorld := position.Add(billboardUp.Sub(right).Mul(size))
	bottomRightWorld := position.Add(right.Sub(billboardUp).Mul(size))

	topLeft = worldToScreen.Mul4x1(topLeftWorld.Vec4(1))
	bottomRight = worldToScreen.Mul4x1(bottomRightWorld.Vec4(1))
	return topLeft, bottomRight
}

// screenPositionSize perspective-divides both corners into normalized screen
// space. Points with w near or below zero are rejected instead of producing
// inf/NaN coordinates.
func screenPositionSize(topLeft, bottomRight mgl32.Vec4) (position, size mgl32.Vec2, err error) {
	if topLeft.W() < wEpsilon || bottomRight.W() < wEpsilon {
		return mgl32.Vec2{}, mgl32.Vec2{}, ErrBehindCamera
	}

	topLeftScreen := clipToScreenSpace(topLeft)
	bottomRightScreen := clipToScreenSpace(bottomRight)

	return topLeftScreen, bottomRightScreen.Sub(topLeftScreen), nil
}

// clipToScreenSpace converts clip-space coordinates to normalized screen space
// as xy/w + 1. Callers must guard w beforehand.
func clipToScreenSpace(clip mgl32.Vec4) mgl32.Vec2 {
	return mgl32.Vec2{
		clip.X()/clip.W() + 1,
		clip.Y()/clip.W() + 1,
	}
}
