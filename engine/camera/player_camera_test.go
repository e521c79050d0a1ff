package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalves/korangar/common"
)

func TestPlayerCameraPositionAtSettledState(t *testing.T) {
	cam := NewPlayerCamera(WithViewAngle(0), WithZoom(400))

	position := cam.Position()
	assert.InDelta(t, 400, position.X(), 1e-3)
	assert.InDelta(t, 400, position.Y(), 1e-3)
	assert.InDelta(t, 0, position.Z(), 1e-3)

	assert.InDelta(t, 400*math.Sqrt2, cam.DistanceTo(mgl32.Vec3{}), 1e-2)
}

func TestPlayerCameraSoftZoomClampsTarget(t *testing.T) {
	cam := NewPlayerCamera(WithViewAngle(0))

	for range 20 {
		cam.SoftZoom(-1000)
	}
	for range 200 {
		cam.Update(0.1)
	}

	// zoom settles on the clamp boundary exactly, never below
	assert.Equal(t, float32(150), cam.Position().Y())

	for range 20 {
		cam.SoftZoom(1e6)
	}
	for range 200 {
		cam.Update(0.1)
	}
	assert.Equal(t, float32(600), cam.Position().Y())
}

func TestPlayerCameraZoomConvergesSmoothly(t *testing.T) {
	cam := NewPlayerCamera(WithViewAngle(0), WithZoom(400))

	cam.SoftZoom(50) // target moves to 500
	previous := cam.Position().Y()
	for range 300 {
		cam.Update(1.0 / 60.0)
		current := cam.Position().Y()
		require.GreaterOrEqual(t, current, previous)
		require.LessOrEqual(t, current, float32(500))
		previous = current
	}
	assert.Equal(t, float32(500), cam.Position().Y())
}

func TestPlayerCameraViewProjectionRoundTrip(t *testing.T) {
	cam := NewPlayerCamera(WithViewAngle(0.7), WithZoom(400), WithFocusPoint(mgl32.Vec3{10, 5, -3}))

	require.NoError(t, cam.GenerateViewProjection(1024, 768))

	screenToWorld, err := cam.ScreenToWorldMatrix()
	require.NoError(t, err)

	view, projection := cam.ViewProjectionMatrices()
	worldToScreen := projection.Mul4(view)

	product := screenToWorld.Mul4(worldToScreen)

	// float32 with a 1/2000 near/far range loses a few digits through the
	// inverse, so the identity only holds to about 1e-2
	identity := mgl32.Ident4()
	for i := range product {
		assert.InDelta(t, identity[i], product[i], 1e-2)
	}
}

func TestPlayerCameraDegenerateWindowSize(t *testing.T) {
	cam := NewPlayerCamera()

	err := cam.GenerateViewProjection(0, 600)
	require.ErrorIs(t, err, ErrDegenerateConfiguration)

	_, err = cam.ScreenToWorldMatrix()
	assert.ErrorIs(t, err, ErrCameraNotReady, "a failed rebuild must not mark the camera ready")
}

func TestPlayerCameraRetainsMatricesOnDegenerateRebuild(t *testing.T) {
	cam := NewPlayerCamera(WithViewAngle(0), WithZoom(400))

	require.NoError(t, cam.GenerateViewProjection(800, 600))
	before, err := cam.ScreenToWorldMatrix()
	require.NoError(t, err)

	require.ErrorIs(t, cam.GenerateViewProjection(800, 0), ErrDegenerateConfiguration)

	after, err := cam.ScreenToWorldMatrix()
	require.NoError(t, err)
	assert.Equal(t, before, after, "the previous valid matrix set must survive a degenerate rebuild")
}

func TestPlayerCameraRejectsUpParallelToView(t *testing.T) {
	// at angle 0 the camera sits at focus + (400, 400, 0), so the view
	// direction is (-1, -1, 0) normalized; an up vector along it makes the
	// look-at basis collapse
	cam := NewPlayerCamera(WithViewAngle(0), WithZoom(400), WithUp(mgl32.Vec3{-1, -1, 0}.Normalize()))

	require.ErrorIs(t, cam.GenerateViewProjection(800, 600), ErrDegenerateConfiguration)

	_, err := cam.ScreenToWorldMatrix()
	assert.ErrorIs(t, err, ErrCameraNotReady, "a collapsed basis must not mark the camera ready")
}

func TestPlayerCameraQueriesBeforeFirstGenerate(t *testing.T) {
	cam := NewPlayerCamera()

	_, err := cam.ScreenToWorldMatrix()
	assert.ErrorIs(t, err, ErrCameraNotReady)

	_, err = cam.Frustum()
	assert.ErrorIs(t, err, ErrCameraNotReady)
}

func TestPlayerCameraBillboardScreenSizeAcrossOrbit(t *testing.T) {
	var signX, signY float32

	for step := range 32 {
		angle := float32(step) * math.Pi / 16
		cam := NewPlayerCamera(WithViewAngle(angle), WithZoom(400))
		require.NoError(t, cam.GenerateViewProjection(800, 600))

		topLeft, bottomRight := cam.BillboardCoordinates(mgl32.Vec3{}, 10)
		_, size, err := cam.ScreenPositionSize(topLeft, bottomRight)
		require.NoError(t, err)
		require.NotZero(t, size.X())
		require.NotZero(t, size.Y())

		if step == 0 {
			signX = size.X()
			signY = size.Y()
			continue
		}
		assert.Equal(t, signX > 0, size.X() > 0, "screen size x sign must be stable across orbit angles")
		assert.Equal(t, signY > 0, size.Y() > 0, "screen size y sign must be stable across orbit angles")
	}
}

func TestPlayerCameraScreenPositionSizeRejectsBehindCamera(t *testing.T) {
	cam := NewPlayerCamera()

	_, _, err := cam.ScreenPositionSize(mgl32.Vec4{0, 0, 0, 0}, mgl32.Vec4{1, 1, 0, 1})
	assert.ErrorIs(t, err, ErrBehindCamera)

	_, _, err = cam.ScreenPositionSize(mgl32.Vec4{0, 0, 0, 1}, mgl32.Vec4{1, 1, 0, -2})
	assert.ErrorIs(t, err, ErrBehindCamera)
}

func TestPlayerCameraFacingDirection(t *testing.T) {
	// angle 0: the camera sits at +x looking back toward the focus, so the
	// view direction points along -x.
	cam := NewPlayerCamera(WithViewAngle(0), WithZoom(400))
	assert.Equal(t, 4, cam.FacingDirection())

	// angle pi/2: the camera sits at -z, view direction points along +z.
	cam = NewPlayerCamera(WithViewAngle(math.Pi/2), WithZoom(400))
	assert.Equal(t, 2, cam.FacingDirection())
}

func TestPlayerCameraTransformMatrix(t *testing.T) {
	cam := NewPlayerCamera()

	transform := common.Transform{
		Position: mgl32.Vec3{1, 2, 3},
		Scale:    mgl32.Vec3{2, 2, 2},
	}
	result := cam.TransformMatrix(transform).Mul4x1(mgl32.Vec4{1, 1, 1, 1})

	assert.InDelta(t, 3, result.X(), 1e-5)
	assert.InDelta(t, 4, result.Y(), 1e-5)
	assert.InDelta(t, 5, result.Z(), 1e-5)
}

func TestPlayerCameraBillboardMatrixPlacesOrigin(t *testing.T) {
	cam := NewPlayerCamera(WithViewAngle(0.3), WithZoom(300))
	require.NoError(t, cam.GenerateViewProjection(800, 600))

	position := mgl32.Vec3{25, -10, 40}
	matrix := cam.BillboardMatrix(position, mgl32.Vec3{}, mgl32.Vec2{5, 5})
	mapped := matrix.Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	assert.InDelta(t, position.X(), mapped.X(), 1e-4)
	assert.InDelta(t, position.Y(), mapped.Y(), 1e-4)
	assert.InDelta(t, position.Z(), mapped.Z(), 1e-4)
}

func TestPlayerCameraFrustumContainsFocus(t *testing.T) {
	focus := mgl32.Vec3{50, 0, 50}
	cam := NewPlayerCamera(WithFocusPoint(focus), WithViewAngle(0), WithZoom(400))
	require.NoError(t, cam.GenerateViewProjection(800, 600))

	frustum, err := cam.Frustum()
	require.NoError(t, err)

	assert.True(t, frustum.ContainsPoint(focus), "the focus point must be inside the view frustum")
	assert.False(t, frustum.ContainsPoint(cam.Position().Add(mgl32.Vec3{100, 0, 0})), "points behind the camera must be culled")
}
