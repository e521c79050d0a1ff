package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlyCameraViewProjectionRoundTrip(t *testing.T) {
	cam := NewFlyCamera(WithFlyPosition(mgl32.Vec3{100, 50, 100}))

	require.NoError(t, cam.GenerateViewProjection(1280, 720))

	screenToWorld, err := cam.ScreenToWorldMatrix()
	require.NoError(t, err)

	view, projection := cam.ViewProjectionMatrices()
	product := screenToWorld.Mul4(projection.Mul4(view))

	// float32 with a 1/2000 near/far range loses a few digits through the
	// inverse, so the identity only holds to about 1e-2
	identity := mgl32.Ident4()
	for i := range product {
		assert.InDelta(t, identity[i], product[i], 1e-2)
	}
}

func TestFlyCameraMovement(t *testing.T) {
	cam := NewFlyCamera(WithFlySpeed(250))

	// with the default bearing (yaw pi/2, pitch 0) the view direction points
	// along +z
	cam.MoveForward(1)
	position := cam.Position()
	assert.InDelta(t, 0, position.X(), 1e-2)
	assert.InDelta(t, 0, position.Y(), 1e-2)
	assert.InDelta(t, 250, position.Z(), 1e-2)

	cam.MoveBackward(1)
	assert.InDelta(t, 0, cam.Position().Z(), 1e-2)

	// up is (0, -1, 0), so MoveUp decreases y
	cam.MoveUp(1)
	assert.InDelta(t, -250, cam.Position().Y(), 1e-2)
}

func TestFlyCameraLookAroundPitchClamp(t *testing.T) {
	cam := NewFlyCamera()

	// an absurd vertical drag must not push the view direction parallel to
	// the up vector
	cam.LookAround(mgl32.Vec2{0, 1e9})
	assert.NoError(t, cam.GenerateViewProjection(800, 600))

	cam.LookAround(mgl32.Vec2{0, -2e9})
	assert.NoError(t, cam.GenerateViewProjection(800, 600))
}

func TestFlyCameraQueriesBeforeFirstGenerate(t *testing.T) {
	cam := NewFlyCamera()

	_, err := cam.ScreenToWorldMatrix()
	assert.ErrorIs(t, err, ErrCameraNotReady)

	_, err = cam.Frustum()
	assert.ErrorIs(t, err, ErrCameraNotReady)
}

func TestFlyCameraFacingDirection(t *testing.T) {
	cam := NewFlyCamera()

	// default bearing looks along +z, which lands in the +y sector of the
	// (x, z) quantization plane
	assert.Equal(t, 2, cam.FacingDirection())
}

func TestFlyCameraHandoffFromPlayerCamera(t *testing.T) {
	player := NewPlayerCamera(WithViewAngle(0), WithZoom(400))
	fly := NewFlyCamera()

	fly.SetPosition(player.Position())
	assert.Equal(t, player.Position(), fly.Position())

	require.NoError(t, fly.GenerateViewProjection(800, 600))
}
