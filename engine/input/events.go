// package input defines the semantic user events the client reacts to and the
// mapping from raw device input (key codes, scroll deltas, mouse drags) onto
// them. Consumers such as the camera and the interface never see raw device
// events, only these.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// UserEvent is the sealed union of all semantic input events. The concrete
// event types below are the only implementations.
type UserEvent interface {
	isUserEvent()
}

// CameraZoom nudges the player camera zoom target. Delta is a normalized
// scroll step, positive to zoom out.
type CameraZoom struct {
	Delta float32
}

// CameraRotate nudges the player camera orbit angle target. Delta is a
// normalized horizontal drag step.
type CameraRotate struct {
	Delta float32
}

// ToggleShowFramesPerSecond toggles the frame rate overlay.
type ToggleShowFramesPerSecond struct{}

// ToggleShowMap toggles map geometry rendering.
type ToggleShowMap struct{}

// ToggleShowObjects toggles object rendering.
type ToggleShowObjects struct{}

// ToggleShowAmbientLight toggles the ambient light contribution.
type ToggleShowAmbientLight struct{}

// ToggleShowDirectionalLight toggles the directional light contribution.
type ToggleShowDirectionalLight struct{}

// ToggleShowPointLights toggles point light rendering.
type ToggleShowPointLights struct{}

// ToggleShowParticleLights toggles particle light rendering.
type ToggleShowParticleLights struct{}

// MoveInterface drags an interface window by the given screen-space offset.
type MoveInterface struct {
	Window int
	Offset mgl32.Vec2
}

// ToggleUseDebugCamera switches between the player camera and the free-fly
// debug camera.
type ToggleUseDebugCamera struct{}

// CameraLookAround rotates the debug camera by a mouse movement delta.
type CameraLookAround struct {
	Offset mgl32.Vec2
}

// CameraMoveForward moves the debug camera along its view direction while held.
type CameraMoveForward struct{}

// CameraMoveBackward moves the debug camera against its view direction while held.
type CameraMoveBackward struct{}

// CameraMoveLeft strafes the debug camera left while held.
type CameraMoveLeft struct{}

// CameraMoveRight strafes the debug camera right while held.
type CameraMoveRight struct{}

// CameraMoveUp raises the debug camera while held.
type CameraMoveUp struct{}

// CameraMoveDown lowers the debug camera while held.
type CameraMoveDown struct{}

func (CameraZoom) isUserEvent()                 {}
func (CameraRotate) isUserEvent()               {}
func (ToggleShowFramesPerSecond) isUserEvent()  {}
func (ToggleShowMap) isUserEvent()              {}
func (ToggleShowObjects) isUserEvent()          {}
func (ToggleShowAmbientLight) isUserEvent()     {}
func (ToggleShowDirectionalLight) isUserEvent() {}
func (ToggleShowPointLights) isUserEvent()      {}
func (ToggleShowParticleLights) isUserEvent()   {}
func (MoveInterface) isUserEvent()              {}
func (ToggleUseDebugCamera) isUserEvent()       {}
func (CameraLookAround) isUserEvent()           {}
func (CameraMoveForward) isUserEvent()          {}
func (CameraMoveBackward) isUserEvent()         {}
func (CameraMoveLeft) isUserEvent()             {}
func (CameraMoveRight) isUserEvent()            {}
func (CameraMoveUp) isUserEvent()               {}
func (CameraMoveDown) isUserEvent()             {}
