// package world holds the client's world entities. For now that is sound
// sources: positioned emitters whose audible gain and debug-marker visibility
// are recomputed every frame from the active camera.
package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/goalves/korangar/engine/camera"
)

// MarkerKind distinguishes the entity classes debug markers can point at.
type MarkerKind int

const (
	MarkerKindObject MarkerKind = iota
	MarkerKindLightSource
	MarkerKindSoundSource
	MarkerKindEffectSource
)

// MarkerIdentifier addresses a single entity for debug-marker rendering and
// hover lookup.
type MarkerIdentifier struct {
	Kind  MarkerKind
	Index int
}

// MarkerRenderer is the external contract for drawing debug markers.
type MarkerRenderer interface {
	// RenderMarker draws one marker at a world position.
	//
	// Parameters:
	//   - cam: the active camera, used to project the marker
	//   - identifier: which entity the marker belongs to
	//   - position: the marker's world position
	//   - hovered: true when the mouse is over the marker
	RenderMarker(cam camera.Camera, identifier MarkerIdentifier, position mgl32.Vec3, hovered bool)
}

// SoundSource is a positioned sound emitter loaded from map data. Width and
// Height are the emitter's extent in map tiles; Range is the audible radius in
// world units and Cycle the repeat interval in seconds (0 for one-shot data).
type SoundSource struct {
	Name      string
	SoundFile string
	Position  mgl32.Vec3
	Volume    float32
	Width     int
	Height    int
	Range     float32
	Cycle     float32

	// cycleTimer accumulates toward Cycle; owned by SoundWorld.Update.
	cycleTimer float32
}

// Offset translates the source by a world-space delta. Used when the owning
// map is shifted.
//
// Parameters:
//   - delta: the translation to apply
func (s *SoundSource) Offset(delta mgl32.Vec3) {
	s.Position = s.Position.Add(delta)
}

// RenderMarker draws the source's debug marker.
//
// Parameters:
//   - renderer: the marker renderer
//   - cam: the active camera
//   - identifier: the marker identifier assigned by the world
//   - hovered: true when the mouse is over the marker
func (s *SoundSource) RenderMarker(renderer MarkerRenderer, cam camera.Camera, identifier MarkerIdentifier, hovered bool) {
	renderer.RenderMarker(cam, identifier, s.Position, hovered)
}

// boundingRadius is the sphere used for marker frustum culling, derived from
// the emitter's tile extent.
func (s *SoundSource) boundingRadius() float32 {
	extent := max(s.Width, s.Height)
	if extent < 1 {
		extent = 1
	}
	return float32(extent)
}
