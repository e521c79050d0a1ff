package world

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/goalves/korangar/common"
	"github.com/goalves/korangar/engine/camera"
)

// SoundWorld owns the registered sound sources and recomputes their audible
// gain, cycle triggers, and marker visibility each frame from the active
// camera. Thread-safe for concurrent access.
type SoundWorld interface {
	// Add registers a sound source.
	//
	// Parameters:
	//   - source: the source to register
	//
	// Returns:
	//   - MarkerIdentifier: the identifier assigned to the source's marker
	Add(source *SoundSource) MarkerIdentifier

	// Count returns the number of registered sources.
	//
	// Returns:
	//   - int: the source count
	Count() int

	// Offset translates every registered source, e.g. when the map shifts.
	//
	// Parameters:
	//   - delta: the translation to apply
	Offset(delta mgl32.Vec3)

	// Update recomputes per-source gain, visibility, and cycle triggers for
	// the frame. The per-source work fans out over the worker pool.
	//
	// Parameters:
	//   - cam: the active camera; its matrices must already be generated
	//   - deltaTime: elapsed time in seconds
	//
	// Returns:
	//   - error: error if the camera cannot provide a frustum yet
	Update(cam camera.Camera, deltaTime float64) error

	// Gain returns the audible gain computed for a source by the last Update,
	// in [0, Volume].
	//
	// Parameters:
	//   - name: the source name
	//
	// Returns:
	//   - float32: the gain, 0 for unknown sources
	Gain(name string) float32

	// VisibleMarkers returns the identifiers of all sources inside the camera
	// frustum as of the last Update.
	//
	// Returns:
	//   - []MarkerIdentifier: the visible markers
	VisibleMarkers() []MarkerIdentifier

	// Triggered returns the names of sources whose cycle elapsed during the
	// last Update, for the audio layer to restart playback.
	//
	// Returns:
	//   - []string: the triggered source names
	Triggered() []string

	// RenderMarkers draws the visible sources' debug markers.
	//
	// Parameters:
	//   - renderer: the marker renderer
	//   - cam: the active camera
	//   - hovered: the marker currently under the mouse, if any
	RenderMarkers(renderer MarkerRenderer, cam camera.Camera, hovered *MarkerIdentifier)
}

type soundWorld struct {
	mu *sync.RWMutex

	sources []*SoundSource

	// Per-frame results, parallel to sources.
	gains     []float32
	visible   []bool
	triggered []string

	// pool manages a bounded set of reusable goroutines for the per-source
	// update fan-out. Workers persist across frames.
	pool        worker.DynamicWorkerPool
	poolWorkers int
}

var _ SoundWorld = &soundWorld{}

// NewSoundWorld creates a SoundWorld.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - SoundWorld: the newly created world
func NewSoundWorld(options ...SoundWorldOption) SoundWorld {
	w := &soundWorld{
		mu:          &sync.RWMutex{},
		poolWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(w)
	}

	// Queue size of 256 accommodates typical map source counts with headroom.
	w.pool = worker.NewDynamicWorkerPool(w.poolWorkers, 256, 1*time.Second)
	return w
}

func (w *soundWorld) Add(source *SoundSource) MarkerIdentifier {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.sources = append(w.sources, source)
	w.gains = append(w.gains, 0)
	w.visible = append(w.visible, false)
	return MarkerIdentifier{Kind: MarkerKindSoundSource, Index: len(w.sources) - 1}
}

func (w *soundWorld) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.sources)
}

func (w *soundWorld) Offset(delta mgl32.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, source := range w.sources {
		source.Offset(delta)
	}
}

func (w *soundWorld) Update(cam camera.Camera, deltaTime float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	frustum, err := cam.Frustum()
	if err != nil {
		return fmt.Errorf("failed to update sound world: %w", err)
	}
	listener := cam.Position()

	w.triggered = w.triggered[:0]
	dt := float32(deltaTime)

	// Each task owns disjoint slice indices, so no locking inside the tasks.
	// A WaitGroup provides the frame barrier; pool.Wait() blocks until workers
	// idle-exit which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	triggeredIndices := make([]bool, len(w.sources))
	taskID := 0
	for i, source := range w.sources {
		wg.Add(1)
		idx := i
		src := source
		id := taskID
		taskID++
		w.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				if src.Range > 0 {
					distance := src.Position.Sub(listener).Len()
					attenuation := common.Clamp(1-distance/src.Range, 0, 1)
					w.gains[idx] = src.Volume * attenuation
				} else {
					w.gains[idx] = 0
				}

				w.visible[idx] = frustum.ContainsSphere(src.Position, src.boundingRadius())

				if src.Cycle > 0 {
					src.cycleTimer += dt
					if src.cycleTimer >= src.Cycle {
						src.cycleTimer -= src.Cycle
						triggeredIndices[idx] = true
					}
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, fired := range triggeredIndices {
		if fired {
			w.triggered = append(w.triggered, w.sources[i].Name)
		}
	}
	return nil
}

func (w *soundWorld) Gain(name string) float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for i, source := range w.sources {
		if source.Name == name {
			return w.gains[i]
		}
	}
	return 0
}

func (w *soundWorld) VisibleMarkers() []MarkerIdentifier {
	w.mu.RLock()
	defer w.mu.RUnlock()

	markers := make([]MarkerIdentifier, 0, len(w.sources))
	for i, isVisible := range w.visible {
		if isVisible {
			markers = append(markers, MarkerIdentifier{Kind: MarkerKindSoundSource, Index: i})
		}
	}
	return markers
}

func (w *soundWorld) Triggered() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]string, len(w.triggered))
	copy(out, w.triggered)
	return out
}

func (w *soundWorld) RenderMarkers(renderer MarkerRenderer, cam camera.Camera, hovered *MarkerIdentifier) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for i, isVisible := range w.visible {
		if !isVisible {
			continue
		}
		identifier := MarkerIdentifier{Kind: MarkerKindSoundSource, Index: i}
		isHovered := hovered != nil && *hovered == identifier
		w.sources[i].RenderMarker(renderer, cam, identifier, isHovered)
	}
}

// SoundWorldOption is a functional option for configuring a SoundWorld.
type SoundWorldOption func(*soundWorld)

// WithUpdateWorkers overrides the worker pool size used for the per-source
// update fan-out.
//
// Parameters:
//   - workers: the worker count, minimum 1
//
// Returns:
//   - SoundWorldOption: option function to apply
func WithUpdateWorkers(workers int) SoundWorldOption {
	return func(w *soundWorld) {
		w.poolWorkers = max(workers, 1)
	}
}

// WithSources registers sources during construction.
//
// Parameters:
//   - sources: the sources to register
//
// Returns:
//   - SoundWorldOption: option function to apply
func WithSources(sources ...*SoundSource) SoundWorldOption {
	return func(w *soundWorld) {
		for _, source := range sources {
			w.sources = append(w.sources, source)
			w.gains = append(w.gains, 0)
			w.visible = append(w.visible, false)
		}
	}
}
