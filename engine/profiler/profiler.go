package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for performance
// monitoring. Stats go to the log at a configurable interval, and the most
// recent frame rate stays queryable for the interface FPS overlay.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration

	framesPerSecond float64
	logStats        bool

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a Profiler reporting once per second.
//
// Returns:
//   - *Profiler: the newly created profiler
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// FramesPerSecond returns the frame rate measured over the last completed
// interval. Zero until the first interval elapses.
//
// Returns:
//   - float64: the measured frame rate
func (p *Profiler) FramesPerSecond() float64 {
	return p.framesPerSecond
}

// SetLogging enables or disables the periodic summary log line. Frame rate
// measurement continues either way.
//
// Parameters:
//   - enabled: if true, Tick logs a summary once per interval
func (p *Profiler) SetLogging(enabled bool) {
	p.logStats = enabled
}

// Tick should be called once per rendered frame. When the update interval has
// elapsed it recomputes the frame rate, samples memory statistics, and logs a
// summary line if logging is enabled.
//
// Returns:
//   - bool: true if the interval elapsed and stats were recomputed
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	p.framesPerSecond = float64(p.frameCount) / elapsed.Seconds()
	p.frameCount = 0
	p.lastTime = currentTime

	if !p.logStats {
		return true
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		p.framesPerSecond, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
