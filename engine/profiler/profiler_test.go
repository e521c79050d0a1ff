package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilerMeasuresFrameRateWithoutLogging(t *testing.T) {
	p := NewProfiler()
	require.Zero(t, p.FramesPerSecond())

	// backdate the interval start so one more Tick completes the interval
	p.lastTime = time.Now().Add(-time.Second)
	p.frameCount = 59

	assert.True(t, p.Tick())
	assert.InDelta(t, 60, p.FramesPerSecond(), 5)
}

func TestProfilerTickBelowInterval(t *testing.T) {
	p := NewProfiler()

	assert.False(t, p.Tick())
	assert.Zero(t, p.FramesPerSecond())
}
