package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothedValueConvergesMonotonically(t *testing.T) {
	value := NewSmoothedValue(0, 0.001, 5)
	value.MoveDesired(10)

	previous := value.Current()
	for range 1000 {
		value.Update(1.0 / 60.0)
		current := value.Current()
		require.GreaterOrEqual(t, current, previous, "current must never move away from desired")
		require.LessOrEqual(t, current, float32(10), "current must never overshoot desired")
		previous = current
	}

	assert.Equal(t, float32(10), value.Current(), "current should settle exactly on desired")
}

func TestSmoothedValueNoOvershootForLargeTimeSteps(t *testing.T) {
	value := NewSmoothedValue(0, 0.001, 5)
	value.MoveDesired(-250)

	value.Update(100)
	assert.Equal(t, float32(-250), value.Current(), "a huge time step saturates and settles without overshoot")
}

func TestSmoothedValueVaryingTimeSteps(t *testing.T) {
	value := NewSmoothedValue(100, 0.01, 15)
	value.MoveDesired(-60)

	steps := []float64{0.016, 0.2, 0.004, 1.5, 0.033, 0.008}
	previous := value.Current()
	for _, dt := range steps {
		value.Update(dt)
		require.LessOrEqual(t, value.Current(), previous)
		require.GreaterOrEqual(t, value.Current(), float32(40))
		previous = value.Current()
	}
}

func TestSmoothedValueMoveDesiredClamp(t *testing.T) {
	value := NewSmoothedValue(400, 0.01, 5)

	value.MoveDesiredClamp(-2000, 150, 600)
	assert.Equal(t, float32(150), value.Desired())

	for range 50 {
		value.MoveDesiredClamp(-2000, 150, 600)
	}
	assert.Equal(t, float32(150), value.Desired(), "repeated input must not push the target below the minimum")

	value.MoveDesiredClamp(1e6, 150, 600)
	assert.Equal(t, float32(600), value.Desired())
}

func TestSmoothedValueSetJumpsBothValues(t *testing.T) {
	value := NewSmoothedValue(0, 0.01, 5)
	value.MoveDesired(100)
	value.Update(0.016)

	value.Set(42)
	assert.Equal(t, float32(42), value.Current())
	assert.Equal(t, float32(42), value.Desired())
}

func TestSmoothedValueIgnoresNonPositiveTimeSteps(t *testing.T) {
	value := NewSmoothedValue(5, 0.01, 5)
	value.MoveDesired(10)

	value.Update(0)
	assert.Equal(t, float32(5), value.Current())

	value.Update(-1)
	assert.Equal(t, float32(5), value.Current())
}
