package camera

import (
	"github.com/chewxy/math32"

	"github.com/goalves/korangar/common"
)

// SmoothedValue is a scalar that exponentially approaches a desired target over
// time instead of snapping instantly. Consumers read Current each frame while
// producers nudge Desired; Update advances the approach by the elapsed time.
//
// SmoothedValue is a plain value type with no internal locking. It is intended
// to be owned exclusively by a single camera (or other frame-loop component)
// that serializes access itself.
type SmoothedValue struct {
	current   float32
	desired   float32
	threshold float32
	speed     float32
}

// NewSmoothedValue creates a SmoothedValue with current and desired both set to
// the initial value.
//
// Parameters:
//   - initial: starting value for both current and desired
//   - threshold: settle epsilon; once the remaining gap drops below this, current snaps to desired
//   - speed: per-second approach rate controlling how quickly current converges
//
// Returns:
//   - SmoothedValue: the initialized value
func NewSmoothedValue(initial, threshold, speed float32) SmoothedValue {
	return SmoothedValue{
		current:   initial,
		desired:   initial,
		threshold: threshold,
		speed:     speed,
	}
}

// MoveDesired shifts the target by delta without any clamping.
//
// Parameters:
//   - delta: amount added to the desired value
func (s *SmoothedValue) MoveDesired(delta float32) {
	s.desired += delta
}

// MoveDesiredClamp shifts the target by delta and clamps the result to
// [minimum, maximum].
//
// Parameters:
//   - delta: amount added to the desired value
//   - minimum: lower bound for the clamped target
//   - maximum: upper bound for the clamped target
func (s *SmoothedValue) MoveDesiredClamp(delta, minimum, maximum float32) {
	s.desired = common.Clamp(s.desired+delta, minimum, maximum)
}

// SetDesired replaces the target, leaving current to converge toward it.
//
// Parameters:
//   - desired: the new target value
func (s *SmoothedValue) SetDesired(desired float32) {
	s.desired = desired
}

// Set jumps both current and desired to the given value, skipping smoothing.
// Used when handing control back from the debug camera.
//
// Parameters:
//   - value: the new value for both current and desired
func (s *SmoothedValue) Set(value float32) {
	s.current = value
	s.desired = value
}

// Update advances current toward desired by the elapsed time using exponential
// decay: the remaining gap shrinks by the factor exp(-speed * deltaTime). The
// factor saturates for large time steps, so current never overshoots desired
// and approaches it monotonically. Once the remaining gap is below the settle
// threshold, current snaps to desired exactly.
//
// Parameters:
//   - deltaTime: elapsed time in seconds; non-positive values are ignored
func (s *SmoothedValue) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	gap := s.desired - s.current
	s.current += gap * (1 - math32.Exp(-s.speed*float32(deltaTime)))

	if math32.Abs(s.desired-s.current) < s.threshold {
		s.current = s.desired
	}
}

// Current returns the smoothed value consumers should read.
//
// Returns:
//   - float32: the current value
func (s *SmoothedValue) Current() float32 {
	return s.current
}

// Desired returns the target the value is converging toward.
//
// Returns:
//   - float32: the desired value
func (s *SmoothedValue) Desired() float32 {
	return s.desired
}
