package common

import "cmp"

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Clamp limits value to the inclusive range [minimum, maximum].
//
// Parameters:
//   - value: the value to limit
//   - minimum: lower bound
//   - maximum: upper bound
//
// Returns:
//   - T: value constrained to [minimum, maximum]
func Clamp[T cmp.Ordered](value, minimum, maximum T) T {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}
