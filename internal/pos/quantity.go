package pos

import "math"

// Unlimited is the availability reported by items that are not stock-tracked
// (restaurant menu items).
const Unlimited = math.MaxInt32

// Clamp saturates a requested quantity into [0, available].
func Clamp(requested, available int) int {
	if available < 0 {
		available = 0
	}
	return max(0, min(requested, available))
}
