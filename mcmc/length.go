package mcmc

// DefaultLMax computes the default proposal-length ceiling:
// max(floor(0.1*m), 2*sMax), additionally clamped to m itself since a
// proposal can never rewire more edges than the complex has, and floored
// at 2 — see DESIGN.md for the rationale.
func DefaultLMax(m, sMax int) int {
	lMax := m / 10
	if twoSMax := 2 * sMax; twoSMax > lMax {
		lMax = twoSMax
	}
	if lMax > m {
		lMax = m
	}
	if lMax < 2 {
		lMax = 2
	}
	return lMax
}
