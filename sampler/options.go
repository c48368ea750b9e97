package sampler

import (
	"fmt"
	"math"

	"github.com/scmsampler/scm/mcmc"
	"github.com/scmsampler/scm/random"
)

// Options configures one MCMC run. Seed feeds the single *rand.Rand shared
// by the whole run — sampling stays strictly sequential, so there is never
// a second stream to coordinate. LMin defaults to 2, the smallest proposal
// length that can change K, whenever left at zero.
type Options struct {
	Seed int64

	BurnIn            int
	SamplingSteps     int
	SamplingFrequency int

	LMin  int
	LMax  int
	Kind  random.Kind
	Alpha float64

	// Warn, if set, receives human-readable warnings (e.g. an L_max below
	// 2*s_max). It is a plain callback rather than a *zap.Logger so this
	// package stays free of the logging dependency; cmd/mcmc_sampler wires
	// it straight to os.Stderr, whether or not -v is set.
	Warn func(string)
}

func (o Options) resolvedLMin() int {
	if o.LMin >= 2 {
		return o.LMin
	}
	return 2
}

// DefaultSchedule returns ⌊M·ln M⌋, the default used for both burn_in and
// sampling_frequency when the operator leaves them at zero.
func DefaultSchedule(m int) int {
	if m < 2 {
		return 1
	}
	return int(float64(m) * math.Log(float64(m)))
}

// ResolveLMax returns explicit if the operator set one, warning via warn
// when it falls below 2*sMax — that floor is only a recommendation, not an
// invariant the ensemble predicate enforces, so a run below it still
// produces valid samples, just with some facets harder to reach in a
// single proposal — and otherwise falls back to mcmc.DefaultLMax.
func ResolveLMax(explicit, m, sMax int, warn func(string)) int {
	if explicit > 0 {
		if floor := 2 * sMax; explicit < floor && warn != nil {
			warn(fmt.Sprintf("L_max=%d is below 2*s_max=%d; some facets may never become reachable by a single proposal", explicit, floor))
		}
		return explicit
	}
	return mcmc.DefaultLMax(m, sMax)
}
