package sampler

import (
	"fmt"
	"math/rand"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/mcmc"
	"github.com/scmsampler/scm/random"
	"github.com/scmsampler/scm/rejection"
)

// Emitter is called once per sample the driver decides to emit. Neither
// RunMCMC nor RunRejection know or care what an Emitter does with k —
// cmd/mcmc_sampler and cmd/rejection_sampler each supply a closure over an
// ioformat.Writer instead of the driver branching on caller identity.
type Emitter interface {
	Emit(k *complex.Complex) error
}

// EmitterFunc adapts a plain function to Emitter.
type EmitterFunc func(k *complex.Complex) error

func (f EmitterFunc) Emit(k *complex.Complex) error { return f(k) }

// Report summarizes one run's accept/reject bookkeeping, printed by both
// cmd binaries under -v.
type Report struct {
	Attempts        int
	Accepted        int
	AcceptanceRatio float64
}

func (r *Report) record(accepted bool) {
	r.Attempts++
	if accepted {
		r.Accepted++
	}
}

func (r *Report) finalize() {
	if r.Attempts > 0 {
		r.AcceptanceRatio = float64(r.Accepted) / float64(r.Attempts)
	}
}

// RunMCMC drives the burn-in loop (accepted proposals only count toward
// opts.BurnIn) followed by the sampling loop (opts.SamplingSteps *
// opts.SamplingFrequency attempts, emitting k every
// opts.SamplingFrequency-th attempt regardless of whether that attempt was
// accepted, since the current state after a rejection is still a valid
// sample — the rewiring kernel never leaves k in a non-simplicial state).
// k is mutated in place; RunMCMC does not clone it.
func RunMCMC(k *complex.Complex, opts Options, emit Emitter) (Report, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	degrees := make([]int, k.N())
	for v := 0; v < k.N(); v++ {
		degrees[v] = k.Degree(v)
	}

	kernel := &mcmc.Kernel{
		K:       k,
		Vertex:  random.NewPreferentialPicker(degrees),
		Lengths: random.NewProposalLengthDistribution(opts.resolvedLMin(), opts.LMax, opts.Kind, opts.Alpha),
		RNG:     rng,
	}

	for accepted := 0; accepted < opts.BurnIn; {
		ok, _ := kernel.Step()
		if ok {
			accepted++
		}
	}

	var report Report
	total := opts.SamplingSteps * opts.SamplingFrequency
	for attempt := 1; attempt <= total; attempt++ {
		ok, _ := kernel.Step()
		report.record(ok)
		if opts.SamplingFrequency > 0 && attempt%opts.SamplingFrequency == 0 {
			if err := emit.Emit(k); err != nil {
				report.finalize()
				return report, fmt.Errorf("sampler: emit sample: %w", err)
			}
		}
	}
	report.finalize()
	return report, nil
}

// RunRejection draws n independent samples via rejection.Randomize,
// emitting each as soon as it's found. Unlike RunMCMC there is no burn-in:
// every draw starts fresh from k's current stub lists and is itself a
// uniform sample of the ensemble.
func RunRejection(k *complex.Complex, n int, rng *rand.Rand, emit Emitter) (Report, error) {
	var report Report
	for i := 0; i < n; i++ {
		attempts := rejection.Randomize(k, rng)
		report.Attempts += attempts
		report.Accepted++
		if err := emit.Emit(k); err != nil {
			report.finalize()
			return report, fmt.Errorf("sampler: emit sample: %w", err)
		}
	}
	report.finalize()
	return report, nil
}
