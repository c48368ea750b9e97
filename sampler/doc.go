// Package sampler is the driver: it owns the burn-in loop, the sampling
// loop, and the proposal-length distribution's configuration, and calls an
// Emitter every SamplingFrequency-th attempt. It never branches on which
// program is running it — the base loop adds no behavioral surface beyond
// "every N attempts, call this hook," and both cmd/mcmc_sampler and
// cmd/rejection_sampler supply their own Emitter closures over
// package ioformat.
package sampler
