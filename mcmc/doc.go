// Package mcmc implements the Markov-chain kernel that moves within the SCM
// ensemble: propose an l-edge rewiring that preserves both the degree and
// size sequences by construction, apply it, locally re-check the ensemble
// predicate, and either keep it or revert every move in reverse order.
//
// The "draw a distinct set, resample on collision" shape Propose uses for
// picking l distinct stub-pairs mirrors the uniform-without-replacement
// sampler in ava-labs/avalanchego's sampler package (retrieved alongside
// this spec as a standalone reference file): sample with replacement and
// redraw on a repeat, rather than maintaining a shrinking pool.
package mcmc
