// Package scm samples from the Simplicial Configuration Model: the
// ensemble of simplicial complexes that share a given vertex degree
// sequence and facet-size sequence.
//
// 🚀 What is this?
//
//	A small, single-threaded sampler that builds a random simplicial
//	complex matching a target degree/size sequence pair, then explores
//	the ensemble of such complexes two ways:
//		• MCMC rewiring: local edge swaps, accepted only when the result
//		  stays simplicial (package mcmc)
//		• Rejection sampling: rebuild a uniform random matching and keep
//		  it only if it happens to already be simplicial (package rejection)
//
// Under the hood:
//
//	complex/   — the bipartite incidence store (facets × vertices, as
//	             aligned multisets) every other package operates on
//	ensemble/  — the simplicial-complex membership predicate
//	random/    — preferential vertex pick, uniform facet pick, proposal
//	             length distributions
//	mcmc/      — the rewiring kernel
//	rejection/ — the shuffle-and-retry kernel
//	sanitize/  — turns a raw facet list into a clean maximal-facet list
//	ioformat/  — reads/writes the plain-text facet-list and sequence
//	             formats the cmd binaries consume
//	sampler/   — the burn-in/sampling driver shared by both kernels
//	cmd/       — mcmc_sampler, rejection_sampler, and bipartite_to_facets,
//	             the three CLI entry points
package scm
