package mcmc

import (
	"math/rand"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/ensemble"
	"github.com/scmsampler/scm/random"
)

// Kernel proposes and commits rewirings against a single Complex. It is not
// safe for concurrent use — see package complex's doc for why that's fine.
type Kernel struct {
	K       *complex.Complex
	Vertex  *random.PreferentialPicker
	Lengths *random.ProposalLengthDistribution
	RNG     *rand.Rand
}

// stub identifies one drawn (vertex, facet) incidence, used to detect
// collisions while drawing a distinct edge set.
type stub struct {
	vertex, facet int
}

// Propose draws l distinct stub-pairs (v_i, f_i) via preferential vertex
// pick + uniform facet pick, resampling whenever a pair repeats one already
// drawn this call. It then fixes the v_i sequence and applies a uniformly
// random permutation to the f_i sequence, producing l new edges (v_i, f'_i).
// The returned move slice is l detaches followed by l attaches, so Commit
// can apply them in order without a partially-detached intermediate state
// ever needing to be inspected.
//
// Each vertex's degree is unchanged by this proposal (it loses one
// incidence and gains one); each facet's size is unchanged (a permutation
// just rearranges which facet each v_i lands in). Only the simplicial
// invariant — no, see Commit — can fail.
func (k *Kernel) Propose(l int) []complex.Move {
	drawn := make(map[stub]struct{}, l)
	vs := make([]int, 0, l)
	fs := make([]int, 0, l)
	for len(vs) < l {
		v := k.Vertex.Vertex(k.RNG)
		f := random.UniformFacetPick(k.K.VertexNeighbors(v), k.RNG)
		s := stub{vertex: v, facet: f}
		if _, dup := drawn[s]; dup {
			continue
		}
		drawn[s] = struct{}{}
		vs = append(vs, v)
		fs = append(fs, f)
	}

	perm := k.RNG.Perm(l)
	moves := make([]complex.Move, 0, 2*l)
	for i := 0; i < l; i++ {
		moves = append(moves, complex.Move{Facet: fs[i], Vertex: vs[i], Attach: false})
	}
	for i := 0; i < l; i++ {
		moves = append(moves, complex.Move{Facet: fs[perm[i]], Vertex: vs[i], Attach: true})
	}
	return moves
}

// Commit applies moves, runs the ensemble predicate over exactly the
// facets the move could have affected (ensemble.LocalCheckSet), and either
// keeps the result or reverts every move in reverse order with its sense
// flipped. It returns whether the proposal was accepted.
func (k *Kernel) Commit(moves []complex.Move) bool {
	apply(k.K, moves)

	checkSet := ensemble.LocalCheckSet(k.K, moves)
	if ensemble.CheckFacets(k.K, checkSet) {
		return true
	}

	revert(k.K, moves)
	return false
}

// Step draws a proposal length from Lengths, proposes, and commits in one
// call — the unit of work both the burn-in and sampling loops repeat.
func (k *Kernel) Step() (accepted bool, length int) {
	l := k.Lengths.Length(k.RNG)
	moves := k.Propose(l)
	return k.Commit(moves), l
}

func apply(k *complex.Complex, moves []complex.Move) {
	for _, m := range moves {
		if m.Attach {
			k.Connect(m.Facet, m.Vertex)
		} else {
			k.Disconnect(m.Facet, m.Vertex)
		}
	}
}

// revert undoes moves in reverse order, applying each move's inverse — the
// mirror image of apply, required so an aborted proposal leaves K
// bit-identical (multiset-wise) to its pre-apply state.
func revert(k *complex.Complex, moves []complex.Move) {
	for i := len(moves) - 1; i >= 0; i-- {
		inv := moves[i].Inverse()
		if inv.Attach {
			k.Connect(inv.Facet, inv.Vertex)
		} else {
			k.Disconnect(inv.Facet, inv.Vertex)
		}
	}
}
