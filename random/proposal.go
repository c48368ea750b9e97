package random

import (
	"math"
	"math/rand"
)

// Kind selects the weighting scheme for the proposal-length distribution:
// Uniform, Exponential (exp(alpha*l)), or PowerLaw (l^(-alpha)).
type Kind int

const (
	Uniform Kind = iota
	Exponential
	PowerLaw
)

// ProposalLengthDistribution draws a proposal length l in [lMin, lMax]
// (inclusive) from the weighting scheme chosen by Kind. The weights are
// computed once, at construction, via the same Picker ticket table the
// preferential vertex pick uses.
type ProposalLengthDistribution struct {
	picker *Picker
}

// NewProposalLengthDistribution builds the length distribution. lMax must
// be >= lMin >= 2: a proposal of length 1 would detach and reattach a
// single stub to itself, a no-op move that can never change K.
func NewProposalLengthDistribution(lMin, lMax int, kind Kind, alpha float64) *ProposalLengthDistribution {
	if lMin < 2 || lMax < lMin {
		panic("random: proposal length range must satisfy 2 <= lMin <= lMax")
	}
	n := lMax - lMin + 1
	items := make([]int, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		l := lMin + i
		items[i] = l
		switch kind {
		case Exponential:
			weights[i] = math.Exp(alpha * float64(l))
		case PowerLaw:
			weights[i] = math.Pow(float64(l), -alpha)
		default:
			weights[i] = 1
		}
	}
	return &ProposalLengthDistribution{picker: NewPicker(items, weights)}
}

// Length draws one proposal length l in [lMin, lMax].
func (d *ProposalLengthDistribution) Length(rng *rand.Rand) int {
	return d.picker.Pick(rng)
}
