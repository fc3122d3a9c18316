package pcg

import (
	"strings"

	"github.com/mb-14/gomarkov"
)

// NameGenerator produces display names for generated zones and
// dungeons from an order-2 Markov chain trained on a corpus of
// example names. Sampling is driven by the caller's RandomSource
// rather than the chain's built-in generator, so names are exactly as
// reproducible as the tiles they label.
type NameGenerator struct {
	chain *gomarkov.Chain
	vocab []string
	order int
}

// defaultNameCorpus seeds the chain when the caller supplies no
// corpus of its own.
var defaultNameCorpus = []string{
	"the sunken halls of sorrow",
	"the forgotten depths below",
	"the black warrens of the old king",
	"the shattered vaults of stone",
	"the silent mines of the deep clans",
	"the drowned catacombs of ash",
	"the crooked tunnels of the rat court",
	"the burning caverns of the worm",
	"the hollow labyrinth of echoes",
	"the pale crypts of the last watch",
}

// NewNameGenerator trains a generator on the given corpus, falling
// back to a built-in corpus when it is empty.
func NewNameGenerator(corpus []string) *NameGenerator {
	if len(corpus) == 0 {
		corpus = defaultNameCorpus
	}

	const order = 2
	chain := gomarkov.NewChain(order)
	seen := make(map[string]bool)
	var vocab []string

	for _, line := range corpus {
		words := strings.Fields(strings.ToLower(line))
		if len(words) <= order {
			continue
		}
		chain.Add(words)
		for _, w := range words {
			if !seen[w] {
				seen[w] = true
				vocab = append(vocab, w)
			}
		}
	}

	return &NameGenerator{chain: chain, vocab: vocab, order: order}
}

// Generate samples a name of at most maxWords words. The chain's own
// Generate uses the process-global PRNG, so sampling here walks the
// transition probabilities with rng instead.
func (ng *NameGenerator) Generate(rng *RandomSource, maxWords int) string {
	state := make(gomarkov.NGram, ng.order)
	for i := range state {
		state[i] = gomarkov.StartToken
	}

	var words []string
	for len(words) < maxWords {
		next, ok := ng.sampleNext(rng, state)
		if !ok || next == gomarkov.EndToken {
			break
		}
		words = append(words, next)
		state = append(state[1:], next)
	}

	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, " ")
}

// sampleNext draws the next token from the chain's transition
// distribution for state using rng.
func (ng *NameGenerator) sampleNext(rng *RandomSource, state gomarkov.NGram) (string, bool) {
	type candidate struct {
		token string
		prob  float64
	}

	var candidates []candidate
	total := 0.0
	consider := func(token string) {
		p, err := ng.chain.TransitionProbability(token, state)
		if err != nil || p <= 0 {
			return
		}
		candidates = append(candidates, candidate{token: token, prob: p})
		total += p
	}
	for _, token := range ng.vocab {
		consider(token)
	}
	consider(gomarkov.EndToken)

	if len(candidates) == 0 || total <= 0 {
		return "", false
	}

	roll := rng.Float64() * total
	acc := 0.0
	for _, c := range candidates {
		acc += c.prob
		if roll <= acc {
			return c.token, true
		}
	}
	return candidates[len(candidates)-1].token, true
}
