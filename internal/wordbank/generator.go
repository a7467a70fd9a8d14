package wordbank

import (
	"math/rand"
	"time"

	"typr/internal/model"
)

// timeModeMinimum over-provisions time-mode sessions so the word stream
// cannot run out before the timer does.
const timeModeMinimum = 200

// Generator produces randomized word sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for reproducible output.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate builds the word sequence for a fresh session: exactly the
// configured count in words mode, over-provisioned in time mode.
func (g *Generator) Generate(cfg model.Config) []string {
	n := cfg.WordCount
	if cfg.Mode == model.ModeTime && n < timeModeMinimum {
		n = timeModeMinimum
	}
	return g.Batch(cfg, n)
}

// Batch fills n slots from uniform shuffles of the configured pool,
// reshuffling whenever the pool is exhausted.
func (g *Generator) Batch(cfg model.Config, n int) []string {
	pool := buildPool(cfg)
	out := make([]string, 0, n)
	for len(out) < n {
		g.rnd.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		take := n - len(out)
		if take > len(pool) {
			take = len(pool)
		}
		out = append(out, pool[:take]...)
	}
	return out
}

// buildPool assembles the candidate pool and applies the length-class
// filter. An empty filtered pool falls back to the unfiltered base bank so
// generation never fails.
func buildPool(cfg model.Config) []string {
	candidates := make([]string, 0, len(baseBank)+len(numbersBank)+len(punctuationBank))
	candidates = append(candidates, baseBank...)
	if cfg.IncludeNumbers {
		candidates = append(candidates, numbersBank...)
	}
	if cfg.IncludePunctuation {
		candidates = append(candidates, punctuationBank...)
	}
	filtered := filterByLength(candidates, cfg.WordLengthClass)
	if len(filtered) == 0 {
		filtered = append([]string(nil), baseBank...)
	}
	return filtered
}
