package matrix

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tamadalab/wasm-wat-trimming/internal/corpus"
	"github.com/tamadalab/wasm-wat-trimming/internal/metric"
)

// Pair describes one completed pairwise comparison, handed to the builder's
// observer as soon as the score is known.
type Pair struct {
	I, J    int
	A, B    string
	Score   float64
	Elapsed time.Duration
	Done    int
	Total   int
}

// Builder computes a symmetric similarity matrix over labeled profiles with
// a single metric. Only pairs with i < j are scored; mirror cells share the
// computed value and the diagonal stays at 1.0.
type Builder struct {
	Labels   []string
	Metric   metric.Metric
	Observer func(Pair) // optional progress callback
	Parallel bool       // score pairs on all CPUs; the result is identical
}

// TotalPairs returns the number of distinct off-diagonal pairs.
func (b *Builder) TotalPairs() int {
	n := len(b.Labels)
	return n * (n - 1) / 2
}

// Build scores every pair and returns the completed matrix. A label with no
// profile behaves as an empty one.
func (b *Builder) Build(profiles map[string]*corpus.Profile) *Matrix {
	if b.Parallel {
		return b.buildParallel(profiles)
	}
	m := New(b.Labels)
	total := b.TotalPairs()
	done := 0
	for i := 0; i < len(b.Labels); i++ {
		for j := i + 1; j < len(b.Labels); j++ {
			start := time.Now()
			score := b.score(profiles, i, j)
			m.SetSym(i, j, score)
			done++
			b.notify(Pair{
				I: i, J: j,
				A: b.Labels[i], B: b.Labels[j],
				Score:   score,
				Elapsed: time.Since(start),
				Done:    done, Total: total,
			})
		}
	}
	return m
}

// buildParallel fans the pairs out across CPUs. Every goroutine writes a
// disjoint cell pair, so the matrix needs no locking; only the completion
// counter and the observer are shared.
func (b *Builder) buildParallel(profiles map[string]*corpus.Profile) *Matrix {
	m := New(b.Labels)
	total := b.TotalPairs()
	var done atomic.Int64
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < len(b.Labels); i++ {
		for j := i + 1; j < len(b.Labels); j++ {
			g.Go(func() error {
				start := time.Now()
				score := b.score(profiles, i, j)
				m.SetSym(i, j, score)
				d := int(done.Add(1))
				mu.Lock()
				b.notify(Pair{
					I: i, J: j,
					A: b.Labels[i], B: b.Labels[j],
					Score:   score,
					Elapsed: time.Since(start),
					Done:    d, Total: total,
				})
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait() // workers never fail
	return m
}

var emptyProfile = &corpus.Profile{}

func (b *Builder) score(profiles map[string]*corpus.Profile, i, j int) float64 {
	pa := profiles[b.Labels[i]]
	pb := profiles[b.Labels[j]]
	if pa == nil {
		pa = emptyProfile
	}
	if pb == nil {
		pb = emptyProfile
	}
	return b.Metric.Score(pa, pb)
}

func (b *Builder) notify(p Pair) {
	if b.Observer != nil {
		b.Observer(p)
	}
}
