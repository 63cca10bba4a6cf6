package assignmentgraph

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// defaultRNG is the module's single process-wide pseudo-random source (see
// spec §4.5): the sole randomization points in the whole library —
// CliquesInRandomOrder and EdgesInRandomOrder — draw from it. It is seeded
// from a non-deterministic entropy source at package initialization and
// guarded by defaultRNGMu so independent goroutines calling into the solver
// on independent graphs never race on it.
var (
	defaultRNGMu sync.Mutex
	defaultRNG   = rand.New(rand.NewSource(entropySeed()))
)

// entropySeed draws a 64-bit seed from crypto/rand, falling back to the wall
// clock if the OS entropy source is ever unavailable. Reproducibility is not
// a contract of this package (see SeedForTesting for the one exception).
func entropySeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err == nil {
		return int64(binary.LittleEndian.Uint64(buf[:]))
	}

	return time.Now().UnixNano()
}

// SeedForTesting replaces the process-wide default RNG with a deterministic
// one. It exists solely so tests can make randomized behavior reproducible;
// production callers should never need it.
func SeedForTesting(seed int64) {
	defaultRNGMu.Lock()
	defer defaultRNGMu.Unlock()

	defaultRNG = rand.New(rand.NewSource(seed))
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using
// the process-wide default RNG, taking the lock once for the whole shuffle.
func shuffleIntsInPlace(a []int) {
	defaultRNGMu.Lock()
	defer defaultRNGMu.Unlock()

	for i := len(a) - 1; i > 0; i-- {
		j := defaultRNG.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// CliquesInRandomOrder returns a freshly permuted list of every clique id in
// the graph. This is the solver's sole source of randomization: it picks
// the alternating tree's root by scanning this order for the first exposed
// source.
func (g *Graph) CliquesInRandomOrder() []int {
	g.mu.RLock()
	n := g.numCliques
	g.mu.RUnlock()

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	shuffleIntsInPlace(order)

	return order
}

// EdgesInRandomOrder returns a freshly permuted copy of every edge in the
// graph. Available to callers, though the default solver path randomizes
// only via CliquesInRandomOrder.
func (g *Graph) EdgesInRandomOrder() []Edge {
	edges := g.Edges()
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	shuffleIntsInPlace(order)

	out := make([]Edge, len(edges))
	for i, idx := range order {
		out[i] = edges[idx]
	}

	return out
}
