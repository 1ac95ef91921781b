package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/stateset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// IDs returns n identifiers drawn uniformly from [0, universeSize).
// Duplicates are likely and intended.
func (r *RNG) IDs(n int, universeSize uint32) []stateset.StateID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]stateset.StateID, n)
	for i := range ids {
		ids[i] = stateset.StateID(r.rand.Int63n(int64(universeSize)))
	}
	return ids
}

// UniqueIDs returns min(n, universeSize) distinct identifiers in ascending order.
func (r *RNG) UniqueIDs(n int, universeSize uint32) []stateset.StateID {
	r.mu.Lock()
	defer r.mu.Unlock()

	n = min(n, int(universeSize))
	perm := r.rand.Perm(int(universeSize))[:n]
	sort.Ints(perm)

	ids := make([]stateset.StateID, n)
	for i, v := range perm {
		ids[i] = stateset.StateID(v)
	}
	return ids
}

// ClusteredIDs returns n identifiers packed into a few windows of width
// spread, which is how NFA states reached together tend to be numbered.
func (r *RNG) ClusteredIDs(n, clusters int, spread, universeSize uint32) []stateset.StateID {
	r.mu.Lock()
	defer r.mu.Unlock()

	spread = max(1, min(spread, universeSize))
	centers := make([]uint32, clusters)
	for i := range centers {
		centers[i] = uint32(r.rand.Int63n(int64(universeSize - spread + 1)))
	}

	ids := make([]stateset.StateID, n)
	for i := range ids {
		c := centers[i%clusters]
		ids[i] = stateset.StateID(c + uint32(r.rand.Int63n(int64(spread))))
	}
	return ids
}

// Fill creates s for universeSize and adds every id.
func Fill(s stateset.Set, universeSize uint32, ids ...stateset.StateID) stateset.Set {
	s.Create(universeSize)
	for _, id := range ids {
		s.Add(id)
	}
	return s
}
