// Package dense provides the bit-vector state-set backing.
//
// # Layout
//
//	┌──────────────────┬──────────────────┬──────────────────┐
//	│  word 0 (64 bit) │  word 1 (64 bit) │  word 2 ...      │
//	│  ids [0, 63]     │  ids [64, 127]   │                  │
//	└──────────────────┴──────────────────┴──────────────────┘
//
// The universe size is fixed by Create. Bits at or above it are never set,
// so word-wise comparison is exact structural equality.
//
// # When to Use
//
// Use the dense backing for small-to-medium universes, or for sets that are
// expected to be dense. For very large universes with few live states the
// sparse backing is cheaper to clone and compare.
//
// # Example Usage
//
//	s := dense.New()
//	s.Create(nfa.NumStates())
//
//	s.Add(2)
//	s.Add(5)
//
//	it := s.Iterator()
//	for id, ok := it.Next(); ok; id, ok = it.Next() {
//	    // 2, then 5
//	}
package dense
