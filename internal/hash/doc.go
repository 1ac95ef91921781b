// Package hash provides the structural digest shared by every state-set backing.
//
// # Canonical Form
//
// A state set is hashed as if it were a dense bit vector of 64-bit words:
//
//	for each word i with word != 0:
//	    write uint64(i) little-endian
//	    write word      little-endian
//
// Zero words are skipped, so a sparse backing that never materializes its
// empty words produces the same digest as the dense backing. The empty set
// hashes to Empty.
//
// # Usage
//
// For a complete word slice:
//
//	sum := hash.SumWords(words)
//
// For a backing that enumerates members in ascending order:
//
//	w := hash.NewWords()
//	w.Add(0, 0b101)
//	w.Add(3, 1<<7)
//	sum := w.Sum64()
//
// Digests are computed with xxhash (github.com/cespare/xxhash/v2).
package hash
