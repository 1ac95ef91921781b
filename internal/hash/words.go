package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Words streams the canonical form of a bit vector into an xxhash digest.
// Only non-zero words are written, each prefixed by its word index, so every
// backing that can enumerate its words in ascending order produces the same
// value for the same members.
type Words struct {
	d   *xxhash.Digest
	buf [16]byte
}

// NewWords returns an empty word digest.
func NewWords() *Words {
	return &Words{d: xxhash.New()}
}

// Add writes the word at index idx. Zero words are skipped.
// Indices must be strictly increasing across calls.
func (w *Words) Add(idx int, word uint64) {
	if word == 0 {
		return
	}
	binary.LittleEndian.PutUint64(w.buf[:8], uint64(idx))
	binary.LittleEndian.PutUint64(w.buf[8:], word)
	_, _ = w.d.Write(w.buf[:])
}

// Sum64 returns the digest of every word added so far.
func (w *Words) Sum64() uint64 {
	return w.d.Sum64()
}

// SumWords digests a complete word slice.
func SumWords(words []uint64) uint64 {
	w := NewWords()
	for i, word := range words {
		w.Add(i, word)
	}
	return w.Sum64()
}

// Empty is the digest of a set with no members.
var Empty = xxhash.Sum64(nil)
