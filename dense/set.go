package dense

import (
	"math/bits"
	"slices"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/internal/hash"
)

// WordBits is the number of identifiers per storage word.
const WordBits = 64

var _ stateset.Set = (*Set)(nil)

// Set is a fixed-size bit vector over [0, universeSize).
//
// Key properties:
//   - One bit per identifier, packed into 64-bit words
//   - O(1) Contains/Add/Remove/Replace
//   - O(words) IsDisjoint/Equal/Hash/iteration
//   - nil storage is the inactive state; Create allocates
//
// The zero value is an inactive Set.
type Set struct {
	// words is the backing storage. Bits at or above universeSize are never set.
	words []uint64

	// universeSize is the number of valid identifiers.
	universeSize uint32
}

// New returns an inactive Set.
func New() *Set {
	return &Set{}
}

// NewSet returns a Set already created for universeSize.
func NewSet(universeSize uint32) *Set {
	s := &Set{}
	s.Create(universeSize)
	return s
}

// Create allocates one bit per identifier.
func (s *Set) Create(universeSize uint32) {
	stateset.CheckCreate(s.words != nil)
	numWords := (uint64(universeSize) + WordBits - 1) / WordBits
	s.words = make([]uint64, numWords)
	s.universeSize = universeSize
}

// IsActive reports whether Create has been called.
func (s *Set) IsActive() bool {
	return s.words != nil
}

// UniverseSize returns the number of valid identifiers.
func (s *Set) UniverseSize() uint32 {
	return s.universeSize
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id stateset.StateID) bool {
	if s.words == nil {
		return false
	}
	stateset.CheckRange(id, s.universeSize)
	return s.words[id/WordBits]&(uint64(1)<<(id%WordBits)) != 0
}

// Add inserts id. Returns true if it was not present.
func (s *Set) Add(id stateset.StateID) bool {
	stateset.CheckActive(s.words != nil, "Add")
	stateset.CheckRange(id, s.universeSize)

	wordIdx := id / WordBits
	mask := uint64(1) << (id % WordBits)
	if s.words[wordIdx]&mask != 0 {
		return false
	}
	s.words[wordIdx] |= mask
	return true
}

// AddBatch sets a single bit without reporting whether it changed.
func (s *Set) AddBatch(id stateset.StateID) {
	stateset.CheckActive(s.words != nil, "AddBatch")
	stateset.CheckRange(id, s.universeSize)
	s.words[id/WordBits] |= uint64(1) << (id % WordBits)
}

// AddBatchFinish is a no-op: the bit vector keeps no auxiliary state.
func (s *Set) AddBatchFinish() {}

// Remove deletes id. Returns true if it was present.
func (s *Set) Remove(id stateset.StateID) bool {
	if s.words == nil {
		return false
	}
	stateset.CheckRange(id, s.universeSize)

	wordIdx := id / WordBits
	mask := uint64(1) << (id % WordBits)
	if s.words[wordIdx]&mask == 0 {
		return false
	}
	s.words[wordIdx] &^= mask
	return true
}

// Replace clears oldID and sets newID unconditionally.
func (s *Set) Replace(oldID, newID stateset.StateID) {
	stateset.CheckActive(s.words != nil, "Replace")
	stateset.CheckRange(oldID, s.universeSize)
	stateset.CheckRange(newID, s.universeSize)

	s.words[oldID/WordBits] &^= uint64(1) << (oldID % WordBits)
	s.words[newID/WordBits] |= uint64(1) << (newID % WordBits)
}

// Clear zeroes every word. The allocation is kept.
func (s *Set) Clear() {
	clear(s.words)
}

// IsDisjoint reports whether s and other share no member.
// Against another dense Set this is a word-wise AND that stops at the first
// overlapping word.
func (s *Set) IsDisjoint(other stateset.Set) bool {
	o, ok := other.(*Set)
	if !ok {
		return stateset.DisjointByIteration(s, other)
	}
	stateset.CheckUniverse(s, o)
	if s.words == nil || o.words == nil {
		return true
	}
	for i, w := range s.words {
		if w&o.words[i] != 0 {
			return false
		}
	}
	return true
}

// Iterator returns an ascending iterator over the set bits.
func (s *Set) Iterator() stateset.Iterator {
	return &iterator{words: s.words, wordIdx: -1}
}

// ForEach calls fn for every member in ascending order.
// Returns early if fn returns false.
func (s *Set) ForEach(fn func(stateset.StateID) bool) {
	for i, word := range s.words {
		base := stateset.StateID(i * WordBits)
		for word != 0 {
			if !fn(base + stateset.StateID(bits.TrailingZeros64(word))) {
				return
			}
			word &= word - 1
		}
	}
}

// Clone creates an independent copy of the bit vector.
func (s *Set) Clone() stateset.Set {
	return s.clone()
}

func (s *Set) clone() *Set {
	if s.words == nil {
		return &Set{}
	}
	return &Set{
		words:        slices.Clone(s.words),
		universeSize: s.universeSize,
	}
}

// CopyFrom overwrites s with the members of src. Both must share a universe.
func (s *Set) CopyFrom(src *Set) {
	stateset.CheckActive(s.words != nil, "CopyFrom")
	stateset.CheckUniverse(s, src)
	if src.words == nil {
		clear(s.words)
		return
	}
	copy(s.words, src.words)
}

// Union adds every member of other to s. Both must share a universe.
func (s *Set) Union(other *Set) {
	stateset.CheckActive(s.words != nil, "Union")
	stateset.CheckUniverse(s, other)
	for i, w := range other.words {
		s.words[i] |= w
	}
}

// Equal reports whether s and other hold the same members.
func (s *Set) Equal(other stateset.Set) bool {
	o, ok := other.(*Set)
	if !ok {
		return stateset.EqualByIteration(s, other)
	}
	if s.words == nil || o.words == nil {
		return s.Len() == 0 && o.Len() == 0
	}
	stateset.CheckUniverse(s, o)
	return slices.Equal(s.words, o.words)
}

// Hash digests the storage words.
func (s *Set) Hash() uint64 {
	return hash.SumWords(s.words)
}

// Len returns the number of set bits.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty returns true if no bits are set.
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Words returns the underlying word slice.
func (s *Set) Words() []uint64 {
	return s.words
}

type iterator struct {
	words   []uint64
	wordIdx int
	cur     uint64
}

func (it *iterator) Next() (stateset.StateID, bool) {
	for it.cur == 0 {
		it.wordIdx++
		if it.wordIdx >= len(it.words) {
			it.wordIdx = len(it.words)
			return 0, false
		}
		it.cur = it.words[it.wordIdx]
	}
	bit := bits.TrailingZeros64(it.cur)
	it.cur &= it.cur - 1
	return stateset.StateID(it.wordIdx*WordBits + bit), true
}
