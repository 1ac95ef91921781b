package sparse

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/internal/hash"
)

const wordBits = 64

var _ stateset.Set = (*Set)(nil)

// Set implements a state set on a 32-bit Roaring bitmap.
// It wraps the official roaring implementation.
//
// AddBatch buffers identifiers; AddBatchFinish flushes them with a single
// AddMany so container selection happens once per batch.
//
// The zero value is an inactive Set.
type Set struct {
	rb           *roaring.Bitmap
	pending      []uint32
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

// Create allocates an empty bitmap.
func (s *Set) Create(universeSize uint32) {
	stateset.CheckCreate(s.rb != nil)
	s.rb = roaring.New()
	s.universeSize = universeSize
}

// IsActive reports whether Create has been called.
func (s *Set) IsActive() bool {
	return s.rb != nil
}

// UniverseSize returns the number of valid identifiers.
func (s *Set) UniverseSize() uint32 {
	return s.universeSize
}

// Contains checks if id is in the bitmap.
func (s *Set) Contains(id stateset.StateID) bool {
	if s.rb == nil {
		return false
	}
	stateset.CheckRange(id, s.universeSize)
	return s.rb.Contains(uint32(id))
}

// Add adds id to the bitmap. Returns true if it was not present.
func (s *Set) Add(id stateset.StateID) bool {
	stateset.CheckActive(s.rb != nil, "Add")
	stateset.CheckRange(id, s.universeSize)
	return s.rb.CheckedAdd(uint32(id))
}

// AddBatch buffers id until AddBatchFinish.
func (s *Set) AddBatch(id stateset.StateID) {
	stateset.CheckActive(s.rb != nil, "AddBatch")
	stateset.CheckRange(id, s.universeSize)
	s.pending = append(s.pending, uint32(id))
}

// AddBatchFinish flushes the buffered identifiers into the bitmap.
func (s *Set) AddBatchFinish() {
	if len(s.pending) == 0 {
		return
	}
	s.rb.AddMany(s.pending)
	s.pending = s.pending[:0]
}

// Remove removes id from the bitmap. Returns true if it was present.
func (s *Set) Remove(id stateset.StateID) bool {
	if s.rb == nil {
		return false
	}
	stateset.CheckRange(id, s.universeSize)
	return s.rb.CheckedRemove(uint32(id))
}

// Replace removes oldID and adds newID unconditionally.
func (s *Set) Replace(oldID, newID stateset.StateID) {
	stateset.CheckActive(s.rb != nil, "Replace")
	stateset.CheckRange(oldID, s.universeSize)
	stateset.CheckRange(newID, s.universeSize)
	s.rb.Remove(uint32(oldID))
	s.rb.Add(uint32(newID))
}

// Clear removes all elements from the bitmap.
func (s *Set) Clear() {
	if s.rb == nil {
		return
	}
	s.rb.Clear()
	s.pending = s.pending[:0]
}

// IsDisjoint reports whether s and other share no member.
func (s *Set) IsDisjoint(other stateset.Set) bool {
	o, ok := other.(*Set)
	if !ok {
		return stateset.DisjointByIteration(s, other)
	}
	stateset.CheckUniverse(s, o)
	if s.rb == nil || o.rb == nil {
		return true
	}
	return !s.rb.Intersects(o.rb)
}

// Iterator returns an ascending iterator over the bitmap.
func (s *Set) Iterator() stateset.Iterator {
	if s.rb == nil {
		return emptyIterator{}
	}
	return &iterator{it: s.rb.Iterator()}
}

// Clone returns a deep copy of the bitmap.
func (s *Set) Clone() stateset.Set {
	if s.rb == nil {
		return &Set{}
	}
	return &Set{
		rb:           s.rb.Clone(),
		pending:      slices.Clone(s.pending),
		universeSize: s.universeSize,
	}
}

// Equal reports whether s and other hold the same members.
func (s *Set) Equal(other stateset.Set) bool {
	o, ok := other.(*Set)
	if !ok {
		return stateset.EqualByIteration(s, other)
	}
	if s.rb == nil || o.rb == nil {
		return s.Len() == 0 && o.Len() == 0
	}
	stateset.CheckUniverse(s, o)
	return s.rb.Equals(o.rb)
}

// Hash digests the members in the canonical word form, so a sparse set hashes
// like a dense set holding the same identifiers.
func (s *Set) Hash() uint64 {
	if s.rb == nil || s.rb.IsEmpty() {
		return hash.Empty
	}

	w := hash.NewWords()
	cur := -1
	var word uint64

	it := s.rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		idx := int(v / wordBits)
		if idx != cur {
			if cur >= 0 {
				w.Add(cur, word)
			}
			cur, word = idx, 0
		}
		word |= uint64(1) << (v % wordBits)
	}
	w.Add(cur, word)
	return w.Sum64()
}

// Len returns the number of elements in the bitmap.
func (s *Set) Len() int {
	if s.rb == nil {
		return 0
	}
	return int(s.rb.GetCardinality())
}

// RunOptimize converts containers to run-length encoding where it is smaller.
// Useful before cloning a long-lived configuration many times.
func (s *Set) RunOptimize() {
	if s.rb != nil {
		s.rb.RunOptimize()
	}
}

// GetSizeInBytes returns the size of the bitmap in bytes.
func (s *Set) GetSizeInBytes() uint64 {
	if s.rb == nil {
		return 0
	}
	return s.rb.GetSizeInBytes()
}

type iterator struct {
	it roaring.IntPeekable
}

func (i *iterator) Next() (stateset.StateID, bool) {
	if !i.it.HasNext() {
		return 0, false
	}
	return stateset.StateID(i.it.Next()), true
}

type emptyIterator struct{}

func (emptyIterator) Next() (stateset.StateID, bool) { return 0, false }
