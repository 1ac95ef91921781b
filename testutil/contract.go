package testutil

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/internal/hash"
)

// propertyUniverse spans several 64-bit words and ends mid-word.
const propertyUniverse = 300

// RequirePanicsIs fails the test unless fn panics with an error matching target.
func RequirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}

// RunContract checks that every Set returned by ctor honors the stateset.Set
// contract. Backings call it from their own tests.
func RunContract(t *testing.T, ctor stateset.Constructor) {
	t.Helper()

	fill := func(universe uint32, ids ...stateset.StateID) stateset.Set {
		return Fill(ctor(), universe, ids...)
	}

	t.Run("Lifecycle", func(t *testing.T) {
		s := ctor()
		assert.False(t, s.IsActive())

		s.Create(8)
		assert.True(t, s.IsActive())
		assert.Equal(t, uint32(8), s.UniverseSize())
		assert.Equal(t, 0, s.Len())

		RequirePanicsIs(t, stateset.ErrAlreadyCreated, func() { s.Create(8) })
	})

	t.Run("InactiveBehavesEmpty", func(t *testing.T) {
		s := ctor()
		assert.False(t, s.Contains(3))
		assert.False(t, s.Remove(3))
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, stateset.Collect(s))

		s.Clear()
		assert.False(t, s.IsActive(), "Clear must not allocate")

		assert.True(t, s.IsDisjoint(fill(8, 1, 2)))
		assert.True(t, s.Equal(fill(8)))
		assert.False(t, s.Equal(fill(8, 1)))
		assert.Equal(t, hash.Empty, s.Hash())
		assert.False(t, s.Clone().IsActive())

		RequirePanicsIs(t, stateset.ErrNotCreated, func() { s.Add(1) })
		RequirePanicsIs(t, stateset.ErrNotCreated, func() { s.AddBatch(1) })
		RequirePanicsIs(t, stateset.ErrNotCreated, func() { s.Replace(1, 2) })
	})

	t.Run("Scenario", func(t *testing.T) {
		s := fill(8)

		assert.True(t, s.Add(2))
		assert.True(t, s.Add(5))
		assert.False(t, s.Add(2))
		assert.Equal(t, []stateset.StateID{2, 5}, stateset.Collect(s))

		other := fill(8)
		other.Add(5)
		other.Add(2)
		assert.True(t, s.Equal(other), "insertion order must not matter")
		assert.Equal(t, s.Hash(), other.Hash())

		s.Clear()
		assert.True(t, s.IsActive())
		assert.False(t, s.Contains(2))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Idempotence", func(t *testing.T) {
		s := fill(100)
		assert.True(t, s.Add(42))
		assert.False(t, s.Add(42))
		assert.True(t, s.Remove(42))
		assert.False(t, s.Remove(42))
	})

	t.Run("WordBoundaries", func(t *testing.T) {
		ids := []stateset.StateID{0, 63, 64, 127, 128, 129}
		s := fill(130, ids...)

		assert.Equal(t, ids, stateset.Collect(s))
		assert.Equal(t, len(ids), s.Len())
		for _, id := range []stateset.StateID{1, 62, 65, 126} {
			assert.False(t, s.Contains(id), "Contains(%d)", id)
		}
	})

	t.Run("Replace", func(t *testing.T) {
		s := fill(200, 3, 70, 150)
		s.Replace(70, 10)

		assert.False(t, s.Contains(70))
		assert.True(t, s.Contains(10))
		assert.Equal(t, []stateset.StateID{3, 10, 150}, stateset.Collect(s))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		s := fill(70, 69)

		RequirePanicsIs(t, stateset.ErrOutOfRange, func() { s.Add(70) })
		RequirePanicsIs(t, stateset.ErrOutOfRange, func() { s.AddBatch(127) })
		RequirePanicsIs(t, stateset.ErrOutOfRange, func() { s.Contains(70) })
		RequirePanicsIs(t, stateset.ErrOutOfRange, func() { s.Remove(1000) })
		RequirePanicsIs(t, stateset.ErrOutOfRange, func() { s.Replace(69, 70) })
		s.AddBatchFinish()

		assert.Equal(t, []stateset.StateID{69}, stateset.Collect(s), "failed calls must not touch storage")
	})

	t.Run("UniverseMismatch", func(t *testing.T) {
		a, b := fill(64, 1), fill(128, 1)
		RequirePanicsIs(t, stateset.ErrUniverseMismatch, func() { a.Equal(b) })
		RequirePanicsIs(t, stateset.ErrUniverseMismatch, func() { a.IsDisjoint(b) })
	})

	t.Run("CloneIndependence", func(t *testing.T) {
		a := fill(100, 1, 50, 99)
		b := a.Clone()

		require.True(t, a.Equal(b))
		assert.Equal(t, a.Hash(), b.Hash())

		a.Add(7)
		a.Remove(50)
		assert.Equal(t, []stateset.StateID{1, 50, 99}, stateset.Collect(b))

		b.Add(8)
		assert.False(t, a.Contains(8))
	})

	t.Run("Disjoint", func(t *testing.T) {
		empty := fill(128)
		assert.True(t, empty.IsDisjoint(empty), "the empty set is disjoint from itself")

		a := fill(128, 1, 65)
		b := fill(128, 2, 66)
		c := fill(128, 65)

		assert.True(t, a.IsDisjoint(b))
		assert.True(t, b.IsDisjoint(a))
		assert.False(t, a.IsDisjoint(c))
		assert.False(t, c.IsDisjoint(a))
		assert.True(t, empty.IsDisjoint(a))
		assert.False(t, a.IsDisjoint(a))
	})

	t.Run("Iterator", func(t *testing.T) {
		s := fill(256, 200, 3, 64, 255)
		it := s.Iterator()

		var got []stateset.StateID
		for id, ok := it.Next(); ok; id, ok = it.Next() {
			got = append(got, id)
		}
		assert.Equal(t, []stateset.StateID{3, 64, 200, 255}, got)

		_, ok := it.Next()
		assert.False(t, ok, "an exhausted iterator stays exhausted")
	})

	t.Run("Batch", func(t *testing.T) {
		s := fill(300)
		stateset.Batch(s, func(add func(stateset.StateID)) {
			add(299)
			add(0)
			add(299)
		})
		assert.Equal(t, []stateset.StateID{0, 299}, stateset.Collect(s))
	})

	t.Run("Properties", func(t *testing.T) {
		runProperties(t, ctor)
	})
}

func runProperties(t *testing.T, ctor stateset.Constructor) {
	ids := gen.SliceOf(gen.UInt32Range(0, propertyUniverse-1))

	build := func(raw []uint32) (stateset.Set, *bitset.BitSet) {
		s := ctor()
		s.Create(propertyUniverse)
		oracle := bitset.New(propertyUniverse)
		for _, v := range raw {
			s.Add(stateset.StateID(v))
			oracle.Set(uint(v))
		}
		return s, oracle
	}

	properties := gopter.NewProperties(nil)

	properties.Property("membership round-trip", prop.ForAll(
		func(raw []uint32) bool {
			s, _ := build(nil)
			for _, v := range raw {
				id := stateset.StateID(v)
				s.Add(id)
				if !s.Contains(id) {
					return false
				}
			}
			for _, v := range raw {
				id := stateset.StateID(v)
				s.Remove(id)
				if s.Contains(id) {
					return false
				}
			}
			return s.Len() == 0
		},
		ids,
	))

	properties.Property("batch equals individual adds", prop.ForAll(
		func(raw []uint32) bool {
			single, _ := build(raw)

			batched := ctor()
			batched.Create(propertyUniverse)
			for _, v := range raw {
				batched.AddBatch(stateset.StateID(v))
			}
			batched.AddBatchFinish()

			return batched.Equal(single) && single.Equal(batched) && batched.Hash() == single.Hash()
		},
		ids,
	))

	properties.Property("iteration matches oracle", prop.ForAll(
		func(raw []uint32) bool {
			s, oracle := build(raw)
			if s.Len() != int(oracle.Count()) {
				return false
			}

			it := s.Iterator()
			i, more := oracle.NextSet(0)
			prev := -1
			for id, ok := it.Next(); ok; id, ok = it.Next() {
				if !more || uint(id) != i || int(id) <= prev || !s.Contains(id) {
					return false
				}
				prev = int(id)
				i, more = oracle.NextSet(i + 1)
			}
			return !more
		},
		ids,
	))

	properties.Property("disjointness is symmetric", prop.ForAll(
		func(ra, rb []uint32) bool {
			a, oa := build(ra)
			b, ob := build(rb)
			want := oa.IntersectionCardinality(ob) == 0
			return a.IsDisjoint(b) == want && b.IsDisjoint(a) == want
		},
		ids, ids,
	))

	properties.Property("clone is independent", prop.ForAll(
		func(raw []uint32, extra uint32) bool {
			a, _ := build(raw)
			b := a.Clone()
			if !a.Equal(b) || a.Hash() != b.Hash() {
				return false
			}
			before := stateset.Collect(b)

			x := stateset.StateID(extra)
			if a.Contains(x) {
				a.Remove(x)
			} else {
				a.Add(x)
			}
			return !a.Equal(b) && assert.ObjectsAreEqual(before, stateset.Collect(b))
		},
		ids, gen.UInt32Range(0, propertyUniverse-1),
	))

	properties.Property("replace moves one member", prop.ForAll(
		func(raw []uint32, from, to uint32) bool {
			if from == to {
				return true
			}
			s, oracle := build(raw)
			oldID, newID := stateset.StateID(from), stateset.StateID(to)
			s.Add(oldID)
			s.Remove(newID)
			oracle.Set(uint(from))
			oracle.Clear(uint(to))

			s.Replace(oldID, newID)
			oracle.Clear(uint(from))
			oracle.Set(uint(to))

			for i := uint(0); i < propertyUniverse; i++ {
				if s.Contains(stateset.StateID(i)) != oracle.Test(i) {
					return false
				}
			}
			return true
		},
		ids, gen.UInt32Range(0, propertyUniverse-1), gen.UInt32Range(0, propertyUniverse-1),
	))

	properties.TestingRun(t)
}
