package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/internal/hash"
	"github.com/hupe1980/stateset/sparse"
	"github.com/hupe1980/stateset/testutil"
)

func TestContract(t *testing.T) {
	testutil.RunContract(t, func() stateset.Set { return New() })
}

func TestSet_Basic(t *testing.T) {
	s := NewSet(1000)

	if !s.Add(100) {
		t.Error("Add should return true for new bit")
	}
	if s.Add(100) {
		t.Error("Add should return false for existing bit")
	}
	if !s.Contains(100) {
		t.Error("Contains should return true for set bit")
	}
	if s.Contains(200) {
		t.Error("Contains should return false for unset bit")
	}
	if n := s.Len(); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("IsEmpty should return true after Clear")
	}
	if len(s.Words()) != 16 {
		t.Errorf("Clear must keep the allocation, got %d words", len(s.Words()))
	}
}

func TestSet_WordCount(t *testing.T) {
	tests := []struct {
		universe uint32
		words    int
	}{
		{0, 0},
		{1, 1},
		{64, 1},
		{65, 2},
		{128, 2},
		{129, 3},
	}

	for _, tt := range tests {
		s := NewSet(tt.universe)
		assert.True(t, s.IsActive(), "universe %d", tt.universe)
		assert.Len(t, s.Words(), tt.words, "universe %d", tt.universe)
	}
}

func TestSet_EmptyUniverse(t *testing.T) {
	s := NewSet(0)

	assert.True(t, s.IsActive())
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsDisjoint(s))
	testutil.RequirePanicsIs(t, stateset.ErrOutOfRange, func() { s.Add(0) })
}

func TestSet_NoPaddingBits(t *testing.T) {
	s := NewSet(70)
	s.Add(69)

	testutil.RequirePanicsIs(t, stateset.ErrOutOfRange, func() { s.Add(70) })
	testutil.RequirePanicsIs(t, stateset.ErrOutOfRange, func() { s.Replace(69, 127) })

	assert.Equal(t, []uint64{0, 1 << 5}, s.Words())
}

func TestSet_ForEach(t *testing.T) {
	s := NewSet(500)
	for _, id := range []stateset.StateID{499, 0, 64, 300} {
		s.Add(id)
	}

	var got []stateset.StateID
	s.ForEach(func(id stateset.StateID) bool {
		got = append(got, id)
		return len(got) < 3
	})

	assert.Equal(t, []stateset.StateID{0, 64, 300}, got)
}

func TestSet_Union(t *testing.T) {
	a := NewSet(200)
	b := NewSet(200)
	a.Add(1)
	b.Add(1)
	b.Add(150)

	a.Union(b)

	assert.Equal(t, []stateset.StateID{1, 150}, stateset.Collect(a))
	assert.Equal(t, []stateset.StateID{1, 150}, stateset.Collect(b))
}

func TestSet_CopyFrom(t *testing.T) {
	a := NewSet(200)
	b := NewSet(200)
	a.Add(5)
	b.Add(6)
	b.Add(199)

	a.CopyFrom(b)
	assert.True(t, a.Equal(b))

	b.Add(7)
	assert.False(t, a.Contains(7))

	a.CopyFrom(New())
	assert.True(t, a.IsEmpty())
	assert.True(t, a.IsActive())
}

func TestSet_CrossRepresentation(t *testing.T) {
	d := NewSet(1 << 10)
	sp := sparse.NewSet(1 << 10)
	for _, id := range []stateset.StateID{3, 700, 1023} {
		d.Add(id)
		sp.Add(id)
	}

	require.True(t, d.Equal(sp))
	require.True(t, sp.Equal(d))
	assert.Equal(t, d.Hash(), sp.Hash())
	assert.False(t, d.IsDisjoint(sp))
	assert.False(t, sp.IsDisjoint(d))

	sp.Remove(3)
	sp.Remove(700)
	sp.Remove(1023)
	sp.Add(4)
	assert.True(t, d.IsDisjoint(sp))
	assert.True(t, sp.IsDisjoint(d))
	assert.False(t, d.Equal(sp))
}

func TestSet_Hash(t *testing.T) {
	assert.Equal(t, hash.Empty, New().Hash())
	assert.Equal(t, hash.Empty, NewSet(4096).Hash())

	a := NewSet(4096)
	b := NewSet(4096)
	a.Add(4095)
	b.Add(4094)
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestSet_IteratorSnapshotOfCall(t *testing.T) {
	s := NewSet(128)
	s.Add(1)
	it := s.Iterator()

	id, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, stateset.StateID(1), id)

	_, ok = it.Next()
	assert.False(t, ok)
}
