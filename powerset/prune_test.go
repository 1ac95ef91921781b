package powerset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/backing"
	"github.com/hupe1980/stateset/nfa"
	"github.com/hupe1980/stateset/testutil"
)

// withDeadStates returns Literal("ab") plus an unreachable state (3) and a
// trap (4) that never reaches the accept.
func withDeadStates() *nfa.NFA {
	n := nfa.Literal("ab")
	orphan := n.AddState()
	n.AddEdge(orphan, 'x', 'x', 2)
	trap := n.AddState()
	n.AddEdge(0, 'z', 'z', trap)
	n.AddEdge(trap, 'z', 'z', trap)
	return n
}

func TestPrune(t *testing.T) {
	n := withDeadStates()

	pruned, mapping, err := Prune(n)
	require.NoError(t, err)
	require.NoError(t, pruned.Validate())

	assert.Equal(t, []int{0, 1, 2, -1, -1}, mapping)
	assert.Equal(t, 3, pruned.NumStates())
	assert.Equal(t, 0, pruned.Start)
	assert.Equal(t, []int{2}, pruned.Accepts)
	assert.Len(t, pruned.States[0].Edges, 1, "edge into the trap is dropped")

	// The input is untouched.
	assert.Equal(t, 5, n.NumStates())
	assert.Len(t, n.States[0].Edges, 2)

	for _, in := range []string{"", "a", "ab", "abc", "z", "zz", "xb"} {
		assert.Equal(t, accepts(n, []byte(in)), accepts(pruned, []byte(in)), "input %q", in)
	}
}

func TestPruneKeepsStart(t *testing.T) {
	n := nfa.Alternate()

	pruned, mapping, err := Prune(n)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned.NumStates())
	assert.Equal(t, 0, pruned.Start)
	assert.Empty(t, pruned.Accepts)
	assert.Equal(t, []int{0, -1}, mapping)

	dfa, err := NewBuilder().Build(context.Background(), pruned)
	require.NoError(t, err)
	assert.False(t, dfa.Match(nil))
	assert.False(t, dfa.CanMatch(dfa.Start()))
}

func TestPruneNoop(t *testing.T) {
	n := nfa.Concat(nfa.Literal("a"), nfa.Star(nfa.Literal("b")))

	pruned, mapping, err := Prune(n)
	require.NoError(t, err)
	assert.Equal(t, n.NumStates(), pruned.NumStates())
	for old, nw := range mapping {
		assert.Equal(t, old, nw)
	}
}

func TestPruneInvalid(t *testing.T) {
	_, _, err := Prune(&nfa.NFA{})
	assert.ErrorIs(t, err, nfa.ErrInvalidState)
}

func TestRenumber(t *testing.T) {
	for _, kind := range []backing.Kind{backing.Dense, backing.Sparse} {
		t.Run(kind.String(), func(t *testing.T) {
			ctor := backing.Constructor(kind)
			const universe = 130

			mapping := make([]int, universe)
			next := 0
			for old := range mapping {
				if old%3 == 1 {
					mapping[old] = -1
					continue
				}
				mapping[old] = next
				next++
			}

			a := testutil.Fill(ctor(), universe, 0, 1, 2, 64, 65, 66, 127, 129)
			b := testutil.Fill(ctor(), universe)
			inactive := ctor()

			require.NoError(t, Renumber([]stateset.Set{a, b, inactive}, mapping))

			var want []stateset.StateID
			for _, old := range []int{0, 1, 2, 64, 65, 66, 127, 129} {
				if nw := mapping[old]; nw >= 0 {
					want = append(want, stateset.StateID(nw))
				}
			}
			assert.Equal(t, want, stateset.Collect(a))
			assert.Equal(t, uint32(universe), a.UniverseSize())
			assert.Equal(t, 0, b.Len())
			assert.False(t, inactive.IsActive())
		})
	}
}

func TestRenumberInvalid(t *testing.T) {
	s := testutil.Fill(backing.New(backing.Dense), 4, 1, 3)

	tests := []struct {
		name    string
		mapping []int
	}{
		{"grows", []int{0, 2, -1, -1}},
		{"swaps", []int{1, 0, 2, 3}},
		{"collides", []int{0, 1, 1, 2}},
		{"short", []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Renumber([]stateset.Set{s}, tt.mapping)
			assert.ErrorIs(t, err, ErrInvalidMapping)
			assert.Equal(t, []stateset.StateID{1, 3}, stateset.Collect(s), "sets are untouched on error")
		})
	}
}

func TestRemap(t *testing.T) {
	n := withDeadStates()

	dfa, err := NewBuilder().Build(context.Background(), n)
	require.NoError(t, err)

	before := make([][]stateset.StateID, dfa.NumStates())
	for s := range before {
		before[s] = stateset.Collect(dfa.Configuration(State(s)))
	}

	_, mapping, err := Prune(n)
	require.NoError(t, err)
	require.NoError(t, dfa.Remap(mapping))

	for s := range before {
		want := []stateset.StateID{}
		for _, old := range before[s] {
			if nw := mapping[old]; nw >= 0 {
				want = append(want, stateset.StateID(nw))
			}
		}
		assert.Equal(t, want, stateset.Collect(dfa.Configuration(State(s))), "state %d", s)
	}

	// Matching does not depend on configurations.
	assert.True(t, dfa.Match([]byte("ab")))
	assert.False(t, dfa.Match([]byte("zz")))
}
