package powerset

import (
	"fmt"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/backing"
	"github.com/hupe1980/stateset/nfa"
)

// Prune removes NFA states that are unreachable from the start or cannot
// reach an accepting state. The start state is always kept.
//
// mapping[old] is the new index of a surviving state, or -1. Surviving
// states keep their relative order, so mapping is a valid Renumber input.
func Prune(n *nfa.NFA) (*nfa.NFA, []int, error) {
	if err := n.Validate(); err != nil {
		return nil, nil, fmt.Errorf("powerset: %w", err)
	}

	universe := uint32(n.NumStates())
	newSet := backing.Constructor(backing.Select(universe, 0))

	reach := newSet()
	reach.Create(universe)
	reach.Add(stateset.StateID(n.Start))
	stack := []int{n.Start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.States[s].Edges {
			if reach.Add(stateset.StateID(e.To)) {
				stack = append(stack, e.To)
			}
		}
		for _, to := range n.States[s].Epsilon {
			if reach.Add(stateset.StateID(to)) {
				stack = append(stack, to)
			}
		}
	}

	preds := make([][]int, n.NumStates())
	for from, s := range n.States {
		for _, e := range s.Edges {
			preds[e.To] = append(preds[e.To], from)
		}
		for _, to := range s.Epsilon {
			preds[to] = append(preds[to], from)
		}
	}

	alive := newSet()
	alive.Create(universe)
	for _, a := range n.Accepts {
		if reach.Contains(stateset.StateID(a)) && alive.Add(stateset.StateID(a)) {
			stack = append(stack, a)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range preds[s] {
			if reach.Contains(stateset.StateID(p)) && alive.Add(stateset.StateID(p)) {
				stack = append(stack, p)
			}
		}
	}
	alive.Add(stateset.StateID(n.Start))

	mapping := make([]int, n.NumStates())
	for i := range mapping {
		mapping[i] = -1
	}
	next := 0
	for id := range stateset.All(alive) {
		mapping[id] = next
		next++
	}

	out := nfa.New(next)
	out.Start = mapping[n.Start]
	for old, s := range n.States {
		from := mapping[old]
		if from < 0 {
			continue
		}
		for _, e := range s.Edges {
			if to := mapping[e.To]; to >= 0 {
				out.AddEdge(from, e.Lo, e.Hi, to)
			}
		}
		for _, t := range s.Epsilon {
			if to := mapping[t]; to >= 0 {
				out.AddEpsilon(from, to)
			}
		}
	}
	for _, a := range n.Accepts {
		if to := mapping[a]; to >= 0 {
			out.AddAccept(to)
		}
	}
	return out, mapping, nil
}

// Renumber rewrites every set in place after a compaction: each member old
// becomes mapping[old], and members mapped to -1 are removed.
//
// mapping must assign strictly increasing new indices to surviving states,
// each no greater than its old index, and must cover each set's universe.
// Sets keep their universe size; survivors land in the dense prefix.
func Renumber(sets []stateset.Set, mapping []int) error {
	prev := -1
	for old, nw := range mapping {
		if nw < 0 {
			continue
		}
		if nw <= prev || nw > old {
			return fmt.Errorf("%w: state %d -> %d", ErrInvalidMapping, old, nw)
		}
		prev = nw
	}

	for _, s := range sets {
		if !s.IsActive() {
			continue
		}
		if int(s.UniverseSize()) != len(mapping) {
			return fmt.Errorf("%w: mapping covers %d states, set universe is %d", ErrInvalidMapping, len(mapping), s.UniverseSize())
		}
	}

	for _, s := range sets {
		// Ascending order with new <= old never overwrites an unprocessed member.
		for _, old := range stateset.Collect(s) {
			switch nw := mapping[old]; {
			case nw < 0:
				s.Remove(old)
			case stateset.StateID(nw) != old:
				s.Replace(old, stateset.StateID(nw))
			}
		}
	}
	return nil
}
