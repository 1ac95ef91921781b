package nfa

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidState is returned when a transition, start or accept refers to a
// state that does not exist.
var ErrInvalidState = errors.New("nfa: invalid state")

// Edge is a transition on any byte in [Lo, Hi].
type Edge struct {
	Lo, Hi byte
	To     int
}

// Matches reports whether b is in the edge's byte range.
func (e Edge) Matches(b byte) bool {
	return e.Lo <= b && b <= e.Hi
}

// State is one NFA state.
type State struct {
	Edges   []Edge
	Epsilon []int
}

// NFA is a nondeterministic finite automaton over bytes with epsilon
// transitions. States are numbered densely from 0.
type NFA struct {
	States  []State
	Start   int
	Accepts []int
}

// New returns an NFA with n states and no transitions. The start state is 0.
func New(n int) *NFA {
	return &NFA{States: make([]State, n)}
}

// NumStates returns the number of states.
func (n *NFA) NumStates() int {
	return len(n.States)
}

// AddState appends a state and returns its index.
func (n *NFA) AddState() int {
	n.States = append(n.States, State{})
	return len(n.States) - 1
}

// AddEdge adds a transition from -> to on bytes in [lo, hi].
func (n *NFA) AddEdge(from int, lo, hi byte, to int) {
	n.States[from].Edges = append(n.States[from].Edges, Edge{Lo: lo, Hi: hi, To: to})
}

// AddEpsilon adds an epsilon transition from -> to.
func (n *NFA) AddEpsilon(from, to int) {
	n.States[from].Epsilon = append(n.States[from].Epsilon, to)
}

// AddAccept marks state as accepting.
func (n *NFA) AddAccept(state int) {
	if !slices.Contains(n.Accepts, state) {
		n.Accepts = append(n.Accepts, state)
	}
}

// Validate checks that every referenced state exists.
func (n *NFA) Validate() error {
	size := len(n.States)
	if size == 0 {
		return fmt.Errorf("%w: empty automaton", ErrInvalidState)
	}
	if n.Start < 0 || n.Start >= size {
		return fmt.Errorf("%w: start %d", ErrInvalidState, n.Start)
	}
	for _, a := range n.Accepts {
		if a < 0 || a >= size {
			return fmt.Errorf("%w: accept %d", ErrInvalidState, a)
		}
	}
	for i, s := range n.States {
		for _, e := range s.Edges {
			if e.To < 0 || e.To >= size {
				return fmt.Errorf("%w: edge %d -> %d", ErrInvalidState, i, e.To)
			}
			if e.Lo > e.Hi {
				return fmt.Errorf("%w: edge %d has empty range [%d, %d]", ErrInvalidState, i, e.Lo, e.Hi)
			}
		}
		for _, to := range s.Epsilon {
			if to < 0 || to >= size {
				return fmt.Errorf("%w: epsilon %d -> %d", ErrInvalidState, i, to)
			}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (n *NFA) Clone() *NFA {
	c := &NFA{
		States:  make([]State, len(n.States)),
		Start:   n.Start,
		Accepts: slices.Clone(n.Accepts),
	}
	for i, s := range n.States {
		c.States[i] = State{
			Edges:   slices.Clone(s.Edges),
			Epsilon: slices.Clone(s.Epsilon),
		}
	}
	return c
}
