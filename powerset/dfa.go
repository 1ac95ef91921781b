package powerset

import "github.com/hupe1980/stateset"

// State represents a state in the constructed DFA.
type State uint32

// DeadState is the sink state from which no accepting state is reachable.
// Its configuration is the empty set.
const DeadState State = 0

// DFA is a deterministic automaton produced by subset construction.
//
// Properties:
//   - Deterministic: single transition per (state, input)
//   - Finite: bounded by the builder's state limit
//   - State 0 is dead, state 1 is the start
type DFA struct {
	// transitions[state][byte] = next state
	transitions [][256]State
	accepting   []bool
	live        []bool

	// configurations[state] is the set of NFA states the DFA state stands for.
	configurations []stateset.Set
}

// Start returns the initial state.
func (d *DFA) Start() State {
	return 1
}

// Step returns the next state for the given input byte.
// Returns DeadState if no transition exists.
func (d *DFA) Step(state State, b byte) State {
	if int(state) >= len(d.transitions) {
		return DeadState
	}
	return d.transitions[state][b]
}

// IsAccept returns true if the state is an accepting state.
func (d *DFA) IsAccept(state State) bool {
	if int(state) >= len(d.accepting) {
		return false
	}
	return d.accepting[state]
}

// CanMatch returns true if any accepting state is reachable from this state.
func (d *DFA) CanMatch(state State) bool {
	if int(state) >= len(d.live) {
		return false
	}
	return d.live[state]
}

// NumStates returns the number of DFA states, including the dead state.
func (d *DFA) NumStates() int {
	return len(d.transitions)
}

// Match reports whether the DFA accepts input in full.
func (d *DFA) Match(input []byte) bool {
	s := d.Start()
	for _, b := range input {
		s = d.Step(s, b)
		if !d.CanMatch(s) {
			return false
		}
	}
	return d.IsAccept(s)
}

// Configuration returns a copy of the NFA state set behind a DFA state, or
// nil for an unknown state.
func (d *DFA) Configuration(state State) stateset.Set {
	if int(state) >= len(d.configurations) {
		return nil
	}
	return d.configurations[state].Clone()
}

// Remap renumbers the NFA identifiers in every configuration. See Renumber.
func (d *DFA) Remap(mapping []int) error {
	return Renumber(d.configurations, mapping)
}

// computeLive marks states from which an accepting state is reachable.
func (d *DFA) computeLive() {
	n := len(d.transitions)
	reverse := make([][]State, n)
	for from := range d.transitions {
		seen := make(map[State]bool)
		for _, to := range d.transitions[from] {
			if !seen[to] {
				seen[to] = true
				reverse[to] = append(reverse[to], State(from))
			}
		}
	}

	d.live = make([]bool, n)
	stack := make([]State, 0, n)
	for s, acc := range d.accepting {
		if acc {
			d.live[s] = true
			stack = append(stack, State(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range reverse[s] {
			if !d.live[p] {
				d.live[p] = true
				stack = append(stack, p)
			}
		}
	}
}
