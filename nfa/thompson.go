package nfa

// Range is an inclusive byte range.
type Range struct {
	Lo, Hi byte
}

// Literal matches s exactly. An empty s matches the empty string.
func Literal(s string) *NFA {
	n := New(len(s) + 1)
	for i := 0; i < len(s); i++ {
		n.AddEdge(i, s[i], s[i], i+1)
	}
	n.Accepts = []int{len(s)}
	return n
}

// Class matches one byte in any of the ranges.
func Class(ranges ...Range) *NFA {
	n := New(2)
	for _, r := range ranges {
		n.AddEdge(0, r.Lo, r.Hi, 1)
	}
	n.Accepts = []int{1}
	return n
}

// Any matches one arbitrary byte.
func Any() *NFA {
	return Class(Range{Lo: 0, Hi: 0xff})
}

// Concat matches each part in sequence.
func Concat(parts ...*NFA) *NFA {
	if len(parts) == 0 {
		return Literal("")
	}
	out := parts[0].Clone()
	for _, p := range parts[1:] {
		off := out.embed(p)
		for _, a := range out.Accepts {
			out.AddEpsilon(a, p.Start+off)
		}
		out.Accepts = shift(p.Accepts, off)
	}
	return out
}

// Alternate matches any one of the alternatives.
func Alternate(alts ...*NFA) *NFA {
	out := New(1)
	accept := -1
	for _, a := range alts {
		off := out.embed(a)
		out.AddEpsilon(0, a.Start+off)
		if accept < 0 {
			accept = out.AddState()
		}
		for _, acc := range a.Accepts {
			out.AddEpsilon(acc+off, accept)
		}
	}
	if accept < 0 {
		// No alternatives: an unreachable accept, matching nothing.
		accept = out.AddState()
	}
	out.Accepts = []int{accept}
	return out
}

// Star matches zero or more repetitions of a.
func Star(a *NFA) *NFA {
	out := New(1)
	off := out.embed(a)
	accept := out.AddState()
	out.AddEpsilon(0, a.Start+off)
	out.AddEpsilon(0, accept)
	for _, acc := range a.Accepts {
		out.AddEpsilon(acc+off, a.Start+off)
		out.AddEpsilon(acc+off, accept)
	}
	out.Accepts = []int{accept}
	return out
}

// Plus matches one or more repetitions of a.
func Plus(a *NFA) *NFA {
	out := a.Clone()
	accept := out.AddState()
	for _, acc := range a.Accepts {
		out.AddEpsilon(acc, a.Start)
		out.AddEpsilon(acc, accept)
	}
	out.Accepts = []int{accept}
	return out
}

// Optional matches a or the empty string.
func Optional(a *NFA) *NFA {
	return Alternate(a, Literal(""))
}

// embed appends the states of other, shifted past the existing ones, and
// returns the offset.
func (n *NFA) embed(other *NFA) int {
	off := len(n.States)
	for _, s := range other.States {
		c := State{
			Edges:   make([]Edge, len(s.Edges)),
			Epsilon: shift(s.Epsilon, off),
		}
		for i, e := range s.Edges {
			c.Edges[i] = Edge{Lo: e.Lo, Hi: e.Hi, To: e.To + off}
		}
		n.States = append(n.States, c)
	}
	return off
}

func shift(ids []int, off int) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = id + off
	}
	return out
}
