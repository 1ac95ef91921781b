// Package nfa provides a minimal byte-level NFA model for subset construction.
//
// There is no pattern parser. Automata are assembled programmatically with
// Thompson combinators:
//
//	// (ab|c)*d
//	n := nfa.Concat(
//	    nfa.Star(nfa.Alternate(nfa.Literal("ab"), nfa.Literal("c"))),
//	    nfa.Literal("d"),
//	)
//
// or state by state with New, AddEdge, AddEpsilon and AddAccept.
package nfa
