// Package powerset builds DFAs from NFAs by subset construction.
//
// Every DFA state stands for a configuration: the set of NFA states the
// automaton may occupy. Configurations are stateset.Set values, so the same
// construction runs on either backing:
//
//	b := powerset.NewBuilder(
//		powerset.WithAutoKind(0),
//		powerset.WithPrune(),
//	)
//	dfa, err := b.Build(ctx, nfa.Concat(nfa.Literal("ab"), nfa.Star(nfa.Any())))
//
// Equal configurations are merged by hash, with Equal resolving collisions.
// State 0 is the dead state and state 1 the start.
package powerset
