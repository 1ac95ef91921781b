// Package stateset provides the state-set abstraction used by subset
// (powerset) construction in a regular-expression compiler.
//
// A Set holds automaton-state identifiers drawn from a dense universe
// [0, universeSize) fixed at creation. Construction algorithms create,
// mutate, compare and clone such sets many times per compiled pattern, so
// the representation is pluggable behind one interface.
//
// # Backings
//
//	dense   bit vector, one bit per identifier (package dense)
//	sparse  Roaring bitmap, memory follows the members (package sparse)
//
// Package backing maps a Kind to a constructor and offers a size-based
// heuristic. Package powerset is the construction driver built on the Set
// contract.
//
// # Lifecycle
//
// A Set is declared inactive and allocates nothing until Create:
//
//	s := dense.New()        // IsActive() == false, behaves as empty
//	s.Create(numStates)     // IsActive() == true
//	s.Add(2)                // true: state is new
//	s.Add(2)                // false: already present
//
// Bulk insertion uses a scoped batch:
//
//	stateset.Batch(s, func(add func(stateset.StateID)) {
//	    for _, id := range successors {
//	        add(id)
//	    }
//	})
//
// # Programmer Errors
//
// Out-of-range identifiers, double Create, insertion into an inactive Set
// and comparisons across universe sizes panic with an error wrapping
// ErrOutOfRange, ErrAlreadyCreated, ErrNotCreated or ErrUniverseMismatch.
// These are defects, not recoverable conditions.
//
// # Concurrency
//
// A Set is owned by one construction worker. Clone is the only way to hand a
// Set to another worker; clones share no storage.
//
// # Mixing Backings
//
// IsDisjoint and Equal take a fast path when both operands share a concrete
// type and fall back to DisjointByIteration / EqualByIteration otherwise.
// Hash is computed over a canonical word form, so equal sets hash equally
// regardless of backing.
package stateset
