package stateset

// StateID identifies one automaton state within a fixed universe.
// Identifiers are assigned by the automaton builder and are always in
// [0, universeSize).
type StateID uint32

// Iterator yields the members of a Set in strictly increasing order.
//
// An Iterator is finite and cannot be restarted; request a new one from
// the Set for a second traversal. Mutating the Set while iterating is
// undefined.
type Iterator interface {
	// Next returns the next member, or false once the set is exhausted.
	Next() (StateID, bool)
}

// Set is a mutable set of state identifiers drawn from a universe fixed at
// creation.
//
// A Set starts inactive: it holds no storage until Create is called. Queries
// on an inactive Set behave as if it were empty; insertions panic.
//
// Sets are not safe for concurrent use. Use Clone to hand a Set to another
// worker.
type Set interface {
	// Create allocates storage for universeSize identifiers. Calling it on an
	// active Set panics.
	Create(universeSize uint32)

	// IsActive reports whether Create has been called.
	IsActive() bool

	// UniverseSize returns the size given to Create, or 0 while inactive.
	UniverseSize() uint32

	// Contains reports whether id is a member.
	Contains(id StateID) bool

	// Add inserts id and reports whether the set changed.
	Add(id StateID) bool

	// AddBatch inserts id without reporting a change. Membership queries are
	// undefined until AddBatchFinish is called.
	AddBatch(id StateID)

	// AddBatchFinish ends a run of AddBatch calls.
	AddBatchFinish()

	// Remove deletes id and reports whether it was a member.
	Remove(id StateID) bool

	// Replace removes oldID and inserts newID without checking either.
	Replace(oldID, newID StateID)

	// Clear removes every member. The Set stays active.
	Clear()

	// IsDisjoint reports whether the two sets share no member.
	IsDisjoint(other Set) bool

	// Iterator returns an ascending iterator over the current members.
	Iterator() Iterator

	// Clone returns an independent deep copy.
	Clone() Set

	// Equal reports structural equality.
	Equal(other Set) bool

	// Hash returns a structural hash consistent with Equal.
	Hash() uint64

	// Len returns the number of members.
	Len() int
}

// Constructor returns a fresh, inactive Set.
type Constructor func() Set
