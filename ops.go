package stateset

import "iter"

// All returns a range-over-func view of s in ascending order.
func All(s Set) iter.Seq[StateID] {
	return func(yield func(StateID) bool) {
		it := s.Iterator()
		for {
			id, ok := it.Next()
			if !ok || !yield(id) {
				return
			}
		}
	}
}

// Collect returns the members of s as an ascending slice.
func Collect(s Set) []StateID {
	out := make([]StateID, 0, s.Len())
	for id := range All(s) {
		out = append(out, id)
	}
	return out
}

// Batch runs fill inside an AddBatch/AddBatchFinish scope. The set is
// consistent again once Batch returns.
func Batch(s Set, fill func(add func(StateID))) {
	defer s.AddBatchFinish()
	fill(s.AddBatch)
}

// Merge adds the members of every src to dst in one batch.
func Merge(dst Set, srcs ...Set) {
	Batch(dst, func(add func(StateID)) {
		for _, src := range srcs {
			CheckUniverse(dst, src)
			it := src.Iterator()
			for id, ok := it.Next(); ok; id, ok = it.Next() {
				add(id)
			}
		}
	})
}

// DisjointByIteration reports whether a and b share no member using only the
// Set contract. Backings use it when the other operand has a different
// concrete type.
func DisjointByIteration(a, b Set) bool {
	CheckUniverse(a, b)
	if b.Len() < a.Len() {
		a, b = b, a
	}
	it := a.Iterator()
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		if b.Contains(id) {
			return false
		}
	}
	return true
}

// EqualByIteration reports whether a and b hold the same members using only
// the Set contract.
func EqualByIteration(a, b Set) bool {
	CheckUniverse(a, b)
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for {
		x, okA := ia.Next()
		y, okB := ib.Next()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if x != y {
			return false
		}
	}
}
