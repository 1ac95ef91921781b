// Package testutil provides testing utilities for stateset.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Identifiers
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.IDs(1000, universe)          // uniform, with duplicates
//	ids = rng.UniqueIDs(100, universe)      // distinct, ascending
//	ids = rng.ClusteredIDs(1000, 4, 32, universe)
//
// # Contract Suite
//
// Every backing runs the shared contract suite from its own tests:
//
//	func TestContract(t *testing.T) {
//	    testutil.RunContract(t, func() stateset.Set { return dense.New() })
//	}
//
// The suite covers lifecycle, programmer-error panics, the membership,
// batch, clone, disjointness, iteration and replace properties (with
// gopter), and compares results against a bits-and-blooms bitset oracle.
package testutil
