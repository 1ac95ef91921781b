// Package backing selects a state-set representation.
package backing

import (
	"fmt"
	"strings"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/dense"
	"github.com/hupe1980/stateset/sparse"
)

// Kind names a state-set representation.
type Kind int

const (
	// Dense is the bit-vector representation.
	Dense Kind = iota
	// Sparse is the Roaring-bitmap representation.
	Sparse
)

// DefaultSparseThreshold is the universe size from which Select prefers the
// sparse representation.
const DefaultSparseThreshold = 1 << 16

func (k Kind) String() string {
	switch k {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses the String form of a Kind (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	default:
		return 0, fmt.Errorf("backing: unknown kind %q", s)
	}
}

// New returns an inactive Set of the given kind.
func New(k Kind) stateset.Set {
	switch k {
	case Dense:
		return dense.New()
	case Sparse:
		return sparse.New()
	default:
		panic(fmt.Sprintf("backing: unknown kind %d", int(k)))
	}
}

// Constructor returns a stateset.Constructor for the given kind.
func Constructor(k Kind) stateset.Constructor {
	switch k {
	case Dense:
		return func() stateset.Set { return dense.New() }
	case Sparse:
		return func() stateset.Set { return sparse.New() }
	default:
		panic(fmt.Sprintf("backing: unknown kind %d", int(k)))
	}
}

// Select picks Sparse for universes of at least threshold identifiers and
// Dense otherwise. A zero threshold uses DefaultSparseThreshold.
func Select(universeSize, threshold uint32) Kind {
	if threshold == 0 {
		threshold = DefaultSparseThreshold
	}
	if universeSize >= threshold {
		return Sparse
	}
	return Dense
}
