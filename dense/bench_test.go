package dense

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/sparse"
	"github.com/hupe1980/stateset/testutil"
)

// Comparative benchmarks: dense Set vs sparse Set vs raw Roaring.
// Run with: go test -bench=. -benchmem ./dense/

const benchUniverse = 4096

func benchIDs() []stateset.StateID {
	return testutil.NewRNG(4711).ClusteredIDs(256, 4, 64, benchUniverse)
}

func BenchmarkAdd_Dense(b *testing.B) {
	ids := benchIDs()
	s := NewSet(benchUniverse)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for _, id := range ids {
			s.Add(id)
		}
	}
}

func BenchmarkAddBatch_Dense(b *testing.B) {
	ids := benchIDs()
	s := NewSet(benchUniverse)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for _, id := range ids {
			s.AddBatch(id)
		}
		s.AddBatchFinish()
	}
}

func BenchmarkAddBatch_Sparse(b *testing.B) {
	ids := benchIDs()
	s := sparse.NewSet(benchUniverse)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for _, id := range ids {
			s.AddBatch(id)
		}
		s.AddBatchFinish()
	}
}

func BenchmarkIsDisjoint_Dense(b *testing.B) {
	rng := testutil.NewRNG(1)
	x := testutil.Fill(New(), benchUniverse, rng.UniqueIDs(64, benchUniverse/2)...)
	y := NewSet(benchUniverse)
	for _, id := range rng.UniqueIDs(64, benchUniverse/2) {
		y.Add(id + benchUniverse/2)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = x.IsDisjoint(y)
	}
}

func BenchmarkIsDisjoint_Roaring(b *testing.B) {
	rng := testutil.NewRNG(1)
	x, y := roaring.New(), roaring.New()
	for _, id := range rng.UniqueIDs(64, benchUniverse/2) {
		x.Add(uint32(id))
	}
	for _, id := range rng.UniqueIDs(64, benchUniverse/2) {
		y.Add(uint32(id) + benchUniverse/2)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = x.Intersects(y)
	}
}

func BenchmarkClone_Dense(b *testing.B) {
	s := testutil.Fill(New(), benchUniverse, benchIDs()...)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Clone()
	}
}

func BenchmarkHash_Dense(b *testing.B) {
	s := testutil.Fill(New(), benchUniverse, benchIDs()...)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Hash()
	}
}

func BenchmarkIterate_Dense(b *testing.B) {
	s := testutil.Fill(New(), benchUniverse, benchIDs()...)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := s.Iterator()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}
