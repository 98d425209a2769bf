package robinmap_test

import (
	"fmt"
	"testing"

	"github.com/einfachandy/robinmap"
)

// benchmarkKeys pre-generates hex-encoded integer keys, the same key
// shape benchmark.c builds with snprintf(buf, 255, "%zx", i).
func benchmarkKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := 0; i < n; i++ {
		keys[i] = []byte(fmt.Sprintf("%x", i))
	}
	return keys
}

func BenchmarkAdd(b *testing.B) {
	keys := benchmarkKeys(b.N)
	m := robinmap.New[int]()

	b.ResetTimer()
	for i, k := range keys {
		m.Add(k, i)
	}
}

func BenchmarkFind(b *testing.B) {
	keys := benchmarkKeys(b.N)
	m := robinmap.New[int]()
	for i, k := range keys {
		m.Add(k, i)
	}

	b.ResetTimer()
	for _, k := range keys {
		m.Find(k)
	}
}

func BenchmarkRemove(b *testing.B) {
	keys := benchmarkKeys(b.N)
	m := robinmap.New[int]()
	for i, k := range keys {
		m.Add(k, i)
	}

	b.ResetTimer()
	for _, k := range keys {
		m.Remove(k)
	}
}

func BenchmarkAddReserved(b *testing.B) {
	keys := benchmarkKeys(b.N)
	m := robinmap.New[int]()
	m.Reserve(b.N)

	b.ResetTimer()
	for i, k := range keys {
		m.Add(k, i)
	}
}

func BenchmarkEach(b *testing.B) {
	keys := benchmarkKeys(1000)
	m := robinmap.New[int]()
	for i, k := range keys {
		m.Add(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Each(func(k []byte, v int) bool { return false })
	}
}
