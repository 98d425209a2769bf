package robinmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/einfachandy/robinmap"
)

// TestIteratorYieldsExactMultiset inserts three pairs and checks a
// Cursor yields exactly that multiset, each key and value exactly
// once, in some order.
func TestIteratorYieldsExactMultiset(t *testing.T) {
	m := robinmap.New[int]()
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		assert.True(t, m.Add([]byte(k), v).Ok())
	}

	got := map[string]int{}
	c := m.Iterator()
	for {
		k, v, ok := c.NextKeyValue(m)
		if !ok {
			break
		}
		got[string(k)] = v
	}

	assert.Equal(t, want, got)

	// a second, freshly-positioned cursor yields the same multiset
	// independently of the first.
	got2 := map[string]int{}
	c2 := m.Iterator()
	for {
		k, ok := c2.NextKey(m)
		if !ok {
			break
		}
		v, _ := m.Find(k)
		got2[string(k)] = v
	}
	assert.Equal(t, want, got2)
}

func TestIteratorEmptyMap(t *testing.T) {
	m := robinmap.New[int]()
	c := m.Iterator()
	_, _, ok := c.NextKeyValue(m)
	assert.False(t, ok)
}

func TestIteratorValueOnly(t *testing.T) {
	m := robinmap.New[string]()
	m.Add([]byte("x"), "ex")

	c := m.Iterator()
	seen := []string{}
	for {
		v, ok := c.NextValue(m)
		if !ok {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []string{"ex"}, seen)
}
