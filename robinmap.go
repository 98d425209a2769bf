package robinmap

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/einfachandy/robinmap/internal/halfsiphash"
)

const (
	// defaultInitialCapacity is used by New when the caller does not
	// specify a minimum capacity.
	defaultInitialCapacity = 16

	// maxCapacity is the platform-safe ceiling on capacity, the Go
	// analogue of the reference implementation's UINT_MAX/2 overflow
	// guard. It also keeps capacity comfortably inside the domain a
	// 32-bit cached hash can address without the modulo distribution
	// degrading.
	maxCapacity = math.MaxInt32
)

// slot is one bucket of the table: a key, its cached hash, the probe
// sequence length recording how far it has been displaced from its
// home slot, and the associated value. Occupancy is determined solely
// by key.isEmpty().
type slot[V any] struct {
	key   key
	hash  uint32
	psl   uint16
	value V
}

// Map is a Robin Hood open-addressed hash table keyed by byte strings.
// The expected maximum probe sequence length for a table at the
// configured load factor is O(ln(n)); Find's early exit relies on the
// PSL invariant holding after every mutation.
//
// A Map is not safe for concurrent use: Add and Remove may rehash,
// which invalidates the slot array backing any outstanding Cursor.
type Map[V any] struct {
	slots       []slot[V]
	capacity    int
	length      int
	minCapacity int
	seed        uint64
}

func newSlotArray[V any](capacity int) []slot[V] {
	return make([]slot[V], capacity)
}

// New creates a ready-to-use Map with the default initial capacity and
// a seed drawn from the OS CSPRNG.
func New[V any]() *Map[V] {
	return NewWithCapacity[V](defaultInitialCapacity)
}

// NewWithCapacity creates a ready-to-use Map whose capacity never
// shrinks below minCapacity, seeded from the OS CSPRNG. Values less
// than 1 fall back to the default initial capacity.
func NewWithCapacity[V any](minCapacity int) *Map[V] {
	return newMap[V](minCapacity, 0, true)
}

// NewWithSeed creates a ready-to-use Map seeded deterministically with
// seed instead of OS randomness. It exists for reproducible tests; the
// reseed-on-every-rehash policy still applies, so determinism is only
// guaranteed until the first Add/Remove that triggers a resize.
func NewWithSeed[V any](minCapacity int, seed uint64) *Map[V] {
	return newMap[V](minCapacity, seed, false)
}

func newMap[V any](minCapacity int, seed uint64, randomize bool) *Map[V] {
	if minCapacity < 1 {
		minCapacity = defaultInitialCapacity
	}

	m := &Map[V]{
		minCapacity: minCapacity,
		seed:        seed,
	}
	if randomize {
		m.seed ^= m.drawSeed()
	}
	m.slots = newSlotArray[V](minCapacity)
	m.capacity = minCapacity

	return m
}

// drawSeed reads a fresh 64-bit word from the OS CSPRNG. It panics if
// the platform's entropy source is unavailable, since a hash table
// that silently fell back to a predictable seed would defeat the
// reseeding's entire purpose of frustrating collision attacks.
func (m *Map[V]) drawSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("robinmap: failed to read OS randomness: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Len returns the number of key-value pairs currently stored.
func (m *Map[V]) Len() int {
	return m.length
}

// Cap returns the current slot count.
func (m *Map[V]) Cap() int {
	return m.capacity
}

// Find returns the value stored for key, or false if key is absent.
func (m *Map[V]) Find(k []byte) (V, bool) {
	var zero V
	if len(k) == 0 {
		return zero, false
	}

	h := halfsiphash.Sum32(k, m.seed)
	idx := int(uint64(h) % uint64(m.capacity))

	var psl uint16
	for {
		cur := &m.slots[idx]
		if cur.key.isEmpty() || psl > cur.psl {
			return zero, false
		}
		if cur.hash == h && equalKeyBytes(cur.key, k) {
			return cur.value, true
		}
		psl++
		idx++
		if idx == m.capacity {
			idx = 0
		}
	}
}

// Add maps k to val. If k is already present, the existing value is
// preserved and returned via Result.Value with ResultDuplicate; val is
// discarded. A zero-length key yields ResultInvalidKey without
// mutating the map.
func (m *Map[V]) Add(k []byte, val V) Result[V] {
	if len(k) == 0 {
		return Result[V]{Kind: ResultInvalidKey}
	}

	if m.needsGrow() {
		if !m.grow() {
			return Result[V]{Kind: ResultOutOfMemory}
		}
	}

	h := halfsiphash.Sum32(k, m.seed)
	entry := slot[V]{key: newKey(k), hash: h, value: val}

	existing, isDup := m.insertNoResize(entry)
	if isDup {
		return Result[V]{Kind: ResultDuplicate, Value: existing}
	}
	return Result[V]{Kind: ResultOK}
}

// insertNoResize places entry assuming the table has already been
// grown if necessary. It implements the Robin Hood creed: an entry
// that has probed further than the resident it meets steals that
// resident's slot, and the displaced resident continues probing in
// entry's place. A duplicate key short-circuits the steal check
// entirely, exactly at the point the original C insert does.
func (m *Map[V]) insertNoResize(entry slot[V]) (existing V, isDuplicate bool) {
	idx := int(uint64(entry.hash) % uint64(m.capacity))

	for {
		cur := &m.slots[idx]

		if cur.key.isEmpty() {
			*cur = entry
			m.length++
			if debugAssertions {
				m.checkPSL(idx)
			}
			var zero V
			return zero, false
		}

		if cur.hash == entry.hash && equalKey(cur.key, entry.key) {
			return cur.value, true
		}

		if entry.psl > cur.psl {
			*cur, entry = entry, *cur
		}

		entry.psl++
		idx++
		if idx == m.capacity {
			idx = 0
		}
	}
}

// Remove deletes k and returns its value via ResultOK, or
// ResultNotFound if k was absent. A zero-length key yields
// ResultInvalidKey without searching the table.
func (m *Map[V]) Remove(k []byte) Result[V] {
	if len(k) == 0 {
		return Result[V]{Kind: ResultInvalidKey}
	}

	h := halfsiphash.Sum32(k, m.seed)
	idx := int(uint64(h) % uint64(m.capacity))

	var (
		psl   uint16
		found = -1
	)
	for {
		cur := &m.slots[idx]
		if cur.key.isEmpty() || psl > cur.psl {
			break
		}
		if cur.hash == h && equalKeyBytes(cur.key, k) {
			found = idx
			break
		}
		psl++
		idx++
		if idx == m.capacity {
			idx = 0
		}
	}

	if found == -1 {
		return Result[V]{Kind: ResultNotFound}
	}

	removed := m.slots[found].value
	m.length--
	m.backwardShift(found)

	if m.length > m.minCapacity && m.needsShrink() {
		m.shrink()
	}

	return Result[V]{Kind: ResultOK, Value: removed}
}

// backwardShift empties the slot at idx and shifts every subsequent
// displaced entry one slot closer to its home, decrementing each
// shifted entry's PSL, until it reaches an empty slot or a slot whose
// occupant is already at its home position (PSL 0). This is the
// tombstone-free deletion that keeps the PSL-monotonicity invariant
// find's early-exit depends on intact.
func (m *Map[V]) backwardShift(idx int) {
	m.slots[idx] = slot[V]{}

	for {
		next := idx + 1
		if next == m.capacity {
			next = 0
		}

		if m.slots[next].key.isEmpty() || m.slots[next].psl == 0 {
			break
		}

		m.slots[next].psl--
		m.slots[idx] = m.slots[next]
		m.slots[next] = slot[V]{}
		idx = next
	}
}

// Reserve grows the table, if necessary, so that it can hold at least
// n entries without an intervening rehash. It never shrinks the table.
// Like any rehash, a Reserve that actually grows the table reseeds it,
// so calling Reserve on a Map constructed with NewWithSeed can still
// perturb its seed even though no Add triggered the grow.
func (m *Map[V]) Reserve(n int) {
	if n <= 0 {
		return
	}

	needed := ceilDiv(n*1024, 885)
	if needed < m.minCapacity {
		needed = m.minCapacity
	}

	// Walk the same doubling lattice Add's automatic grow uses, rather
	// than rehashing straight to needed, so capacity stays reachable
	// only by doublings and halvings from minCapacity.
	target := m.capacity
	for target < needed {
		next := nextGrowCapacity(target)
		if next == target {
			break
		}
		target = next
	}

	if target > m.capacity {
		m.rehash(target)
	}
}

// Each calls fn for every key-value pair in unspecified order. If fn
// returns true, iteration stops early. The key slice passed to fn
// aliases the map's internal storage and must not be retained.
func (m *Map[V]) Each(fn func(k []byte, val V) bool) {
	for i := range m.slots {
		if !m.slots[i].key.isEmpty() {
			if stop := fn(m.slots[i].key.bytes(), m.slots[i].value); stop {
				return
			}
		}
	}
}

// Destroy drops the map's internal storage. It is provided for parity
// with the original API and for giving callers an explicit point to
// release a large table ahead of the next garbage collection; Go's
// runtime reclaims the backing array once nothing else references it.
func (m *Map[V]) Destroy() {
	m.slots = nil
	m.capacity = 0
	m.length = 0
}

// DestroyWithValues calls destructor on every stored value before
// releasing the map's internal storage, mirroring the original
// interface's hook for callers whose values own external resources.
func (m *Map[V]) DestroyWithValues(destructor func(V)) {
	for i := range m.slots {
		if !m.slots[i].key.isEmpty() {
			destructor(m.slots[i].value)
		}
	}
	m.Destroy()
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
