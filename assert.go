package robinmap

import "fmt"

// debugAssertions gates the internal invariant checks below. It is a
// compile-time constant so the Go compiler dead-code-eliminates every
// call site when false, the idiomatic analogue of building the
// reference implementation's assert()-guarded checks with NDEBUG
// defined. Flip to true locally when chasing a PSL-invariant bug.
const debugAssertions = false

// assertf panics with a formatted message if cond is false and
// debugAssertions is enabled. It never fires in a normal build.
func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// checkPSL verifies invariant 2 from the design: the stored PSL of an
// occupied slot at index i must equal its modular distance from its
// home slot. Only ever called from debug-gated call sites.
func (m *Map[V]) checkPSL(idx int) {
	s := &m.slots[idx]
	if s.key.isEmpty() {
		return
	}
	home := int(uint64(s.hash) % uint64(m.capacity))
	dist := idx - home
	if dist < 0 {
		dist += m.capacity
	}
	assertf(dist == int(s.psl), "slot %d: psl %d but computed distance %d", idx, s.psl, dist)
}
