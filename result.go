package robinmap

// ResultKind discriminates the possible outcomes of Add and Remove.
// It replaces the sentinel-pointer tricks of the original C interface
// (NULL meaning different things depending on the call site) with an
// explicit tag.
type ResultKind uint8

const (
	// ResultOK signals a fresh insert (Add) or a successful removal
	// (Remove). Value carries the removed value for Remove; it is the
	// zero value of V for Add.
	ResultOK ResultKind = iota
	// ResultDuplicate signals that Add found the key already present.
	// The existing value is returned unchanged in Value and the new
	// value passed to Add is discarded.
	ResultDuplicate
	// ResultNotFound signals that Remove was called for a key that is
	// not present. It is not treated as an error.
	ResultNotFound
	// ResultInvalidKey signals a zero-length key, which is never a
	// valid user key because length 0 is the empty-slot sentinel.
	ResultInvalidKey
	// ResultOutOfMemory signals that a required grow could not be
	// performed because the new capacity would exceed maxCapacity.
	// This is the only allocation failure the implementation reports;
	// a failed slice allocation in Go is a runtime panic, not a
	// returned error.
	ResultOutOfMemory
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultDuplicate:
		return "duplicate"
	case ResultNotFound:
		return "not found"
	case ResultInvalidKey:
		return "invalid key"
	case ResultOutOfMemory:
		return "out of memory"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of Add or Remove.
type Result[V any] struct {
	Kind  ResultKind
	Value V
}

// Ok reports whether Kind is ResultOK, i.e. Add inserted a fresh key
// or Remove found and removed the key.
func (r Result[V]) Ok() bool {
	return r.Kind == ResultOK
}
