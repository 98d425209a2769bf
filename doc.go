// Package robinmap implements a single-writer, open-addressed hash map
// keyed by arbitrary byte strings. Collisions are resolved with Robin
// Hood hashing: on insert, an entry with a longer probe sequence steals
// the slot of a resident with a shorter one, which keeps the variance
// of probe lengths low and makes Find's early-exit sound. Deletion uses
// backward-shift instead of tombstones, so the probe-sequence-length
// invariant never degrades across Add/Remove cycles.
//
// Short keys (shorter than 8 bytes, on every platform) are stored inline
// in the slot; longer keys fall back to an owned heap buffer, which Add
// allocates. The cached per-slot hash is a 32-bit integer and the resize
// thresholds use fixed-point integer arithmetic, so the hot path is
// float-free.
//
// A Map is not safe for concurrent use. Add and Remove may trigger a
// rehash, which invalidates any outstanding Cursor and any assumption
// about slot indices.
package robinmap
