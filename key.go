package robinmap

import "bytes"

// ssoThreshold is the inline-key cutoff. Keys shorter than this are
// stored inline in the slot; keys of this length or longer are stored
// in an owned heap buffer. Fixed at the 64-bit cached-buffer size
// regardless of platform, since Go gives no meaningful advantage to
// varying it with pointer width.
const ssoThreshold = 8

// key is a small-string-optimized byte-string key. A zero-value key
// (length 0) is the reserved empty-slot sentinel; the empty key is
// therefore never a valid user key.
type key struct {
	length int
	inline [ssoThreshold]byte
	owned  []byte
}

func (k key) isEmpty() bool {
	return k.length == 0
}

// bytes returns the key's content without copying. The returned slice
// aliases the key's storage and must not be retained past the next
// mutation of the owning Map.
func (k key) bytes() []byte {
	if k.length < ssoThreshold {
		return k.inline[:k.length]
	}
	return k.owned
}

// newKey copies b into a fresh key, choosing the inline or owned
// representation based on length.
func newKey(b []byte) key {
	k := key{length: len(b)}
	if k.length < ssoThreshold {
		copy(k.inline[:], b)
		return k
	}
	owned := make([]byte, k.length)
	copy(owned, b)
	k.owned = owned
	return k
}

// equalKey compares two keys for equality. Length is always checked
// first and independently of representation, so a key never compared
// the wrong buffer against the other's length, unlike the reference
// implementation's STRING_EQUALS macro.
func equalKey(a, b key) bool {
	if a.length != b.length {
		return false
	}
	return bytes.Equal(a.bytes(), b.bytes())
}

// equalKeyBytes compares a stored key against a raw caller-supplied
// byte slice, used on the hot Find/Remove path to avoid constructing a
// throwaway key value per probe.
func equalKeyBytes(k key, b []byte) bool {
	if k.length != len(b) {
		return false
	}
	return bytes.Equal(k.bytes(), b)
}
