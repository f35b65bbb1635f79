// Package kid implements the Z<n>[K<m>] key identifier used throughout the
// object language as both object id and key name.
package kid

import (
	"fmt"
	"strconv"
	"strings"
)

// Kid is a pair (Z?, K?) of positive integers, at least one present.
//
// Three surface forms are supported: Z<n> (object id), Z<n>K<m> (key within
// object n), and K<m> (a generic positional key used by typed-list cells and
// by Kⁱ argument references). Kid is a value type; zero value is invalid and
// must never be constructed directly outside this package.
type Kid struct {
	z, k       uint32
	hasZ, hasK bool
}

// Z constructs the object-id form Z<n>. n must be > 0.
func Z(n uint32) Kid {
	if n == 0 {
		panic("kid: Z part must not be zero")
	}
	return Kid{z: n, hasZ: true}
}

// ZK constructs the Z<n>K<m> form. n and m must both be > 0.
func ZK(n, m uint32) Kid {
	if n == 0 || m == 0 {
		panic("kid: Z and K parts must not be zero")
	}
	return Kid{z: n, hasZ: true, k: m, hasK: true}
}

// K constructs the generic positional form K<m>. m must be > 0.
func K(m uint32) Kid {
	if m == 0 {
		panic("kid: K part must not be zero")
	}
	return Kid{k: m, hasK: true}
}

// HasZ reports whether the Z-part is present and returns it.
func (id Kid) HasZ() (uint32, bool) { return id.z, id.hasZ }

// HasK reports whether the K-part is present and returns it.
func (id Kid) HasK() (uint32, bool) { return id.k, id.hasK }

// IsZero reports whether id is the invalid zero value.
func (id Kid) IsZero() bool { return !id.hasZ && !id.hasK }

// ZOnly reports whether id is a bare object id Z<n> with no K-part.
func (id Kid) ZOnly() bool { return id.hasZ && !id.hasK }

// Parse parses the strict Z<n>[K<m>] / K<m> grammar. It fails on trailing
// text, a lowercase prefix, or a zero part.
func Parse(text string) (Kid, error) {
	if text == "" {
		return Kid{}, fmt.Errorf("kid: empty input")
	}

	parts := strings.SplitN(text, "K", 2)
	before := parts[0]

	var z uint32
	var hasZ bool
	if before != "" {
		if before[0] != 'Z' {
			return Kid{}, fmt.Errorf("kid: %q: first character must be Z or K", text)
		}
		n, err := strconv.ParseUint(before[1:], 10, 32)
		if err != nil {
			return Kid{}, fmt.Errorf("kid: %q: cannot parse Z-part: %w", text, err)
		}
		if n == 0 {
			return Kid{}, fmt.Errorf("kid: %q: Z-part must not be zero", text)
		}
		z, hasZ = uint32(n), true
	}

	var k uint32
	var hasK bool
	if len(parts) == 2 {
		rest := parts[1]
		if rest == "" {
			return Kid{}, fmt.Errorf("kid: %q: no text after K", text)
		}
		// A second literal 'K' anywhere in rest means more text than the
		// grammar allows (SplitN with N=2 already folded it into rest).
		if strings.ContainsRune(rest, 'K') {
			return Kid{}, fmt.Errorf("kid: %q: too much text", text)
		}
		m, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return Kid{}, fmt.Errorf("kid: %q: cannot parse K-part: %w", text, err)
		}
		if m == 0 {
			return Kid{}, fmt.Errorf("kid: %q: K-part must not be zero", text)
		}
		k, hasK = uint32(m), true
	} else if before == "" {
		return Kid{}, fmt.Errorf("kid: %q: no text before K", text)
	}

	if !hasZ && !hasK {
		return Kid{}, fmt.Errorf("kid: %q: Z and K parts both undefined", text)
	}
	return Kid{z: z, k: k, hasZ: hasZ, hasK: hasK}, nil
}

// String renders id in its canonical surface form.
func (id Kid) String() string {
	var b strings.Builder
	if id.hasZ {
		fmt.Fprintf(&b, "Z%d", id.z)
	}
	if id.hasK {
		fmt.Fprintf(&b, "K%d", id.k)
	}
	return b.String()
}

// Compare gives Kid a total order: by Z-presence, then Z value, then
// K-presence, then K value. Used to keep list_keys deterministic.
func (id Kid) Compare(other Kid) int {
	if id.hasZ != other.hasZ {
		if !id.hasZ {
			return -1
		}
		return 1
	}
	if id.hasZ && id.z != other.z {
		if id.z < other.z {
			return -1
		}
		return 1
	}
	if id.hasK != other.hasK {
		if !id.hasK {
			return -1
		}
		return 1
	}
	if id.k != other.k {
		if id.k < other.k {
			return -1
		}
		return 1
	}
	return 0
}

// Equal reports whether id and other name the same key.
func (id Kid) Equal(other Kid) bool { return id == other }
