package kid

import "fmt"

// Zid is a bare object id, the Z-part of a Kid with no K-part.
type Zid uint32

// String renders z in its Z<n> surface form.
func (z Zid) String() string { return fmt.Sprintf("Z%d", uint32(z)) }

// Kid lifts z into the Kid union as a bare object-id key.
func (z Zid) Kid() Kid { return Z(uint32(z)) }

// Key builds the Z<z>K<k> key naming slot k within object z.
func (z Zid) Key(k uint32) Kid { return ZK(uint32(z), k) }

// AsZid extracts the object id from id, if id names one (Z<n> or Z<n>K<m>
// both carry a Z-part; only a bare Z<n> is a valid object id on its own).
func (id Kid) AsZid() (Zid, bool) {
	n, ok := id.HasZ()
	if !ok {
		return 0, false
	}
	return Zid(n), true
}
