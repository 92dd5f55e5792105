// Package fast implements the single-slot adaptive cache for binary
// arithmetic dispatch. In tight loops operand types usually do not
// change between iterations; caching the last resolved kernel turns
// repeated table lookups into one 16-bit comparison. A heterogeneous
// call pattern degrades to one lookup per call, which is the cost of
// having no cache at all, never worse.
package fast

import "github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"

// typePairKey packs two type tags into one comparable value.
// Layout: high 8 bits left tag, low 8 bits right tag, so a hit check is
// a single comparison and order matters: (int,double) != (double,int).
type typePairKey uint16

func newTypePairKey(left, right object.TypeTag) typePairKey {
	return typePairKey(uint16(left)<<8 | uint16(right))
}

// invalidKey is the empty/reset state. Real tags are below 255, so no
// key built from two live objects ever equals it.
func invalidKey() typePairKey {
	return newTypePairKey(object.TagInvalid, object.TagInvalid)
}
