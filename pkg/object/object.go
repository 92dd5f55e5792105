package object

// TypeTag identifies the runtime kind of an Object as a small ordinal.
// Real tags are always below TagInvalid, so a key packed from two real
// tags can never collide with the invalid sentinel pair.
type TypeTag uint8

const (
	TagNil TypeTag = iota
	TagBool
	TagUint
	TagInt
	TagUint64
	TagInt64
	TagFloat
	TagDouble
	TagBigFloat
	TagString
	TagList

	// TagInvalid is reserved for the empty cache slot; no Object ever
	// carries it.
	TagInvalid TypeTag = 255
)

type ObjectType string

const (
	NIL_OBJ      = "NIL"
	BOOLEAN_OBJ  = "BOOLEAN"
	UINT_OBJ     = "UINT"
	INTEGER_OBJ  = "INTEGER"
	UINT64_OBJ   = "UINT64"
	INT64_OBJ    = "INT64"
	FLOAT_OBJ    = "FLOAT"
	DOUBLE_OBJ   = "DOUBLE"
	BIGFLOAT_OBJ = "BIGFLOAT"
	STRING_OBJ   = "STRING"
	LIST_OBJ     = "LIST"
)

type Object interface {
	Tag() TypeTag
	Type() ObjectType
	Inspect() string
}

// Numeric type ranks, narrowest to widest. The order mirrors the usual
// C promotion chain with the platform-width long ranks collapsed and an
// arbitrary-precision float on top standing in for long double.
const (
	RankBool     = 0
	RankUint     = 1
	RankInt      = 2
	RankUint64   = 3
	RankInt64    = 4
	RankFloat    = 5
	RankDouble   = 6
	RankBigFloat = 7
)

// Rank returns the numeric promotion rank of a tag, or a negative value
// for non-numeric tags.
func Rank(t TypeTag) int {
	switch t {
	case TagBool:
		return RankBool
	case TagUint:
		return RankUint
	case TagInt:
		return RankInt
	case TagUint64:
		return RankUint64
	case TagInt64:
		return RankInt64
	case TagFloat:
		return RankFloat
	case TagDouble:
		return RankDouble
	case TagBigFloat:
		return RankBigFloat
	default:
		return -1
	}
}

// IsUnsignedRank reports whether a tag is one of the unsigned integer
// kinds (Boolean counts: its domain is {0,1}).
func IsUnsignedRank(t TypeTag) bool {
	return t == TagBool || t == TagUint || t == TagUint64
}

// IsFloatingRank reports whether a tag is one of the floating kinds.
func IsFloatingRank(t TypeTag) bool {
	return t == TagFloat || t == TagDouble || t == TagBigFloat
}
