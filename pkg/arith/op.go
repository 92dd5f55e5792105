package arith

import "github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"

// Op enumerates the binary arithmetic operations. A single enumeration
// replaces per-operation type specialization: every consumer selects
// its kernel table and generic fallback by switching on the Op value.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}

// Kernel is a specialized binary operation for one concrete pair of
// type tags. Kernels are statically defined, stateless and safe for
// concurrent use.
type Kernel func(a, b object.Object) (object.Object, error)
