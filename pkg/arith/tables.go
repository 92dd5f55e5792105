package arith

import "github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"

// Kernel resolution. The tables are pure functions over a pair of type
// tags; they hold no state and may be called from any goroutine.
//
// Resolution order for every operation:
//  1. same type on both sides
//  2. enumerated cross-type pair
//  3. any other pair where both tags carry a numeric rank (promoted)
//  4. none

// Lookup returns the kernel registered for op on (left, right), or nil
// when no kernel exists and the caller must use the generic operator.
func Lookup(op Op, left, right object.TypeTag) Kernel {
	switch op {
	case OpAdd:
		return lookupAdd(left, right)
	case OpSub:
		return lookupSub(left, right)
	case OpMul:
		return lookupMul(left, right)
	case OpDiv:
		return lookupDiv(left, right)
	case OpMod:
		return lookupMod(left, right)
	default:
		return nil
	}
}

func lookupAdd(left, right object.TypeTag) Kernel {
	if left == right {
		switch left {
		case object.TagInt:
			return addIntInt
		case object.TagInt64:
			return addInt64Int64
		case object.TagDouble:
			return addDoubleDouble
		case object.TagFloat:
			return addFloatFloat
		case object.TagString:
			return addStrStr
		}
	}

	switch {
	case left == object.TagInt && right == object.TagInt64:
		return addIntInt64
	case left == object.TagInt64 && right == object.TagInt:
		return addInt64Int
	case left == object.TagInt && right == object.TagDouble:
		return addIntDouble
	case left == object.TagDouble && right == object.TagInt:
		return addDoubleInt
	case left == object.TagInt && right == object.TagFloat:
		return addIntFloat
	case left == object.TagFloat && right == object.TagInt:
		return addFloatInt
	case left == object.TagFloat && right == object.TagDouble:
		return addFloatDouble
	case left == object.TagDouble && right == object.TagFloat:
		return addDoubleFloat
	case left == object.TagInt64 && right == object.TagDouble:
		return addInt64Double
	case left == object.TagDouble && right == object.TagInt64:
		return addDoubleInt64
	}

	// Any remaining numeric pair defers to the promotion engine.
	if object.Rank(left) >= 0 && object.Rank(right) >= 0 {
		return addPromotedKernel
	}
	return nil
}

func lookupSub(left, right object.TypeTag) Kernel {
	if left == right {
		switch left {
		case object.TagInt:
			return subIntInt
		case object.TagInt64:
			return subInt64Int64
		case object.TagDouble:
			return subDoubleDouble
		case object.TagFloat:
			return subFloatFloat
		}
	}

	switch {
	case left == object.TagInt && right == object.TagInt64:
		return subIntInt64
	case left == object.TagInt64 && right == object.TagInt:
		return subInt64Int
	case left == object.TagInt && right == object.TagDouble:
		return subIntDouble
	case left == object.TagDouble && right == object.TagInt:
		return subDoubleInt
	case left == object.TagInt && right == object.TagFloat:
		return subIntFloat
	case left == object.TagFloat && right == object.TagInt:
		return subFloatInt
	case left == object.TagFloat && right == object.TagDouble:
		return subFloatDouble
	case left == object.TagDouble && right == object.TagFloat:
		return subDoubleFloat
	case left == object.TagInt64 && right == object.TagDouble:
		return subInt64Double
	case left == object.TagDouble && right == object.TagInt64:
		return subDoubleInt64
	}

	if object.Rank(left) >= 0 && object.Rank(right) >= 0 {
		return subPromotedKernel
	}
	return nil
}

func lookupMul(left, right object.TypeTag) Kernel {
	if left == right {
		switch left {
		case object.TagInt:
			return mulIntInt
		case object.TagInt64:
			return mulInt64Int64
		case object.TagDouble:
			return mulDoubleDouble
		case object.TagFloat:
			return mulFloatFloat
		}
	}

	switch {
	case left == object.TagInt && right == object.TagInt64:
		return mulIntInt64
	case left == object.TagInt64 && right == object.TagInt:
		return mulInt64Int
	case left == object.TagInt && right == object.TagDouble:
		return mulIntDouble
	case left == object.TagDouble && right == object.TagInt:
		return mulDoubleInt
	case left == object.TagInt && right == object.TagFloat:
		return mulIntFloat
	case left == object.TagFloat && right == object.TagInt:
		return mulFloatInt
	case left == object.TagFloat && right == object.TagDouble:
		return mulFloatDouble
	case left == object.TagDouble && right == object.TagFloat:
		return mulDoubleFloat
	case left == object.TagInt64 && right == object.TagDouble:
		return mulInt64Double
	case left == object.TagDouble && right == object.TagInt64:
		return mulDoubleInt64
	}

	if object.Rank(left) >= 0 && object.Rank(right) >= 0 {
		return mulPromotedKernel
	}
	return nil
}

func lookupDiv(left, right object.TypeTag) Kernel {
	if left == right {
		switch left {
		case object.TagInt:
			return divIntInt
		case object.TagInt64:
			return divInt64Int64
		case object.TagDouble:
			return divDoubleDouble
		case object.TagFloat:
			return divFloatFloat
		}
	}

	switch {
	case left == object.TagInt && right == object.TagDouble:
		return divIntDouble
	case left == object.TagDouble && right == object.TagInt:
		return divDoubleInt
	case left == object.TagInt && right == object.TagFloat:
		return divIntFloat
	case left == object.TagFloat && right == object.TagInt:
		return divFloatInt
	case left == object.TagFloat && right == object.TagDouble:
		return divFloatDouble
	case left == object.TagDouble && right == object.TagFloat:
		return divDoubleFloat
	case left == object.TagInt64 && right == object.TagDouble:
		return divInt64Double
	case left == object.TagDouble && right == object.TagInt64:
		return divDoubleInt64
	case left == object.TagInt && right == object.TagInt64:
		return divIntInt64
	case left == object.TagInt64 && right == object.TagInt:
		return divInt64Int
	}

	if object.Rank(left) >= 0 && object.Rank(right) >= 0 {
		return divPromotedKernel
	}
	return nil
}

// lookupMod is deliberately narrow: modulo is not well-defined across
// float and string mixes in this system, so only same-type integer
// kernels are registered.
func lookupMod(left, right object.TypeTag) Kernel {
	if left == right {
		switch left {
		case object.TagInt:
			return modIntInt
		case object.TagInt64:
			return modInt64Int64
		}
	}
	return nil
}
