package arith

import (
	"math"
	"math/big"

	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"
)

// Promotion engine for the numeric pairs that have no enumerated
// kernel (unsigned kinds, boolean, BigFloat, and their mixes). The
// operation is computed exactly in a wide floating domain and the
// result is fitted to the smallest container that holds it without
// loss:
//
//   - if either input is floating, the result never fits below Float
//   - if both inputs are unsigned, unsigned containers are preferred
//   - otherwise signed containers are preferred
//   - a floating container is only chosen when the value round-trips
//     exactly; failing all else the result stays a BigFloat

type category uint8

const (
	hasFloat category = iota
	bothUnsigned
	others
)

func categoryOf(left, right object.TypeTag) category {
	if object.IsFloatingRank(left) || object.IsFloatingRank(right) {
		return hasFloat
	}
	if object.IsUnsignedRank(left) && object.IsUnsignedRank(right) {
		return bothUnsigned
	}
	return others
}

// toBig reads any numeric object into a wide big.Float. Conversion
// from every backing type is exact at BigFloatPrec.
func toBig(o object.Object) (*big.Float, error) {
	z := new(big.Float).SetPrec(object.BigFloatPrec)
	switch v := o.(type) {
	case *object.Boolean:
		if v.Value {
			z.SetUint64(1)
		}
		return z, nil
	case *object.Uint:
		return z.SetUint64(uint64(v.Value)), nil
	case *object.Integer:
		return z.SetInt64(int64(v.Value)), nil
	case *object.Uint64:
		return z.SetUint64(v.Value), nil
	case *object.Int64:
		return z.SetInt64(v.Value), nil
	case *object.Float:
		return z.SetFloat64(float64(v.Value)), nil
	case *object.Double:
		return z.SetFloat64(v.Value), nil
	case *object.BigFloat:
		return z.Set(v.Value), nil
	default:
		return nil, object.NewError(object.TypeMismatch, "operand is not numeric: %s", o.Type())
	}
}

// AddPromoted computes a+b for any numeric pair, fitting the result to
// the smallest lossless container.
func AddPromoted(a, b object.Object) (object.Object, error) {
	x, y, cat, err := promotedOperands(a, b)
	if err != nil {
		return nil, err
	}
	return smartPromote(new(big.Float).SetPrec(object.BigFloatPrec).Add(x, y), cat)
}

func SubPromoted(a, b object.Object) (object.Object, error) {
	x, y, cat, err := promotedOperands(a, b)
	if err != nil {
		return nil, err
	}
	return smartPromote(new(big.Float).SetPrec(object.BigFloatPrec).Sub(x, y), cat)
}

func MulPromoted(a, b object.Object) (object.Object, error) {
	x, y, cat, err := promotedOperands(a, b)
	if err != nil {
		return nil, err
	}
	return smartPromote(new(big.Float).SetPrec(object.BigFloatPrec).Mul(x, y), cat)
}

// DivPromoted always produces a floating result; the divisor is
// checked before any computation.
func DivPromoted(a, b object.Object) (object.Object, error) {
	x, y, _, err := promotedOperands(a, b)
	if err != nil {
		return nil, err
	}
	if y.Sign() == 0 {
		return nil, object.NewDivisionByZero()
	}
	return smartPromote(new(big.Float).SetPrec(object.BigFloatPrec).Quo(x, y), hasFloat)
}

func promotedOperands(a, b object.Object) (*big.Float, *big.Float, category, error) {
	x, err := toBig(a)
	if err != nil {
		return nil, nil, others, err
	}
	y, err := toBig(b)
	if err != nil {
		return nil, nil, others, err
	}
	return x, y, categoryOf(a.Tag(), b.Tag()), nil
}

func smartPromote(z *big.Float, cat category) (object.Object, error) {
	switch cat {
	case hasFloat:
		return fitFloating(z)
	case bothUnsigned:
		if z.IsInt() && z.Sign() >= 0 {
			return fitUnsigned(z)
		}
		return fitFloating(z)
	default:
		if z.IsInt() {
			return fitSigned(z)
		}
		return fitFloating(z)
	}
}

func fitSigned(z *big.Float) (object.Object, error) {
	zi, _ := z.Int(nil)
	if zi.IsInt64() {
		v := zi.Int64()
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return &object.Integer{Value: int32(v)}, nil
		}
		return &object.Int64{Value: v}, nil
	}
	return fitFloating(z)
}

func fitUnsigned(z *big.Float) (object.Object, error) {
	zi, _ := z.Int(nil)
	if zi.IsUint64() {
		v := zi.Uint64()
		if v <= math.MaxUint32 {
			return &object.Uint{Value: uint32(v)}, nil
		}
		return &object.Uint64{Value: v}, nil
	}
	return fitFloating(z)
}

// fitFloating picks the narrowest floating container that represents z
// exactly, staying a BigFloat when neither float nor double can.
func fitFloating(z *big.Float) (object.Object, error) {
	if z.IsInf() {
		return nil, object.NewError(object.Overflow, "result exceeds the widest floating range")
	}
	if f, acc := z.Float32(); acc == big.Exact {
		return &object.Float{Value: f}, nil
	}
	if d, acc := z.Float64(); acc == big.Exact {
		return &object.Double{Value: d}, nil
	}
	return &object.BigFloat{Value: z}, nil
}

// Kernel adapters for the promoted tier.

func addPromotedKernel(a, b object.Object) (object.Object, error) { return AddPromoted(a, b) }
func subPromotedKernel(a, b object.Object) (object.Object, error) { return SubPromoted(a, b) }
func mulPromotedKernel(a, b object.Object) (object.Object, error) { return MulPromoted(a, b) }
func divPromotedKernel(a, b object.Object) (object.Object, error) { return DivPromoted(a, b) }
