package arith

import (
	"math"
	"math/big"

	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"
)

// Generic operators. These are the reference semantics: always correct
// for any tag pair, with no caching. They consult the same kernel
// tables as the fast path, so a cached call and a generic call on the
// same operands produce identical results by construction; the cases
// below the lookup are exactly the pairs no kernel serves.

func Apply(op Op, a, b object.Object) (object.Object, error) {
	if k := Lookup(op, a.Tag(), b.Tag()); k != nil {
		return k(a, b)
	}

	switch op {
	case OpAdd:
		if la, ok := a.(*object.List); ok {
			if lb, ok := b.(*object.List); ok {
				return la.Concat(lb), nil
			}
		}
	case OpMod:
		if result, handled, err := modFallback(a, b); handled {
			return result, err
		}
	}

	return nil, object.NewError(object.TypeMismatch, "type mismatch: %s %s %s", a.Type(), op, b.Type())
}

func Add(a, b object.Object) (object.Object, error) { return Apply(OpAdd, a, b) }
func Sub(a, b object.Object) (object.Object, error) { return Apply(OpSub, a, b) }
func Mul(a, b object.Object) (object.Object, error) { return Apply(OpMul, a, b) }
func Div(a, b object.Object) (object.Object, error) { return Apply(OpDiv, a, b) }
func Mod(a, b object.Object) (object.Object, error) { return Apply(OpMod, a, b) }

// modFallback covers the numeric pairs the modulo table rejects:
// integer mixes use a truncated big-integer remainder, float-tainted
// pairs compute in the wider floating domain. The truncated convention
// matches the same-type kernels, so generic and fast modulo agree
// wherever both apply.
func modFallback(a, b object.Object) (object.Object, bool, error) {
	ra, rb := object.Rank(a.Tag()), object.Rank(b.Tag())
	if ra < 0 || rb < 0 {
		return nil, false, nil
	}

	x, err := toBig(a)
	if err != nil {
		return nil, true, err
	}
	y, err := toBig(b)
	if err != nil {
		return nil, true, err
	}
	if y.Sign() == 0 {
		return nil, true, object.NewModuloByZero()
	}

	if !object.IsFloatingRank(a.Tag()) && !object.IsFloatingRank(b.Tag()) {
		xi, _ := x.Int(nil)
		yi, _ := y.Int(nil)
		r := new(big.Float).SetPrec(object.BigFloatPrec).SetInt(new(big.Int).Rem(xi, yi))
		result, err := smartPromote(r, categoryOf(a.Tag(), b.Tag()))
		return result, true, err
	}

	maxRank := ra
	if rb > maxRank {
		maxRank = rb
	}
	switch {
	case maxRank >= object.RankBigFloat:
		return bigMod(x, y), true, nil
	case maxRank >= object.RankDouble:
		xf, _ := x.Float64()
		yf, _ := y.Float64()
		return &object.Double{Value: math.Mod(xf, yf)}, true, nil
	default:
		xf, _ := x.Float64()
		yf, _ := y.Float64()
		return &object.Float{Value: float32(math.Mod(xf, yf))}, true, nil
	}
}

// bigMod computes the truncated remainder x - y*trunc(x/y) in the wide
// floating domain.
func bigMod(x, y *big.Float) *object.BigFloat {
	q := new(big.Float).SetPrec(object.BigFloatPrec).Quo(x, y)
	qi, _ := q.Int(nil)
	scaled := new(big.Float).SetPrec(object.BigFloatPrec).Mul(y, new(big.Float).SetPrec(object.BigFloatPrec).SetInt(qi))
	return &object.BigFloat{Value: new(big.Float).SetPrec(object.BigFloatPrec).Sub(x, scaled)}
}
