package fast

import (
	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/arith"
	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"
)

// Reduction helpers built on one shared cache instance per fold, so a
// homogeneous sequence resolves its kernel once.

// FastSum folds items through a cached addition, starting from
// initial. A nil initial starts from integer zero.
func FastSum(items []object.Object, initial object.Object) (object.Object, error) {
	if initial == nil {
		initial = &object.Integer{Value: 0}
	}
	adder := NewCachedAdd()
	result := initial
	for _, item := range items {
		var err error
		result, err = adder.Call(result, item)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FastProduct folds items through a cached multiplication, starting
// from initial. A nil initial starts from integer one.
func FastProduct(items []object.Object, initial object.Object) (object.Object, error) {
	if initial == nil {
		initial = &object.Integer{Value: 1}
	}
	multiplier := NewCachedMul()
	result := initial
	for _, item := range items {
		var err error
		result, err = multiplier.Call(result, item)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FastDot computes the dot product of two lists. Both operands must be
// lists of equal length. The pairwise terms go through the generic
// operators: promotion correctness takes precedence over caching for a
// one-shot reduction.
func FastDot(a, b object.Object) (object.Object, error) {
	la, ok := a.(*object.List)
	if !ok {
		return nil, object.NewError(object.TypeMismatch, "dot product requires two lists, got %s", a.Type())
	}
	lb, ok := b.(*object.List)
	if !ok {
		return nil, object.NewError(object.TypeMismatch, "dot product requires two lists, got %s", b.Type())
	}
	if la.Len() != lb.Len() {
		return nil, object.NewError(object.LengthMismatch, "dot product requires lists of equal length: %d vs %d", la.Len(), lb.Len())
	}
	if la.Len() == 0 {
		return &object.Integer{Value: 0}, nil
	}

	sum, err := arith.Mul(la.Get(0), lb.Get(0))
	if err != nil {
		return nil, err
	}
	for i := 1; i < la.Len(); i++ {
		term, err := arith.Mul(la.Get(i), lb.Get(i))
		if err != nil {
			return nil, err
		}
		sum, err = arith.Add(sum, term)
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Accumulator threads a running value through one cached operation,
// for reductions that do not fit the one-shot helpers.
type Accumulator struct {
	op    *CachedBinOp
	value object.Object
}

// NewAccumulator wraps op with a running value of initial. A nil
// initial starts from integer zero.
func NewAccumulator(op *CachedBinOp, initial object.Object) *Accumulator {
	if initial == nil {
		initial = &object.Integer{Value: 0}
	}
	return &Accumulator{op: op, value: initial}
}

// Accumulate applies the cached operation to the running value and v.
// The running value is unchanged when the operation fails.
func (acc *Accumulator) Accumulate(v object.Object) error {
	result, err := acc.op.Call(acc.value, v)
	if err != nil {
		return err
	}
	acc.value = result
	return nil
}

// Value returns the current running value.
func (acc *Accumulator) Value() object.Object { return acc.value }
