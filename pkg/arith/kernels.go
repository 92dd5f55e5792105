package arith

import (
	"github.com/JohnCGriffin/overflow"

	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"
)

// Type-specific kernels. Each is reached only through table lookup on
// the operand tags, so the type assertions cannot fail. Integer
// add/sub/mul are overflow-checked: the result equals the exact value
// or the operation reports Overflow, never a wrapped result. Division
// and modulo check the divisor before computing.

// ---- Addition ----

func addIntInt(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Add32(a.(*object.Integer).Value, b.(*object.Integer).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "integer overflow in +")
	}
	return &object.Integer{Value: r}, nil
}

func addInt64Int64(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Add64(a.(*object.Int64).Value, b.(*object.Int64).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in +")
	}
	return &object.Int64{Value: r}, nil
}

func addDoubleDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value + b.(*object.Double).Value}, nil
}

func addFloatFloat(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: a.(*object.Float).Value + b.(*object.Float).Value}, nil
}

func addStrStr(a, b object.Object) (object.Object, error) {
	return &object.String{Value: a.(*object.String).Value + b.(*object.String).Value}, nil
}

// Cross-type additions compute in the wider domain and tag the result
// with it.

func addIntInt64(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Add64(int64(a.(*object.Integer).Value), b.(*object.Int64).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in +")
	}
	return &object.Int64{Value: r}, nil
}

func addInt64Int(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Add64(a.(*object.Int64).Value, int64(b.(*object.Integer).Value))
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in +")
	}
	return &object.Int64{Value: r}, nil
}

func addIntDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Integer).Value) + b.(*object.Double).Value}, nil
}

func addDoubleInt(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value + float64(b.(*object.Integer).Value)}, nil
}

func addIntFloat(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: float32(a.(*object.Integer).Value) + b.(*object.Float).Value}, nil
}

func addFloatInt(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: a.(*object.Float).Value + float32(b.(*object.Integer).Value)}, nil
}

func addFloatDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Float).Value) + b.(*object.Double).Value}, nil
}

func addDoubleFloat(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value + float64(b.(*object.Float).Value)}, nil
}

func addInt64Double(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Int64).Value) + b.(*object.Double).Value}, nil
}

func addDoubleInt64(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value + float64(b.(*object.Int64).Value)}, nil
}

// ---- Subtraction ----

func subIntInt(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Sub32(a.(*object.Integer).Value, b.(*object.Integer).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "integer overflow in -")
	}
	return &object.Integer{Value: r}, nil
}

func subInt64Int64(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Sub64(a.(*object.Int64).Value, b.(*object.Int64).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in -")
	}
	return &object.Int64{Value: r}, nil
}

func subDoubleDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value - b.(*object.Double).Value}, nil
}

func subFloatFloat(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: a.(*object.Float).Value - b.(*object.Float).Value}, nil
}

func subIntInt64(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Sub64(int64(a.(*object.Integer).Value), b.(*object.Int64).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in -")
	}
	return &object.Int64{Value: r}, nil
}

func subInt64Int(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Sub64(a.(*object.Int64).Value, int64(b.(*object.Integer).Value))
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in -")
	}
	return &object.Int64{Value: r}, nil
}

func subIntDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Integer).Value) - b.(*object.Double).Value}, nil
}

func subDoubleInt(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value - float64(b.(*object.Integer).Value)}, nil
}

func subIntFloat(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: float32(a.(*object.Integer).Value) - b.(*object.Float).Value}, nil
}

func subFloatInt(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: a.(*object.Float).Value - float32(b.(*object.Integer).Value)}, nil
}

func subFloatDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Float).Value) - b.(*object.Double).Value}, nil
}

func subDoubleFloat(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value - float64(b.(*object.Float).Value)}, nil
}

func subInt64Double(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Int64).Value) - b.(*object.Double).Value}, nil
}

func subDoubleInt64(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value - float64(b.(*object.Int64).Value)}, nil
}

// ---- Multiplication ----

func mulIntInt(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Mul32(a.(*object.Integer).Value, b.(*object.Integer).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "integer overflow in *")
	}
	return &object.Integer{Value: r}, nil
}

func mulInt64Int64(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Mul64(a.(*object.Int64).Value, b.(*object.Int64).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in *")
	}
	return &object.Int64{Value: r}, nil
}

func mulDoubleDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value * b.(*object.Double).Value}, nil
}

func mulFloatFloat(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: a.(*object.Float).Value * b.(*object.Float).Value}, nil
}

func mulIntInt64(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Mul64(int64(a.(*object.Integer).Value), b.(*object.Int64).Value)
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in *")
	}
	return &object.Int64{Value: r}, nil
}

func mulInt64Int(a, b object.Object) (object.Object, error) {
	r, ok := overflow.Mul64(a.(*object.Int64).Value, int64(b.(*object.Integer).Value))
	if !ok {
		return nil, object.NewError(object.Overflow, "int64 overflow in *")
	}
	return &object.Int64{Value: r}, nil
}

func mulIntDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Integer).Value) * b.(*object.Double).Value}, nil
}

func mulDoubleInt(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value * float64(b.(*object.Integer).Value)}, nil
}

func mulIntFloat(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: float32(a.(*object.Integer).Value) * b.(*object.Float).Value}, nil
}

func mulFloatInt(a, b object.Object) (object.Object, error) {
	return &object.Float{Value: a.(*object.Float).Value * float32(b.(*object.Integer).Value)}, nil
}

func mulFloatDouble(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Float).Value) * b.(*object.Double).Value}, nil
}

func mulDoubleFloat(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value * float64(b.(*object.Float).Value)}, nil
}

func mulInt64Double(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: float64(a.(*object.Int64).Value) * b.(*object.Double).Value}, nil
}

func mulDoubleInt64(a, b object.Object) (object.Object, error) {
	return &object.Double{Value: a.(*object.Double).Value * float64(b.(*object.Int64).Value)}, nil
}

// ---- Division ----
// Integer/integer division promotes to Double and yields the true
// quotient; same-type float division stays in its own precision.

func divIntInt(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Integer).Value
	if divisor == 0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: float64(a.(*object.Integer).Value) / float64(divisor)}, nil
}

func divInt64Int64(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Int64).Value
	if divisor == 0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: float64(a.(*object.Int64).Value) / float64(divisor)}, nil
}

func divDoubleDouble(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Double).Value
	if divisor == 0.0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: a.(*object.Double).Value / divisor}, nil
}

func divFloatFloat(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Float).Value
	if divisor == 0.0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Float{Value: a.(*object.Float).Value / divisor}, nil
}

func divIntDouble(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Double).Value
	if divisor == 0.0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: float64(a.(*object.Integer).Value) / divisor}, nil
}

func divDoubleInt(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Integer).Value
	if divisor == 0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: a.(*object.Double).Value / float64(divisor)}, nil
}

func divIntFloat(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Float).Value
	if divisor == 0.0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Float{Value: float32(a.(*object.Integer).Value) / divisor}, nil
}

func divFloatInt(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Integer).Value
	if divisor == 0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Float{Value: a.(*object.Float).Value / float32(divisor)}, nil
}

func divFloatDouble(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Double).Value
	if divisor == 0.0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: float64(a.(*object.Float).Value) / divisor}, nil
}

func divDoubleFloat(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Float).Value
	if divisor == 0.0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: a.(*object.Double).Value / float64(divisor)}, nil
}

func divInt64Double(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Double).Value
	if divisor == 0.0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: float64(a.(*object.Int64).Value) / divisor}, nil
}

func divDoubleInt64(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Int64).Value
	if divisor == 0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: a.(*object.Double).Value / float64(divisor)}, nil
}

func divIntInt64(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Int64).Value
	if divisor == 0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: float64(a.(*object.Integer).Value) / float64(divisor)}, nil
}

func divInt64Int(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Integer).Value
	if divisor == 0 {
		return nil, object.NewDivisionByZero()
	}
	return &object.Double{Value: float64(a.(*object.Int64).Value) / float64(divisor)}, nil
}

// ---- Modulo ----
// Only same-type integer kernels exist; everything else goes through
// the generic operator. The convention is truncated, matching Go's %.

func modIntInt(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Integer).Value
	if divisor == 0 {
		return nil, object.NewModuloByZero()
	}
	return &object.Integer{Value: a.(*object.Integer).Value % divisor}, nil
}

func modInt64Int64(a, b object.Object) (object.Object, error) {
	divisor := b.(*object.Int64).Value
	if divisor == 0 {
		return nil, object.NewModuloByZero()
	}
	return &object.Int64{Value: a.(*object.Int64).Value % divisor}, nil
}
