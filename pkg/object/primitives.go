package object

import (
	"fmt"
	"math/big"
)

// BigFloatPrec is the mantissa precision used for BigFloat values. It
// is wide enough that every float64 converts exactly.
const BigFloatPrec = 128

// Nil
type Nil struct{}

func (n *Nil) Tag() TypeTag     { return TagNil }
func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Tag() TypeTag     { return TagBool }
func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// Uint
type Uint struct {
	Value uint32
}

func (u *Uint) Tag() TypeTag     { return TagUint }
func (u *Uint) Type() ObjectType { return UINT_OBJ }
func (u *Uint) Inspect() string  { return fmt.Sprintf("%d", u.Value) }

// Integer
type Integer struct {
	Value int32
}

func (i *Integer) Tag() TypeTag     { return TagInt }
func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Uint64
type Uint64 struct {
	Value uint64
}

func (u *Uint64) Tag() TypeTag     { return TagUint64 }
func (u *Uint64) Type() ObjectType { return UINT64_OBJ }
func (u *Uint64) Inspect() string  { return fmt.Sprintf("%d", u.Value) }

// Int64
type Int64 struct {
	Value int64
}

func (i *Int64) Tag() TypeTag     { return TagInt64 }
func (i *Int64) Type() ObjectType { return INT64_OBJ }
func (i *Int64) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Float is the single-precision kind.
type Float struct {
	Value float32
}

func (f *Float) Tag() TypeTag     { return TagFloat }
func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return fmt.Sprintf("%g", f.Value) }

// Double is the double-precision kind.
type Double struct {
	Value float64
}

func (d *Double) Tag() TypeTag     { return TagDouble }
func (d *Double) Type() ObjectType { return DOUBLE_OBJ }
func (d *Double) Inspect() string  { return fmt.Sprintf("%g", d.Value) }

// BigFloat is the widest floating kind.
type BigFloat struct {
	Value *big.Float
}

func NewBigFloat() *BigFloat {
	return &BigFloat{Value: new(big.Float).SetPrec(BigFloatPrec)}
}

func (b *BigFloat) Tag() TypeTag     { return TagBigFloat }
func (b *BigFloat) Type() ObjectType { return BIGFLOAT_OBJ }
func (b *BigFloat) Inspect() string  { return b.Value.Text('g', -1) }

// String
type String struct {
	Value string
}

func (s *String) Tag() TypeTag     { return TagString }
func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return fmt.Sprintf("%q", s.Value) }
