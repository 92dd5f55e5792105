package object

import "math/big"

// Typed read accessors. Each fails with a TypeMismatch error when the
// stored tag differs from the requested kind.

func AsBoolean(o Object) (bool, error) {
	if v, ok := o.(*Boolean); ok {
		return v.Value, nil
	}
	return false, accessError(BOOLEAN_OBJ, o)
}

func AsUint(o Object) (uint32, error) {
	if v, ok := o.(*Uint); ok {
		return v.Value, nil
	}
	return 0, accessError(UINT_OBJ, o)
}

func AsInteger(o Object) (int32, error) {
	if v, ok := o.(*Integer); ok {
		return v.Value, nil
	}
	return 0, accessError(INTEGER_OBJ, o)
}

func AsUint64(o Object) (uint64, error) {
	if v, ok := o.(*Uint64); ok {
		return v.Value, nil
	}
	return 0, accessError(UINT64_OBJ, o)
}

func AsInt64(o Object) (int64, error) {
	if v, ok := o.(*Int64); ok {
		return v.Value, nil
	}
	return 0, accessError(INT64_OBJ, o)
}

func AsFloat(o Object) (float32, error) {
	if v, ok := o.(*Float); ok {
		return v.Value, nil
	}
	return 0, accessError(FLOAT_OBJ, o)
}

func AsDouble(o Object) (float64, error) {
	if v, ok := o.(*Double); ok {
		return v.Value, nil
	}
	return 0, accessError(DOUBLE_OBJ, o)
}

func AsBigFloat(o Object) (*big.Float, error) {
	if v, ok := o.(*BigFloat); ok {
		return v.Value, nil
	}
	return nil, accessError(BIGFLOAT_OBJ, o)
}

func AsString(o Object) (string, error) {
	if v, ok := o.(*String); ok {
		return v.Value, nil
	}
	return "", accessError(STRING_OBJ, o)
}

func AsList(o Object) (*List, error) {
	if v, ok := o.(*List); ok {
		return v, nil
	}
	return nil, accessError(LIST_OBJ, o)
}

func accessError(want ObjectType, got Object) *Error {
	return NewError(TypeMismatch, "expected %s, got %s", want, got.Type())
}
