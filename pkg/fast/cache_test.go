package fast

import (
	"testing"

	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/arith"
	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"
)

func wantKind(t *testing.T, err error, kind object.ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a %s error, got nil", kind)
	}
	got, ok := object.KindOf(err)
	if !ok {
		t.Fatalf("expected a value-system error, got %v", err)
	}
	if got != kind {
		t.Fatalf("error kind = %s, want %s (err: %v)", got, kind, err)
	}
}

func wantObject(t *testing.T, got object.Object, err error, typ object.ObjectType, inspect string) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type() != typ {
		t.Fatalf("result type = %s, want %s (value %s)", got.Type(), typ, got.Inspect())
	}
	if got.Inspect() != inspect {
		t.Fatalf("result = %s, want %s", got.Inspect(), inspect)
	}
}

func TestCacheResolvesOnFirstCall(t *testing.T) {
	add := NewCachedAdd()
	if add.HasFastPath() {
		t.Fatal("fresh cache must start empty")
	}

	got, err := add.Call(&object.Integer{Value: 2}, &object.Integer{Value: 3})
	wantObject(t, got, err, object.INTEGER_OBJ, "5")
	if !add.HasFastPath() {
		t.Fatal("cache must hold a resolution after a successful lookup")
	}

	// second call of the same shape takes the cached kernel
	got, err = add.Call(&object.Integer{Value: 10}, &object.Integer{Value: 20})
	wantObject(t, got, err, object.INTEGER_OBJ, "30")
}

func TestCacheFollowsTypeChanges(t *testing.T) {
	add := NewCachedAdd()

	got, err := add.Call(&object.Integer{Value: 2}, &object.Integer{Value: 3})
	wantObject(t, got, err, object.INTEGER_OBJ, "5")

	got, err = add.Call(&object.Double{Value: 2.5}, &object.Double{Value: 1.5})
	wantObject(t, got, err, object.DOUBLE_OBJ, "4")

	got, err = add.Call(&object.Integer{Value: 1}, &object.Double{Value: 0.5})
	wantObject(t, got, err, object.DOUBLE_OBJ, "1.5")

	// back to the first shape, still correct
	got, err = add.Call(&object.Integer{Value: 4}, &object.Integer{Value: 4})
	wantObject(t, got, err, object.INTEGER_OBJ, "8")
}

func TestCacheKeyIsOrderSensitive(t *testing.T) {
	div := NewCachedDiv()

	got, err := div.Call(&object.Integer{Value: 1}, &object.Double{Value: 4})
	wantObject(t, got, err, object.DOUBLE_OBJ, "0.25")

	got, err = div.Call(&object.Double{Value: 1}, &object.Integer{Value: 4})
	wantObject(t, got, err, object.DOUBLE_OBJ, "0.25")
}

func TestGenericFallbackLeavesSlotIntact(t *testing.T) {
	add := NewCachedAdd()

	got, err := add.Call(&object.Integer{Value: 2}, &object.Integer{Value: 3})
	wantObject(t, got, err, object.INTEGER_OBJ, "5")

	// lists have no kernel; the call succeeds generically and the
	// integer resolution survives
	la := object.NewList([]object.Object{&object.Integer{Value: 1}})
	lb := object.NewList([]object.Object{&object.Integer{Value: 2}})
	got, err = add.Call(la, lb)
	wantObject(t, got, err, object.LIST_OBJ, "[1, 2]")
	if !add.HasFastPath() {
		t.Fatal("a kernel-less pair must not evict the cached resolution")
	}

	got, err = add.Call(&object.Integer{Value: 7}, &object.Integer{Value: 8})
	wantObject(t, got, err, object.INTEGER_OBJ, "15")
}

func TestCacheErrorsPassThrough(t *testing.T) {
	div := NewCachedDiv()

	got, err := div.Call(&object.Integer{Value: 6}, &object.Integer{Value: 3})
	wantObject(t, got, err, object.DOUBLE_OBJ, "2")

	// a cached kernel still enforces the zero check
	_, err = div.Call(&object.Integer{Value: 6}, &object.Integer{Value: 0})
	wantKind(t, err, object.DivisionByZero)
	if !div.HasFastPath() {
		t.Fatal("a failing call must not evict the cached resolution")
	}

	mod := NewCachedMod()
	_, err = mod.Call(&object.Integer{Value: 6}, &object.Integer{Value: 0})
	wantKind(t, err, object.ModuloByZero)
}

func TestReset(t *testing.T) {
	mul := NewCachedMul()
	if _, err := mul.Call(&object.Integer{Value: 2}, &object.Integer{Value: 2}); err != nil {
		t.Fatal(err)
	}
	if !mul.HasFastPath() {
		t.Fatal("expected a cached resolution")
	}
	mul.Reset()
	if mul.HasFastPath() {
		t.Fatal("Reset must clear the resolution")
	}
	// resetting twice is harmless
	mul.Reset()

	got, err := mul.Call(&object.Integer{Value: 3}, &object.Integer{Value: 3})
	wantObject(t, got, err, object.INTEGER_OBJ, "9")
}

func TestOpAccessor(t *testing.T) {
	tests := []struct {
		cache *CachedBinOp
		want  arith.Op
	}{
		{NewCachedAdd(), arith.OpAdd},
		{NewCachedSub(), arith.OpSub},
		{NewCachedMul(), arith.OpMul},
		{NewCachedDiv(), arith.OpDiv},
		{NewCachedMod(), arith.OpMod},
	}
	for _, tt := range tests {
		if tt.cache.Op() != tt.want {
			t.Errorf("Op() = %s, want %s", tt.cache.Op(), tt.want)
		}
	}
}

// TestCachedMatchesGeneric sweeps every numeric type pair through every
// operation and checks that a cache-dispatched call and the generic
// operator agree on result type, rendering, and error kind.
func TestCachedMatchesGeneric(t *testing.T) {
	samples := []object.Object{
		&object.Boolean{Value: true},
		&object.Uint{Value: 7},
		&object.Integer{Value: 7},
		&object.Uint64{Value: 7},
		&object.Int64{Value: 7},
		&object.Float{Value: 7},
		&object.Double{Value: 7},
		&object.String{Value: "x"},
	}
	ops := []arith.Op{arith.OpAdd, arith.OpSub, arith.OpMul, arith.OpDiv, arith.OpMod}

	for _, op := range ops {
		for _, a := range samples {
			for _, b := range samples {
				cache := New(op)
				// twice: once resolving, once from the slot
				for i := 0; i < 2; i++ {
					fromCache, cacheErr := cache.Call(a, b)
					fromGeneric, genericErr := arith.Apply(op, a, b)

					if (cacheErr == nil) != (genericErr == nil) {
						t.Fatalf("%s %s %s: cache err %v, generic err %v",
							a.Type(), op, b.Type(), cacheErr, genericErr)
					}
					if cacheErr != nil {
						ck, _ := object.KindOf(cacheErr)
						gk, _ := object.KindOf(genericErr)
						if ck != gk {
							t.Fatalf("%s %s %s: cache kind %s, generic kind %s",
								a.Type(), op, b.Type(), ck, gk)
						}
						continue
					}
					if fromCache.Type() != fromGeneric.Type() || fromCache.Inspect() != fromGeneric.Inspect() {
						t.Fatalf("%s %s %s: cache gave %s %s, generic gave %s %s",
							a.Type(), op, b.Type(),
							fromCache.Type(), fromCache.Inspect(),
							fromGeneric.Type(), fromGeneric.Inspect())
					}
				}
			}
		}
	}
}
