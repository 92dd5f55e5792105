package fast

import (
	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/arith"
	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"
)

// CachedBinOp remembers the kernel that handled the last observed pair
// of operand types for one operation. It is exclusively owned by its
// creator: give each goroutine or loop its own instance and never copy
// one. The kernel tables it consults are immutable, so any number of
// caches can run concurrently.
type CachedBinOp struct {
	noCopy noCopy

	op  arith.Op
	key typePairKey
	fn  arith.Kernel
}

// New returns an empty cache for op.
func New(op arith.Op) *CachedBinOp {
	return &CachedBinOp{op: op, key: invalidKey()}
}

func NewCachedAdd() *CachedBinOp { return New(arith.OpAdd) }
func NewCachedSub() *CachedBinOp { return New(arith.OpSub) }
func NewCachedMul() *CachedBinOp { return New(arith.OpMul) }
func NewCachedDiv() *CachedBinOp { return New(arith.OpDiv) }
func NewCachedMod() *CachedBinOp { return New(arith.OpMod) }

// Op reports which operation this cache dispatches.
func (c *CachedBinOp) Op() arith.Op { return c.op }

// Call applies the cached operation to (a, b).
//
// On a hit the cached kernel runs directly. On a miss the kernel table
// is consulted: a found kernel replaces the slot (key and kernel move
// together, there is no intermediate state); when no kernel exists the
// slot keeps its previous resolution and this one call goes through
// the generic operator, so a single polymorphic call never disables
// the cache.
func (c *CachedBinOp) Call(a, b object.Object) (object.Object, error) {
	key := newTypePairKey(a.Tag(), b.Tag())

	if key == c.key && c.fn != nil {
		return c.fn(a, b)
	}

	if fn := arith.Lookup(c.op, a.Tag(), b.Tag()); fn != nil {
		c.key = key
		c.fn = fn
		return fn(a, b)
	}

	return arith.Apply(c.op, a, b)
}

// Reset forces the cache back to empty. Useful when the caller knows
// an upcoming type change would otherwise cost one wasted lookup.
func (c *CachedBinOp) Reset() {
	c.key = invalidKey()
	c.fn = nil
}

// HasFastPath reports whether a resolution is currently cached.
func (c *CachedBinOp) HasFastPath() bool {
	return c.fn != nil
}

// noCopy flags accidental copies under `go vet -copylocks`; cache
// state must never alias across two logical call sites.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
