package atomics

import "sync/atomic"

// Bool is an atomic boolean that defaults to false.
type Bool struct {
	value int32
}

// NewBool returns an atomic boolean with the given initial value.
func NewBool(value bool) Bool {
	b := Bool{}
	b.Set(value)
	return b
}

// Set the boolean to the given value.
func (b *Bool) Set(value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	atomic.StoreInt32(&b.value, v)
}

// Get the current value of the boolean.
func (b *Bool) Get() bool {
	return atomic.LoadInt32(&b.value) != 0
}

// Swap sets the boolean to value and returns the previous value.
func (b *Bool) Swap(value bool) bool {
	v := int32(0)
	if value {
		v = 1
	}
	return atomic.SwapInt32(&b.value, v) != 0
}
