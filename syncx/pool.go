package syncx

import "sync"

// Pool provides a generic wrapper of [sync.Pool].
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// NewPool is used to create a typed [Pool].
// An optional reset function may be given, and will be called with each value passed to [Pool.Put] before it's pooled.
// This is a good place to zero out references that shouldn't be kept alive by the [Pool].
func NewPool[T any](factory func() T, reset ...func(T)) *Pool[T] {
	if factory == nil {
		panic("nil factory function")
	}
	p := new(Pool[T])
	p.pool.New = func() any {
		return factory()
	}
	if len(reset) > 0 {
		p.reset = reset[0]
	}
	return p
}

// Get selects an arbitrary item from the [Pool], removes it from the [Pool], and returns it to the caller.
// Callers should not assume any relation between values passed to [Pool.Put] and the values returned by Get.
//
// If the [Pool] is empty, then Get returns the result of calling the provided factory function.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put resets val if a reset function was given, and adds it to the [Pool].
func (p *Pool[T]) Put(val T) {
	if p.reset != nil {
		p.reset(val)
	}
	p.pool.Put(val)
}
