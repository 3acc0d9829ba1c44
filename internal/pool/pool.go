// Package pool provides a bounded free list of resettable objects.
package pool

// Resettable is implemented by objects that can be cleared for reuse.
type Resettable interface {
	Reset()
}

// Poolable is a constraint for types that can be pooled (must be resettable and comparable).
type Poolable interface {
	Resettable
	comparable
}

// Pool holds up to capacity idle objects of type T. Objects are reset on Put
// and allocated with newFn when the pool is empty.
type Pool[T Poolable] struct {
	items chan T
	newFn func() T
}

// New creates a Pool that keeps at most capacity idle objects.
func New[T Poolable](capacity int, newFn func() T) *Pool[T] {
	return &Pool[T]{
		items: make(chan T, capacity),
		newFn: newFn,
	}
}

// Get returns an idle object, or a fresh one from newFn if none is available.
func (p *Pool[T]) Get() T {
	select {
	case item := <-p.items:
		return item
	default:
		return p.newFn()
	}
}

// Put resets item and keeps it for reuse. Zero values are dropped, as is
// anything beyond the pool's capacity.
func (p *Pool[T]) Put(item T) {
	var zero T
	if item == zero {
		return
	}

	item.Reset()

	select {
	case p.items <- item:
	default:
	}
}

// Len reports the number of idle objects.
func (p *Pool[T]) Len() int {
	return len(p.items)
}
