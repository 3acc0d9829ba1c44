package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockResettable struct {
	Value       int
	ResetCalled int
}

func (m *mockResettable) Reset() {
	m.Value = 0
	m.ResetCalled++
}

func newMock() *mockResettable {
	return &mockResettable{}
}

func TestPoolGet_EmptyPoolAllocates(t *testing.T) {
	pool := New(5, newMock)

	item := pool.Get()
	require.NotNil(t, item)
	assert.Equal(t, 0, item.ResetCalled)
	assert.Equal(t, 0, pool.Len())
}

func TestPoolPutAndGet(t *testing.T) {
	pool := New(5, newMock)

	obj := &mockResettable{Value: 42}
	pool.Put(obj)

	assert.Equal(t, 1, pool.Len())

	retrieved := pool.Get()
	assert.Same(t, obj, retrieved)
	assert.Equal(t, 0, retrieved.Value)
	assert.Equal(t, 1, retrieved.ResetCalled)
}

func TestPoolCapacity(t *testing.T) {
	pool := New(2, newMock)

	for i := 0; i < 5; i++ {
		pool.Put(&mockResettable{Value: i})
	}

	assert.Equal(t, 2, pool.Len())
}

func TestPoolPutNil(t *testing.T) {
	pool := New(2, newMock)

	pool.Put(nil)

	assert.Equal(t, 0, pool.Len())
}

func TestPoolBuffers(t *testing.T) {
	pool := New(1, func() *bytes.Buffer { return new(bytes.Buffer) })

	buf := pool.Get()
	buf.WriteString(`{"url":"https://x"}`)
	pool.Put(buf)

	reused := pool.Get()
	assert.Same(t, buf, reused)
	assert.Equal(t, 0, reused.Len())
}

func TestPoolConcurrentAccess(t *testing.T) {
	pool := New(10, newMock)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := pool.Get()
			item.Value = 7
			pool.Put(item)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, pool.Len(), 10)
}
