package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/policycache/order"
)

func TestPushAndWalk(t *testing.T) {
	l := order.NewList[string](4)
	require.Equal(t, 0, l.Len())

	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)

	a := l.PushFront("a")
	b := l.PushFront("b")
	c := l.PushFront("c")

	require.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"c", "b", "a"}, l.Keys())

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, c, front)
	assert.Equal(t, "c", l.Key(front))

	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, a, back)
	assert.Equal(t, "a", l.Key(back))

	_ = b
}

func TestPushBack(t *testing.T) {
	l := order.NewList[int](0)
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)
	assert.Equal(t, []int{0, 1, 2}, l.Keys())
}

func TestMoveToFront(t *testing.T) {
	l := order.NewList[string](4)
	a := l.PushFront("a")
	l.PushFront("b")
	l.PushFront("c")

	l.MoveToFront(a)
	assert.Equal(t, []string{"a", "c", "b"}, l.Keys())

	// Moving the current front is a no-op.
	l.MoveToFront(a)
	assert.Equal(t, []string{"a", "c", "b"}, l.Keys())
}

func TestMoveToBack(t *testing.T) {
	l := order.NewList[string](4)
	l.PushFront("a")
	l.PushFront("b")
	c := l.PushFront("c")

	l.MoveToBack(c)
	assert.Equal(t, []string{"b", "a", "c"}, l.Keys())
}

func TestRemove(t *testing.T) {
	l := order.NewList[string](4)
	l.PushFront("a")
	b := l.PushFront("b")
	l.PushFront("c")

	key := l.Remove(b)
	assert.Equal(t, "b", key)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"c", "a"}, l.Keys())

	// Removing the ends keeps head/tail consistent.
	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, "a", l.Remove(back))

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, "c", l.Remove(front))

	assert.Equal(t, 0, l.Len())
	_, ok = l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
}

func TestFreeListReusesSlots(t *testing.T) {
	l := order.NewList[int](2)

	// Fill, drain, and refill. The arena must not grow past the high
	// water mark because removed slots go back on the free list.
	handles := make([]order.Handle, 0, 8)
	for i := 0; i < 8; i++ {
		handles = append(handles, l.PushFront(i))
	}
	for _, h := range handles {
		l.Remove(h)
	}
	for i := 0; i < 8; i++ {
		h := l.PushFront(100 + i)
		// Reused handles must land inside the original arena.
		assert.Less(t, int(h), 8)
	}
	assert.Equal(t, 8, l.Len())
}

func TestStaleHandlePanics(t *testing.T) {
	l := order.NewList[string](2)
	a := l.PushFront("a")
	l.Remove(a)

	assert.Panics(t, func() { l.MoveToFront(a) })
	assert.Panics(t, func() { l.Key(a) })
	assert.Panics(t, func() { l.Key(order.Handle(42)) })
}

func TestReset(t *testing.T) {
	l := order.NewList[string](2)
	l.PushFront("a")
	l.PushFront("b")
	l.Reset()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Keys())

	// The list is usable after Reset.
	l.PushFront("c")
	assert.Equal(t, []string{"c"}, l.Keys())
}
