package queue

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popAll(pq *Queue) []int {
	ids := make([]int, 0, pq.Len())
	for pq.Len() > 0 {
		ids = append(ids, heap.Pop(pq).(*Item).ItemId)
	}
	return ids
}

func TestQueueOrder(t *testing.T) {
	pq := NewQueue(NewQueueItem(0, 4.5, -1))
	heap.Push(pq, NewQueueItem(1, 0.5, 0))
	heap.Push(pq, NewQueueItem(2, 3, 0))
	heap.Push(pq, NewQueueItem(3, 10, 0))

	assert.Equal(t, []int{1, 2, 0, 3}, popAll(pq))
}

func TestQueueTieBreakByItemId(t *testing.T) {
	pq := NewQueue(nil)
	for _, id := range []int{7, 3, 9, 1, 5} {
		heap.Push(pq, NewQueueItem(id, 2, -1))
	}
	heap.Push(pq, NewQueueItem(8, 1, -1))

	assert.Equal(t, []int{8, 1, 3, 5, 7, 9}, popAll(pq))
}

func TestQueueUpdate(t *testing.T) {
	pq := NewQueue(nil)
	a := NewQueueItem(0, 5, -1)
	b := NewQueueItem(1, 6, -1)
	heap.Push(pq, a)
	heap.Push(pq, b)
	require.Equal(t, 1, b.Index)

	pq.Update(b, 1)
	assert.Equal(t, 0, b.Index)
	first := heap.Pop(pq).(*Item)
	assert.Equal(t, 1, first.ItemId)
	assert.Equal(t, -1, first.Index)
	assert.Equal(t, 0, a.Index)
	assert.Equal(t, 1, pq.Len())
}
