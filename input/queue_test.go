package input_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padclick/input"
)

func TestQueueDrainsInOrder(t *testing.T) {
	q := input.NewQueue(0, nil)

	evs, err := q.Poll()
	require.NoError(t, err)
	assert.Empty(t, evs)

	q.Push(input.KeyPress("k:a"))
	q.Push(input.KeyPress("k:b"))
	evs, err = q.Poll()
	require.NoError(t, err)
	assert.Equal(t, []input.Event{input.KeyPress("k:a"), input.KeyPress("k:b")}, evs)

	evs, err = q.Poll()
	require.NoError(t, err)
	assert.Empty(t, evs)
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := input.NewQueue(2, nil)
	assert.True(t, q.Push(input.KeyPress("k:a")))
	assert.True(t, q.Push(input.KeyPress("k:b")))
	assert.False(t, q.Push(input.KeyPress("k:c")))
	assert.Equal(t, 1, q.Dropped())
}

func TestQueueFailAfterPendingEvents(t *testing.T) {
	q := input.NewQueue(0, nil)
	q.Push(input.KeyPress("k:a"))
	q.Fail(input.ErrDeviceLost)

	evs, err := q.Poll()
	require.NoError(t, err)
	assert.Len(t, evs, 1)

	_, err = q.Poll()
	assert.ErrorIs(t, err, input.ErrDeviceLost)
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := input.NewQueue(1000, nil)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				q.Push(input.KeyPress("k:x"))
			}
		}()
	}
	wg.Wait()

	evs, err := q.Poll()
	require.NoError(t, err)
	assert.Len(t, evs, 500)
}

func TestQueueCloseOnce(t *testing.T) {
	calls := 0
	q := input.NewQueue(0, func() error { calls++; return nil })
	require.NoError(t, q.Close())
	require.NoError(t, q.Close())
	assert.Equal(t, 1, calls)
	assert.False(t, q.Push(input.KeyPress("k:a")))
}
