package scan

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDrainsInOrder(t *testing.T) {
	q := NewQueue([]string{"a.txt", "b.txt", "c.txt"})
	assert.Equal(t, 3, q.Len())

	for _, want := range []string{"a.txt", "b.txt", "c.txt"} {
		p, ok := q.TryDequeue()
		assert.True(t, ok)
		assert.Equal(t, want, p)
	}

	p, ok := q.TryDequeue()
	assert.False(t, ok)
	assert.Empty(t, p)
	assert.Equal(t, 0, q.Len())
}

func TestQueueEmptyBatch(t *testing.T) {
	q := NewQueue(nil)

	p, ok := q.TryDequeue()
	assert.False(t, ok)
	assert.Empty(t, p)
}

func TestQueueConcurrentDrainDeliversEachPathOnce(t *testing.T) {
	const n = 1000

	paths := make([]string, n)
	for i := range paths {
		paths[i] = string(rune('a'+i%26)) + "/" + string(rune('0'+i%10))
	}

	q := NewQueue(paths)

	const workers = 8
	results := make([][]string, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for {
				p, ok := q.TryDequeue()
				if !ok {
					return
				}
				results[w] = append(results[w], p)
			}
		}(w)
	}
	wg.Wait()

	var drained []string
	for _, r := range results {
		drained = append(drained, r...)
	}

	// Every path delivered exactly once, across all workers.
	assert.ElementsMatch(t, paths, drained)
}
