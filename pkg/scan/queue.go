package scan

// Queue is a fixed-batch FIFO of file paths drained concurrently by
// workers. It is filled once, before any worker starts, and never
// replenished: an empty dequeue means the batch is permanently
// exhausted, so workers exit their loop instead of waiting.
type Queue struct {
	items chan string
}

// NewQueue builds a Queue holding the given paths. The batch is closed
// immediately; TryDequeue never blocks.
func NewQueue(paths []string) *Queue {
	items := make(chan string, len(paths))
	for _, p := range paths {
		items <- p
	}
	close(items)

	return &Queue{items: items}
}

// TryDequeue removes and returns the next path. The second return value
// is false exactly when the queue is exhausted. Each path is delivered
// to at most one caller.
func (q *Queue) TryDequeue() (string, bool) {
	p, ok := <-q.items
	return p, ok
}

// Len returns the number of paths not yet dequeued.
func (q *Queue) Len() int {
	return len(q.items)
}
