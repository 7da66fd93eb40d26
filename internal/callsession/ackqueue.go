package callsession

// AckQueue is a bounded FIFO of playback marks awaiting acknowledgement.
// Acks are advisory: popping an empty queue is a no-op and pushing onto a
// full queue evicts the oldest mark.
type AckQueue struct {
	names []string
	limit int
}

func NewAckQueue(limit int) *AckQueue {
	if limit <= 0 {
		limit = 1
	}
	return &AckQueue{limit: limit}
}

func (q *AckQueue) Push(name string) {
	if len(q.names) == q.limit {
		q.names = q.names[1:]
	}
	q.names = append(q.names, name)
}

// Pop removes the oldest mark. It reports false when the queue was empty.
func (q *AckQueue) Pop() (string, bool) {
	if len(q.names) == 0 {
		return "", false
	}
	name := q.names[0]
	q.names = q.names[1:]
	return name, true
}

func (q *AckQueue) Len() int {
	return len(q.names)
}

func (q *AckQueue) Clear() {
	q.names = q.names[:0]
}
