package links

// nodeQueue is a FIFO of pending search nodes.
//
// Each search owns its queues, so there is no locking.
type nodeQueue struct {
	nodes []*TransitiveLink
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{nodes: make([]*TransitiveLink, 0, capacity)}
}

// Push adds nodes to the back of the queue, keeping their order.
func (q *nodeQueue) Push(nodes ...*TransitiveLink) {
	q.nodes = append(q.nodes, nodes...)
}

// Pop removes and returns the front node. Returns (nil, false) when empty.
func (q *nodeQueue) Pop() (*TransitiveLink, bool) {
	if len(q.nodes) == 0 {
		return nil, false
	}

	node := q.nodes[0]

	// Clear the slot so the backing array does not pin popped chains.
	q.nodes[0] = nil

	if len(q.nodes) == 1 {
		q.nodes = q.nodes[:0]
	} else {
		q.nodes = q.nodes[1:]
	}

	return node, true
}

func (q *nodeQueue) Len() int { return len(q.nodes) }

func (q *nodeQueue) Empty() bool { return len(q.nodes) == 0 }
