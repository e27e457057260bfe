// Package queue provides a value-based binary heap used for top-K selection.
package queue

// Item is a candidate library entry ordered by match distance.
type Item struct {
	Index    int     // position of the entry in the library
	Distance float64 // signal distance to the query
}

// Less reports whether a ranks before b: smaller distance first, earlier
// library index on equal distance. Selection driven by this ordering is
// identical to a stable ascending sort over library order.
func Less(a, b Item) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Index < b.Index
}

// Max is a bounded max-heap of candidates: the top element is the worst
// retained candidate, making replacement checks O(1).
// Value-based storage, no pointer indirection.
type Max struct {
	items []Item
}

// NewMax initializes a new max-heap with the given capacity.
func NewMax(capacity int) *Max {
	return &Max{items: make([]Item, 0, capacity)}
}

// Len returns the number of retained candidates.
func (q *Max) Len() int { return len(q.items) }

// Top returns the worst retained candidate without removing it.
func (q *Max) Top() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// Push inserts an item while maintaining the heap invariant.
func (q *Max) Push(item Item) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the worst retained candidate.
func (q *Max) Pop() (Item, bool) {
	n := len(q.items)
	if n == 0 {
		return Item{}, false
	}
	root := q.items[0]
	last := q.items[n-1]
	q.items[n-1] = Item{}
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root, true
}

// less orders worse candidates toward the root.
func (q *Max) less(i, j int) bool {
	return Less(q.items[j], q.items[i])
}

func (q *Max) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *Max) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
