package search

import "container/heap"

// Entry is a frontier entry. Entries are ordered by Priority, then by Order,
// which increases with every insertion so equal priorities pop FIFO.
type Entry[S comparable, A any] struct {
	Priority float64
	Order    uint64
	Node     Node[S, A]
}

type priorityQueueItem[S comparable, A any] struct {
	entry        Entry[S, A]
	indexInQueue int
}

type priorityQueue[S comparable, A any] []*priorityQueueItem[S, A]

func (queue priorityQueue[S, A]) Len() int { return len(queue) }
func (queue priorityQueue[S, A]) Less(i, j int) bool {
	a, b := queue[i].entry, queue[j].entry
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Order < b.Order
}
func (queue priorityQueue[S, A]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *priorityQueue[S, A]) Push(x any) {
	item := x.(*priorityQueueItem[S, A])
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue[S, A]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// Frontier is a min-priority queue of search nodes holding at most one live
// entry per state. The zero value is not usable; call NewFrontier.
type Frontier[S comparable, A any] struct {
	queue   priorityQueue[S, A]
	byState map[S]*priorityQueueItem[S, A]
	counter uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier[S comparable, A any]() *Frontier[S, A] {
	return &Frontier[S, A]{
		queue:   make(priorityQueue[S, A], 0),
		byState: make(map[S]*priorityQueueItem[S, A]),
	}
}

// Len returns the number of live entries.
func (f *Frontier[S, A]) Len() int { return f.queue.Len() }

// Contains reports whether state has a live entry.
func (f *Frontier[S, A]) Contains(state S) bool {
	_, ok := f.byState[state]
	return ok
}

// Push inserts node with a fresh insertion order. A live entry for the same
// state is replaced regardless of its priority.
func (f *Frontier[S, A]) Push(node Node[S, A], priority float64) {
	if item, ok := f.byState[node.State]; ok {
		f.replace(item, node, priority)
		return
	}
	item := &priorityQueueItem[S, A]{entry: f.entry(node, priority)}
	heap.Push(&f.queue, item)
	f.byState[node.State] = item
}

// PopMin removes and returns the entry with the lowest (Priority, Order).
// It returns false when the frontier is empty.
func (f *Frontier[S, A]) PopMin() (Entry[S, A], bool) {
	if f.queue.Len() == 0 {
		return Entry[S, A]{}, false
	}
	item := heap.Pop(&f.queue).(*priorityQueueItem[S, A])
	delete(f.byState, item.entry.Node.State)
	return item.entry, true
}

// PeekCost returns the priority recorded for state, if it has a live entry.
func (f *Frontier[S, A]) PeekCost(state S) (float64, bool) {
	item, ok := f.byState[state]
	if !ok {
		return 0, false
	}
	return item.entry.Priority, true
}

// DecreaseOrInsert inserts node if its state has no live entry, or replaces
// the live entry when priority is strictly lower. It reports whether the
// frontier changed.
func (f *Frontier[S, A]) DecreaseOrInsert(node Node[S, A], priority float64) bool {
	item, ok := f.byState[node.State]
	if !ok {
		f.Push(node, priority)
		return true
	}
	if priority < item.entry.Priority {
		f.replace(item, node, priority)
		return true
	}
	return false
}

// replace swaps the stale entry for a new one in place. Taking a new order
// number makes it equivalent to removing and re-inserting.
func (f *Frontier[S, A]) replace(item *priorityQueueItem[S, A], node Node[S, A], priority float64) {
	item.entry = f.entry(node, priority)
	heap.Fix(&f.queue, item.indexInQueue)
}

func (f *Frontier[S, A]) entry(node Node[S, A], priority float64) Entry[S, A] {
	e := Entry[S, A]{Priority: priority, Order: f.counter, Node: node}
	f.counter++
	return e
}
