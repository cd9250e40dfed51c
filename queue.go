package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Element is one entry of a PriorityQueue.
type Element struct {
	// Key is the weight of Node: a byte count for a Leaf, the sum of its
	// children's weights for an Internal node.
	Key uint64

	// Rank breaks ties between equal Keys; the lower Rank is extracted
	// first.  Ranks must be unique within a queue for the extraction order
	// to be a pure function of the inserted elements.
	Rank uint32

	// Node is the payload.  The queue drops its reference on extraction.
	Node Node
}

func (a Element) less(b Element) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	return a.Rank < b.Rank
}

// PriorityQueue is a fixed-capacity binary min-heap of Elements.
type PriorityQueue struct {
	heap []Element
	size int
}

// NewPriorityQueue returns an empty PriorityQueue able to hold capacity
// Elements.
func NewPriorityQueue(capacity int) *PriorityQueue {
	assert.Assertf(capacity >= 0, "capacity %d < 0", capacity)
	return &PriorityQueue{heap: make([]Element, capacity)}
}

// Len returns the number of Elements currently held.
func (pq *PriorityQueue) Len() int {
	return pq.size
}

// Cap returns the maximum number of Elements the queue can hold.
func (pq *PriorityQueue) Cap() int {
	return len(pq.heap)
}

// Insert adds elem to the queue.  Exceeding the capacity is a programming
// error and panics.
func (pq *PriorityQueue) Insert(elem Element) {
	assert.Assertf(pq.size < len(pq.heap), "priority queue overflow: capacity %d", len(pq.heap))

	i := pq.size
	pq.heap[i] = elem
	pq.size++

	for i > 0 {
		parent := (i - 1) / 2
		if !pq.heap[i].less(pq.heap[parent]) {
			break
		}
		pq.heap[i], pq.heap[parent] = pq.heap[parent], pq.heap[i]
		i = parent
	}
}

// ExtractMin removes and returns the Element with the smallest key.  It
// returns ErrQueueUnderflow if the queue is empty.
func (pq *PriorityQueue) ExtractMin() (Element, error) {
	if pq.size == 0 {
		return Element{}, ErrQueueUnderflow
	}

	top := pq.heap[0]
	last := pq.size - 1
	pq.heap[0] = pq.heap[last]
	pq.heap[last] = Element{}
	pq.size = last
	pq.siftDown(0)
	return top, nil
}

func (pq *PriorityQueue) siftDown(i int) {
	for {
		left := 2*i + 1
		right := left + 1

		smallest := i
		if left < pq.size && pq.heap[left].less(pq.heap[smallest]) {
			smallest = left
		}
		if right < pq.size && pq.heap[right].less(pq.heap[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}

		pq.heap[i], pq.heap[smallest] = pq.heap[smallest], pq.heap[i]
		i = smallest
	}
}

// Dump writes a programmer-readable debugging dump of the heap array, one
// level of the heap per line.
func (pq *PriorityQueue) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "PriorityQueue{Len() = %d, Cap() = %d}\n", pq.size, len(pq.heap))
	for start, width := 0, 1; start < pq.size; start, width = start+width, width*2 {
		end := start + width
		if end > pq.size {
			end = pq.size
		}
		buf.WriteByte('\t')
		for i := start; i < end; i++ {
			if i > start {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "<%d:%d>", pq.heap[i].Key, pq.heap[i].Rank)
		}
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}
