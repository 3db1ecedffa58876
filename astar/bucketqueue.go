package astar

import (
	"math/bits"

	"github.com/katalvlaran/coupledmaze/mazestate"
)

// bucketWordBits is the chunk width for the non-emptiness bitmap. The
// specification describes a 128-bit chunk; Go has no native 128-bit
// integer, so this implementation chunks at the machine word width (64)
// instead and scans with the same math/bits trailing-zero intrinsic the
// teacher's tsp package uses for bitmask population counts (see DESIGN.md).
const bucketWordBits = 64

// bucketItem is one entry parked in a priority bucket: the state and the g
// (instruction count from the start) it was reached at. g travels with the
// item because DeltaTable records only the predecessor move, not path
// cost; the bucket queue is the only place g is tracked.
type bucketItem struct {
	state mazestate.JointState
	g     int
}

// bucketQueue is a minimum-priority queue backed by an array indexed
// directly by priority (g+h), plus a non-emptiness bitmap and a cursor
// that only ever advances: because every push's priority is at least as
// large as the priority of the item that produced it (g only increases,
// and h is never negative), the minimum occupied bucket index is
// non-decreasing over the queue's lifetime, so the scan for the next pop
// never needs to look below where the previous pop found something.
type bucketQueue struct {
	buckets [][]bucketItem
	bitmap  []uint64
	cursor  int // word index the next pop scan may start from
	size    int
}

func newBucketQueue() *bucketQueue {
	return &bucketQueue{}
}

// ensure grows buckets/bitmap so that index p is addressable.
func (q *bucketQueue) ensure(p int) {
	for len(q.buckets) <= p {
		q.buckets = append(q.buckets, nil)
	}
	wantWords := (len(q.buckets) + bucketWordBits - 1) / bucketWordBits
	for len(q.bitmap) < wantWords {
		q.bitmap = append(q.bitmap, 0)
	}
}

// push appends state (reached at cost g) to the bucket for priority p.
func (q *bucketQueue) push(p int, state mazestate.JointState, g int) {
	q.ensure(p)
	q.buckets[p] = append(q.buckets[p], bucketItem{state: state, g: g})
	word, bit := p/bucketWordBits, uint(p%bucketWordBits)
	q.bitmap[word] |= uint64(1) << bit
	q.size++
}

// pop removes and returns the item from the lowest non-empty priority
// bucket at or above the cursor. ok is false when the queue is empty.
func (q *bucketQueue) pop() (state mazestate.JointState, g int, ok bool) {
	for w := q.cursor; w < len(q.bitmap); w++ {
		word := q.bitmap[w]
		if word == 0 {
			if w == q.cursor {
				q.cursor++
			}
			continue
		}
		bit := bits.TrailingZeros64(word)
		idx := w*bucketWordBits + bit
		bucket := q.buckets[idx]
		n := len(bucket)
		item := bucket[n-1]
		q.buckets[idx] = bucket[:n-1]
		if len(q.buckets[idx]) == 0 {
			q.bitmap[w] &^= uint64(1) << uint(bit)
		}
		q.size--
		return item.state, item.g, true
	}
	return mazestate.JointState{}, 0, false
}

// Len reports how many items are currently parked in the queue.
func (q *bucketQueue) Len() int { return q.size }
