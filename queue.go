package huffman

import (
	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// Queue is a priority queue of candidate subtrees, used while building a
// code tree.
//
// Subtrees are ordered by root weight, then by root symbol (internal nodes
// have symbol 0).  Subtrees with equal keys stay in insertion order.  The
// resulting tree shape is part of the wire format, so this ordering must
// not change.
type Queue struct {
	list []*Node
}

// Push inserts a subtree, ahead of the first entry that it orders strictly
// before.
func (q *Queue) Push(n *Node) {
	i := slices.IndexFunc(q.list, func(e *Node) bool {
		return nodeLess(n, e)
	})
	if i < 0 {
		q.list = append(q.list, n)
		return
	}
	q.list = slices.Insert(q.list, i, n)
}

// Pop removes and returns the minimum subtree.  The queue must not be empty.
func (q *Queue) Pop() *Node {
	assert.Assertf(len(q.list) != 0, "Pop called on empty Queue")
	n := q.list[0]
	q.list[0] = nil
	q.list = slices.Delete(q.list, 0, 1)
	return n
}

// Len returns the number of subtrees in the queue.
func (q *Queue) Len() int {
	return len(q.list)
}

// IsEmpty returns true iff the queue holds no subtrees.
func (q *Queue) IsEmpty() bool {
	return len(q.list) == 0
}

// SizeIsOne returns true iff the queue holds exactly one subtree.
func (q *Queue) SizeIsOne() bool {
	return len(q.list) == 1
}

func nodeLess(a, b *Node) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.Symbol < b.Symbol
}
