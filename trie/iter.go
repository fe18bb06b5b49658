package trie

// Iter yields the existing children of a node in ascending letter order.
//
// Usage:
//
//	it := n.Iter()
//	for it.Next() {
//		use(it.Letter(), it.Node())
//	}
//
// An Iter is single-use; ask the node for a fresh one per query.
type Iter struct {
	nodes *[AlphabetSize]*Node
	ix    int
}

// Iter returns a fresh ascending child iterator positioned before the first child.
func (n *Node) Iter() Iter {
	return Iter{nodes: &n.children, ix: -1}
}

// Next advances to the next existing child. It returns false once the
// alphabet is exhausted and keeps returning false afterwards.
func (it *Iter) Next() bool {
	for it.ix < AlphabetSize {
		it.ix++
		if it.ix >= AlphabetSize {
			return false
		}
		if it.nodes[it.ix] != nil {
			return true
		}
	}

	return false
}

// Index returns the current child slot.
func (it *Iter) Index() int { return it.ix }

// Letter returns the current child letter.
func (it *Iter) Letter() byte { return Letter(it.ix) }

// Node returns the current child.
func (it *Iter) Node() *Node { return it.nodes[it.ix] }

// CircIter yields existing children scanning the alphabet exactly once,
// starting at an offset and wrapping from Z back to A. Every slot is
// visited at most once.
type CircIter struct {
	nodes   *[AlphabetSize]*Node
	start   int
	visited int // slots consumed so far, 0..AlphabetSize
	ix      int
}

// CircIter returns a circular iterator starting at slot start. Offsets
// outside [0, AlphabetSize) are reduced modulo AlphabetSize.
func (n *Node) CircIter(start int) CircIter {
	start %= AlphabetSize
	if start < 0 {
		start += AlphabetSize
	}

	return CircIter{nodes: &n.children, start: start, ix: -1}
}

// Next advances to the next existing child in circular order.
func (it *CircIter) Next() bool {
	for it.visited < AlphabetSize {
		it.ix = (it.start + it.visited) % AlphabetSize
		it.visited++
		if it.nodes[it.ix] != nil {
			return true
		}
	}

	return false
}

// Index returns the current child slot.
func (it *CircIter) Index() int { return it.ix }

// Letter returns the current child letter.
func (it *CircIter) Letter() byte { return Letter(it.ix) }

// Node returns the current child.
func (it *CircIter) Node() *Node { return it.nodes[it.ix] }

// PairIter yields, in ascending order, the letters that are children of
// both a forward node and a backward node.
type PairIter struct {
	fwd *[AlphabetSize]*Node
	bwd *[AlphabetSize]*Node
	ix  int
}

// PairIter returns an intersection iterator over the children of n and other.
func (n *Node) PairIter(other *Node) PairIter {
	return PairIter{fwd: &n.children, bwd: &other.children, ix: -1}
}

// Next advances to the next letter present in both nodes.
func (it *PairIter) Next() bool {
	for it.ix < AlphabetSize {
		it.ix++
		if it.ix >= AlphabetSize {
			return false
		}
		if it.fwd[it.ix] != nil && it.bwd[it.ix] != nil {
			return true
		}
	}

	return false
}

// Index returns the current child slot.
func (it *PairIter) Index() int { return it.ix }

// Letter returns the current shared letter.
func (it *PairIter) Letter() byte { return Letter(it.ix) }

// Forward returns the child on the receiver's side.
func (it *PairIter) Forward() *Node { return it.fwd[it.ix] }

// Backward returns the child on the other node's side.
func (it *PairIter) Backward() *Node { return it.bwd[it.ix] }
