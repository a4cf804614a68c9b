// Package pmap implements a small persistent (immutable, structurally
// shared) map keyed by uint32, the representation VariableId uses
// throughout csply. No persistent-map library was found anywhere in
// the retrieved example pack, so Solution's variable->domain and
// variable->metadata bindings are backed by this hand-built Patricia
// trie instead of a borrowed dependency. The shape follows the
// classic big-endian Patricia trie (as used by Haskell's
// Data.IntMap), chosen over a hash-array-mapped trie for its smaller,
// easier-to-verify implementation — every operation returns a new
// Map sharing all untouched subtrees with its parent, which is the
// structural-sharing guarantee Solution cloning depends on.
package pmap

import "math/bits"

// node is either a leaf (key/val populated, left/right nil) or a
// branch (prefix/mask/left/right populated). Go has no sum types, so
// the two cases share one struct, distinguished by left == nil &&
// right == nil.
type node[V any] struct {
	// leaf fields
	key uint32
	val V

	// branch fields
	prefix uint32
	mask   uint32
	left   *node[V]
	right  *node[V]
}

func (n *node[V]) isLeaf() bool { return n.left == nil && n.right == nil }

// Map is an immutable uint32-keyed map. The zero value is a valid
// empty map.
type Map[V any] struct {
	root *node[V]
	size int
}

// Len returns the number of entries.
func (m Map[V]) Len() int { return m.size }

// Get returns the value bound to key and whether it was present.
func (m Map[V]) Get(key uint32) (V, bool) {
	n := m.root
	for n != nil {
		if n.isLeaf() {
			if n.key == key {
				return n.val, true
			}
			var zero V
			return zero, false
		}
		if !matchPrefix(key, n.prefix, n.mask) {
			var zero V
			return zero, false
		}
		if zeroBit(key, n.mask) {
			n = n.left
		} else {
			n = n.right
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m Map[V]) Has(key uint32) bool {
	_, ok := m.Get(key)
	return ok
}

// Set returns a new Map with key bound to val, sharing every other
// entry's storage with the receiver.
func (m Map[V]) Set(key uint32, val V) Map[V] {
	newRoot, inserted := insert(m.root, key, val)
	size := m.size
	if inserted {
		size++
	}
	return Map[V]{root: newRoot, size: size}
}

// Delete returns a new Map without key, sharing every other entry's
// storage with the receiver. Deleting an absent key returns a Map
// equal to the receiver.
func (m Map[V]) Delete(key uint32) Map[V] {
	newRoot, removed := remove(m.root, key)
	size := m.size
	if removed {
		size--
	}
	return Map[V]{root: newRoot, size: size}
}

// Range calls f for every entry until f returns false or every entry
// has been visited. Iteration order is unspecified.
func (m Map[V]) Range(f func(key uint32, val V) bool) {
	rangeNode(m.root, f)
}

func rangeNode[V any](n *node[V], f func(uint32, V) bool) bool {
	if n == nil {
		return true
	}
	if n.isLeaf() {
		return f(n.key, n.val)
	}
	if !rangeNode(n.left, f) {
		return false
	}
	return rangeNode(n.right, f)
}

func leaf[V any](key uint32, val V) *node[V] {
	return &node[V]{key: key, val: val}
}

func branch[V any](prefix, mask uint32, left, right *node[V]) *node[V] {
	return &node[V]{prefix: prefix, mask: mask, left: left, right: right}
}

// highestBit returns the highest set bit of x as a power of two.
func highestBit(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return uint32(1) << (bits.Len32(x) - 1)
}

// branchingBit returns the single bit at which p1 and p2 first differ,
// counting from the most significant bit.
func branchingBit(p1, p2 uint32) uint32 {
	return highestBit(p1 ^ p2)
}

// maskAbove clears the branching bit m and every bit below it, leaving
// only the shared prefix bits above m.
func maskAbove(key, m uint32) uint32 {
	return key &^ ((m << 1) - 1)
}

func matchPrefix(key, prefix, m uint32) bool {
	return maskAbove(key, m) == prefix
}

func zeroBit(key, m uint32) bool {
	return key&m == 0
}

// join combines two subtrees rooted at representative keys k1 and k2
// into a new branch node.
func join[V any](k1 uint32, t1 *node[V], k2 uint32, t2 *node[V]) *node[V] {
	m := branchingBit(k1, k2)
	p := maskAbove(k1, m)
	if zeroBit(k1, m) {
		return branch(p, m, t1, t2)
	}
	return branch(p, m, t2, t1)
}

// representative returns a key contained within n, used to compute a
// branching bit against a sibling subtree.
func representative[V any](n *node[V]) uint32 {
	if n.isLeaf() {
		return n.key
	}
	return n.prefix
}

func insert[V any](n *node[V], key uint32, val V) (*node[V], bool) {
	if n == nil {
		return leaf(key, val), true
	}
	if n.isLeaf() {
		if n.key == key {
			return leaf(key, val), false
		}
		return join(key, leaf(key, val), n.key, n), true
	}
	if matchPrefix(key, n.prefix, n.mask) {
		if zeroBit(key, n.mask) {
			newLeft, inserted := insert(n.left, key, val)
			return branch(n.prefix, n.mask, newLeft, n.right), inserted
		}
		newRight, inserted := insert(n.right, key, val)
		return branch(n.prefix, n.mask, n.left, newRight), inserted
	}
	return join(key, leaf(key, val), representative(n), n), true
}

func remove[V any](n *node[V], key uint32) (*node[V], bool) {
	if n == nil {
		return nil, false
	}
	if n.isLeaf() {
		if n.key == key {
			return nil, true
		}
		return n, false
	}
	if !matchPrefix(key, n.prefix, n.mask) {
		return n, false
	}
	if zeroBit(key, n.mask) {
		newLeft, removed := remove(n.left, key)
		if !removed {
			return n, false
		}
		return collapse(n.prefix, n.mask, newLeft, n.right), true
	}
	newRight, removed := remove(n.right, key)
	if !removed {
		return n, false
	}
	return collapse(n.prefix, n.mask, n.left, newRight), true
}

// collapse rebuilds a branch after one side shrank, dropping the
// branch entirely if a side became empty.
func collapse[V any](prefix, mask uint32, left, right *node[V]) *node[V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return branch(prefix, mask, left, right)
}
