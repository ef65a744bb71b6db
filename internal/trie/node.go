// SPDX-License-Identifier: MIT

// Package trie implements a pair of cross-linked 12-ary tries: a forward
// trie keyed by source-prefix digits and a reverse trie keyed by
// target-prefix digits, with a per-rule link between the two so a mutation
// on one side can keep the other consistent. Each node is a fixed, fully
// expanded level — there is no path compression, since every digit of a
// rule is semantically significant and a shorter rule can be added after a
// longer one at any time.
package trie

// kind is fixed per subtree at root allocation: a node either carries a
// single target string (forward trie) or a list of source strings (reverse
// trie); siblings in the same trie always share their root's kind.
type kind uint8

const (
	// SingleTarget nodes store at most one DigitString value: the forward
	// trie's rule target.
	SingleTarget kind = iota
	// ListOfSources nodes store a stringList of source prefixes: the
	// reverse trie's fan-in.
	ListOfSources
)

const alphabetSize = 12

// node is one level of a 12-ary trie, carrying either a single rule target
// (forward trie) or a list of source prefixes (reverse trie). ListOfSources
// nodes own their stringList directly rather than through an interface:
// the list's owner back-pointer is a genuine, non-generic coupling to
// *node, so list.go lives in this package instead of behind an artificial
// boundary.
//
// A node's back-reference to its parent is a (parent, childIndex) pair
// rather than a pointer into the parent's slot: the children array is
// fixed-size and never reallocated, so a parent pointer plus an index is
// the O(1) equivalent of such a slot pointer, without needing one to exist.
type node struct {
	parent     *node
	childIndex int // index into parent.children; -1 for a root
	children   [alphabetSize]*node
	childCount int

	kind kind

	target  *string    // set iff kind == SingleTarget and a rule is bound here
	sources *stringList // set iff kind == ListOfSources and the list is non-empty

	// bound is the cross-link to the paired trie: for a SingleTarget node
	// carrying a rule, the ListNode in the reverse trie holding this rule's
	// source prefix.
	bound *listNode

	iterCursor int // only meaningful during iterative teardown, see Delete
}

func newNode(parent *node, childIndex int, k kind) *node {
	return &node{parent: parent, childIndex: childIndex, kind: k, iterCursor: -1}
}

// isEmpty reports whether n holds neither a value nor any children, the
// condition under which it can be safely unlinked from its parent.
func (n *node) isEmpty() bool {
	if n.childCount != 0 {
		return false
	}
	switch n.kind {
	case SingleTarget:
		return n.target == nil
	default:
		return n.sources == nil || n.sources.empty()
	}
}

// insertPath walks s from *root, lazily allocating a root of kind k if
// *root is nil, creating missing children as it descends, and returns the
// node for the final symbol of s.
func insertPath(root **node, s string, k kind) *node {
	if *root == nil {
		*root = newNode(nil, -1, k)
	}
	n := *root
	for i := 0; i < len(s); i++ {
		idx := index(s[i])
		child := n.children[idx]
		if child == nil {
			child = newNode(n, idx, k)
			n.children[idx] = child
			n.childCount++
		}
		n = child
	}
	return n
}

// findLongest walks s downward from root and returns the deepest node on
// the path whose value is set, together with the matched length (the
// distance from root to that node). It returns (nil, 0) if no node on the
// path carries a value.
func findLongest(root *node, s string) (*node, int) {
	var lastWithValue *node
	var lastDepth int

	n := root
	for i := 0; n != nil && i < len(s); i++ {
		idx := index(s[i])
		n = n.children[idx]
		if n != nil && n.hasValue() {
			lastWithValue = n
			lastDepth = i + 1
		}
	}
	return lastWithValue, lastDepth
}

// findExact walks s and returns the node at the end of the path only if the
// full path exists (regardless of whether that node carries a value).
func findExact(root *node, s string) *node {
	n := root
	for i := 0; n != nil && i < len(s); i++ {
		n = n.children[index(s[i])]
	}
	return n
}

// hasValue reports whether n carries a rule target (SingleTarget) or at
// least one source (ListOfSources).
func (n *node) hasValue() bool {
	switch n.kind {
	case SingleTarget:
		return n.target != nil
	default:
		return n.sources != nil && !n.sources.empty()
	}
}

// setTarget overwrites n's target in place, for SingleTarget nodes.
func (n *node) setTarget(t string) {
	v := t
	n.target = &v
}

// addSource appends s to n's source list, for ListOfSources nodes, lazily
// allocating the list and tethering it to n as owner.
func (n *node) addSource(s string) *listNode {
	if n.sources == nil {
		n.sources = newStringList(n)
	}
	return n.sources.add(s)
}

// bind establishes the cross-link between a forward-trie rule node and the
// reverse-trie list entry holding its source prefix. If fwd already has a
// bound rule (an overwrite), the stale reverse-trie ListNode is unlinked
// first via removeAndCut.
func bind(fwd *node, ln *listNode) {
	if fwd.bound != nil {
		fwd.bound.removeAndCut()
	}
	fwd.bound = ln
}

// detachFromParent removes n's own slot from its parent in O(1), using the
// parent/childIndex back-reference, then leaf-cuts upward from the parent.
func (n *node) detachFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	p.children[n.childIndex] = nil
	p.childCount--
	leafCut(p)
}

// leafCut walks from n toward the root, unlinking every node that has
// become empty, stopping at the first non-empty node. Since Go has no
// manual free, "freeing" a node means unlinking it so nothing keeps it
// reachable; the garbage collector reclaims it.
func leafCut(n *node) {
	for n != nil && n.isEmpty() {
		p := n.parent
		if p == nil {
			// n is a root: it is left in place, empty, but structurally
			// sound (no children, no value). A root has no parent slot to
			// clear it from, so the owning Store clears its root pointer
			// itself once the mutating call that reached here returns
			// (see Store.pruneRoots).
			return
		}
		p.children[n.childIndex] = nil
		p.childCount--
		n = p
	}
}

// Delete tears down the subtree rooted at n iteratively: degenerate
// single-child chains can be dozens of levels deep (every digit of a long
// phone number is its own level), so recursion is avoided entirely in favor
// of an explicit cursor standing in for the call stack. For every
// SingleTarget node visited, its bound reverse-trie ListNode (if any) is
// unlinked via removeAndCut, keeping the reverse trie consistent while this
// subtree disappears. Returns the number of SingleTarget nodes that carried
// a rule, so callers can keep an incremental rule count.
func (n *node) Delete() int {
	removed := 0
	curr := n
	for curr != nil {
		if curr.childCount == 0 || curr.iterCursor == alphabetSize-1 {
			if curr.free() {
				removed++
			}
			if curr == n {
				return removed
			}
			parent := curr.parent
			parent.children[curr.childIndex] = nil
			parent.childCount--
			curr = parent
		} else {
			next := curr.iterCursor + 1
			if curr.children[next] != nil {
				curr.iterCursor = next
				curr = curr.children[next]
			} else {
				curr.iterCursor = next
			}
		}
	}
	return removed
}

// free drops a single node's own value, without touching children or the
// parent link (Delete, its caller, handles those). Reports whether a
// bound rule was present.
func (n *node) free() bool {
	if n.kind == SingleTarget {
		hadRule := n.target != nil
		if n.bound != nil {
			n.bound.removeAndCut()
			n.bound = nil
		}
		n.target = nil
		return hadRule
	}
	// The list's ListNodes each carry a bound back-reference from some
	// forward-trie node; dropping the whole list here is only safe during
	// teardown of an entire store, where the forward trie is torn down
	// first so none of those back-references are still live (see
	// Store.Close).
	n.sources = nil
	return false
}
