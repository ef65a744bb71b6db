// SPDX-License-Identifier: MIT

package trie

// stringList is a doubly linked list of source prefixes, tethered to a
// single owning ListOfSources node. It lives alongside node in this package
// because removeAndCut needs to call back into the owner's leaf-cut — the
// only case where unlinking a reverse-trie list entry triggers a mutation
// of the trie structure itself.
type stringList struct {
	head, tail *listNode
	len        int
	owner      *node
}

// listNode is one element of a stringList: an owned source-prefix string.
type listNode struct {
	value      string
	prev, next *listNode
	owner      *stringList
}

func newStringList(owner *node) *stringList {
	return &stringList{owner: owner}
}

// add appends s and returns the new node. Order among equal-owner entries is
// not semantically observable: query paths always sort before use.
func (l *stringList) add(s string) *listNode {
	n := &listNode{value: s, owner: l}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.len++
	return n
}

// remove detaches n from its list, without touching the owning node or
// leaf-cutting; see removeAndCut for the version that does.
func (l *stringList) remove(n *listNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next, n.owner = nil, nil, nil
	l.len--
}

// removeAndCut detaches n from its list and, if the list becomes empty,
// leaf-cuts the owning node toward its tree's root — the only path by which
// a forward-trie mutation prunes the reverse trie.
func (ln *listNode) removeAndCut() {
	l := ln.owner
	owner := l.owner
	l.remove(ln)
	if l.empty() {
		owner.sources = nil
		leafCut(owner)
	}
}

// empty reports whether the list has no elements.
func (l *stringList) empty() bool {
	return l == nil || l.len == 0
}

// toSlice copies the list's strings, in list order, into a new []string.
func (l *stringList) toSlice() []string {
	if l.empty() {
		return nil
	}
	out := make([]string, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
