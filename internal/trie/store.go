// SPDX-License-Identifier: MIT

package trie

import "github.com/adamgreloch/phonefwd/internal/dynarray"

// Store owns a pair of trie roots, cross-linked per rule, kept consistent
// on every insert and remove.
type Store struct {
	fwdRoot *node // SingleTarget
	revRoot *node // ListOfSources
	size    int
}

// NewStore returns an empty dual-trie store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of rules currently bound in the store.
func (s *Store) Len() int {
	return s.size
}

// AddRule binds src -> tgt. It reports false (and does nothing) for the
// identity rule src == tgt; every other pair of already-validated,
// non-empty digit strings succeeds, overwriting any previous rule for src.
func (s *Store) AddRule(src, tgt string) bool {
	if src == tgt {
		return false
	}

	fn := insertPath(&s.fwdRoot, src, SingleTarget)
	rn := insertPath(&s.revRoot, tgt, ListOfSources)

	ln := rn.addSource(src)

	isNewRule := fn.target == nil
	fn.setTarget(tgt)
	bind(fn, ln)

	if isNewRule {
		s.size++
	}
	s.pruneRoots()
	return true
}

// RemovePrefix removes every rule whose source has src as a prefix,
// including src itself if it is a rule. A src with no matching node is a
// silent no-op. src is always non-empty here (the only caller,
// PhoneForward.Remove, rejects empty input first), so the matched node is
// always at least one level below the forward root and always has a
// parent to detach from.
func (s *Store) RemovePrefix(src string) {
	n := findExact(s.fwdRoot, src)
	if n == nil {
		return
	}

	n.detachFromParent()
	s.size -= n.Delete()
	s.pruneRoots()
}

// pruneRoots clears either root pointer left referencing an emptied-out
// root node. leafCut never clears a root's own slot (it has no parent to
// do that through), so every mutating entry point checks both roots
// itself.
func (s *Store) pruneRoots() {
	if s.fwdRoot != nil && s.fwdRoot.isEmpty() {
		s.fwdRoot = nil
	}
	if s.revRoot != nil && s.revRoot.isEmpty() {
		s.revRoot = nil
	}
}

// ForwardLongest is find_fwd_longest: the deepest forward-trie node on the
// path of src that carries a rule, its target, and the matched length.
func (s *Store) ForwardLongest(src string) (target string, matched int, ok bool) {
	n, depth := findLongest(s.fwdRoot, src)
	if n == nil {
		return "", 0, false
	}
	return *n.target, depth, true
}

// ReverseLevel is one level of ancestry visited while walking the reverse
// trie from a matched node up to its root.
type ReverseLevel struct {
	Depth   int      // distance from the reverse trie's root to this node
	Sources []string // this node's bound source prefixes, sorted by cmp
}

// ReverseAscent finds the reverse-trie node matching the longest prefix of
// t and walks it up to the root, collecting every ancestor (including the
// matched node itself) that carries at least one source. cmp orders the
// sources within each level; this is alphabet.cmp injected from the
// phonefwd package, keeping this package free of any dependency on it.
func (s *Store) ReverseAscent(t string, cmp func(a, b string) int) []ReverseLevel {
	n, depth := findLongest(s.revRoot, t)
	if n == nil {
		return nil
	}

	var levels []ReverseLevel
	for cur, d := n, depth; cur != nil; cur, d = cur.parent, d-1 {
		if cur.sources == nil || cur.sources.empty() {
			continue
		}
		bag := dynarray.New[string]()
		for _, v := range cur.sources.toSlice() {
			bag.Push(v)
		}
		bag.Sort(func(x, y string) bool { return cmp(x, y) < 0 })
		levels = append(levels, ReverseLevel{Depth: d, Sources: bag.Slice()})
	}
	return levels
}

// Close tears down both tries. The forward trie is torn down before the
// reverse trie: freeing a SingleTarget node unbinds its reverse-trie
// ListNode, so the reverse trie must still be intact while that happens;
// once the forward trie is gone, the reverse trie's lists are dropped
// outright with no cross-trie bookkeeping left to preserve.
func (s *Store) Close() {
	if s.fwdRoot != nil {
		s.fwdRoot.Delete()
		s.fwdRoot = nil
	}
	if s.revRoot != nil {
		s.revRoot.Delete()
		s.revRoot = nil
	}
	s.size = 0
}
