// SPDX-License-Identifier: MIT

// Package phonefwd implements a phone-number prefix forwarding store: a
// rule maps a source digit-string prefix to a target prefix, and every
// number beginning with the source is rewritten by substituting the
// target. The store is backed by a cross-linked dual-trie (internal/trie)
// so that both the forward rewrite and the reverse query run in time
// proportional to the length of the number involved, not to the number of
// rules.
package phonefwd

import (
	"github.com/adamgreloch/phonefwd/internal/dynarray"
	"github.com/adamgreloch/phonefwd/internal/trie"
)

// PhoneForward is the library's main handle, wrapping a dual-trie store.
// The zero value is not usable; construct one with New.
type PhoneForward struct {
	store *trie.Store
}

// New returns an empty PhoneForward.
func New() *PhoneForward {
	return &PhoneForward{store: trie.NewStore()}
}

// Len reports the number of rules currently held.
func (pf *PhoneForward) Len() int {
	return pf.store.Len()
}

// Close releases the store. pf must not be used afterwards.
func (pf *PhoneForward) Close() {
	pf.store.Close()
}

// Debug renders both tries as indented text, one block per trie, one line
// per node. It is meant for interactive inspection (see cmd/phonefwdctl's
// dump command), not for parsing: its format carries no compatibility
// guarantee.
func (pf *PhoneForward) Debug() string {
	return pf.store.DumpString()
}

// Add binds src -> tgt, mirroring phfwd_add: both strings are validated
// first (non-empty, Σ-only); the identity rule src == tgt is rejected.
// Either failure leaves the store untouched and returns false.
func (pf *PhoneForward) Add(src, tgt string) bool {
	if Validate(src) == 0 || Validate(tgt) == 0 {
		return false
	}
	return pf.store.AddRule(src, tgt)
}

// Remove drops every rule whose source has src as a prefix. Invalid or
// absent src is a silent no-op, mirroring phfwd_remove.
func (pf *PhoneForward) Remove(src string) {
	if Validate(src) == 0 {
		return
	}
	pf.store.RemovePrefix(src)
}

// Get rewrites num by the longest matching source prefix currently bound,
// mirroring phfwd_get. An invalid num yields an empty PhoneNumbers; a num
// with no matching rule yields a single-element PhoneNumbers holding a copy
// of num unchanged.
func (pf *PhoneForward) Get(num string) *PhoneNumbers {
	if Validate(num) == 0 {
		return newPhoneNumbers(nil)
	}

	tgt, matched, ok := pf.store.ForwardLongest(num)
	if !ok {
		return newPhoneNumbers([]string{num})
	}
	return newPhoneNumbers([]string{replacePrefix(num, tgt, matched)})
}

// Reverse returns every digit string that Get could plausibly have
// rewritten onto a number starting with num: for every rule q -> p where p
// is a prefix of num, num with that p replaced by q is a candidate, plus
// num itself. The result is sorted with duplicates removed; it is never
// empty for a valid num (num is always a member).
func (pf *PhoneForward) Reverse(num string) *PhoneNumbers {
	if Validate(num) == 0 {
		return newPhoneNumbers(nil)
	}
	return newPhoneNumbers(pf.reverseCandidates(num))
}

// reverseCandidates computes Reverse's result set without the input
// validation wrapper, so GetReverse can reuse it directly: the candidate
// bag is accumulated in a dynarray.Array, sorted by its comparator, and
// deduplicated.
func (pf *PhoneForward) reverseCandidates(num string) []string {
	levels := pf.store.ReverseAscent(num, compare)

	bag := dynarray.New[string]()
	for _, lvl := range levels {
		for _, src := range lvl.Sources {
			bag.Push(replacePrefix(num, src, lvl.Depth))
		}
	}
	bag.Push(num)

	bag.Sort(func(x, y string) bool { return compare(x, y) < 0 })
	return dedupSorted(bag.Slice())
}

// GetReverse is the consistency-filtered version of Reverse: every x in
// Reverse(num) such that Get(x) == num.
func (pf *PhoneForward) GetReverse(num string) *PhoneNumbers {
	if Validate(num) == 0 {
		return newPhoneNumbers(nil)
	}

	candidates := pf.reverseCandidates(num)
	out := make([]string, 0, len(candidates))
	for _, x := range candidates {
		if pf.getString(x) == num {
			out = append(out, x)
		}
	}
	return newPhoneNumbers(out)
}

// getString is Get's rewrite logic without the PhoneNumbers wrapping, used
// internally by GetReverse's consistency check.
func (pf *PhoneForward) getString(num string) string {
	tgt, matched, ok := pf.store.ForwardLongest(num)
	if !ok {
		return num
	}
	return replacePrefix(num, tgt, matched)
}

// dedupSorted drops adjacent duplicates from an already-sorted slice,
// reusing its backing array.
func dedupSorted(s []string) []string {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
