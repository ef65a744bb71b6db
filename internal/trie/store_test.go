// SPDX-License-Identifier: MIT

package trie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func cmp(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ai, bi := index(a[i]), index(b[i])
		if ai != bi {
			return ai - bi
		}
	}
	return len(a) - len(b)
}

func TestAddRuleAndForwardLongest(t *testing.T) {
	s := NewStore()
	require.True(t, s.AddRule("123", "9"))
	require.Equal(t, 1, s.Len())

	tgt, matched, ok := s.ForwardLongest("1234")
	require.True(t, ok)
	require.Equal(t, "9", tgt)
	require.Equal(t, 3, matched)

	_, _, ok = s.ForwardLongest("12")
	require.False(t, ok, "no rule is a prefix of \"12\"")
}

func TestAddRuleRejectsIdentity(t *testing.T) {
	s := NewStore()
	require.False(t, s.AddRule("123", "123"))
	require.Equal(t, 0, s.Len())
}

func TestAddRuleOverwriteDoesNotDoubleCount(t *testing.T) {
	s := NewStore()
	require.True(t, s.AddRule("123", "9"))
	require.True(t, s.AddRule("123", "7"))
	require.Equal(t, 1, s.Len())

	tgt, _, ok := s.ForwardLongest("123")
	require.True(t, ok)
	require.Equal(t, "7", tgt)

	// the stale reverse-trie entry for target "9" must be gone.
	levels := s.ReverseAscent("9", cmp)
	require.Empty(t, levels)

	levels = s.ReverseAscent("7", cmp)
	require.Len(t, levels, 1)
	require.Equal(t, []string{"123"}, levels[0].Sources)
}

func TestRemovePrefixRemovesWholeSubtree(t *testing.T) {
	s := NewStore()
	s.AddRule("123", "9")
	s.AddRule("123456", "777777")
	require.Equal(t, 2, s.Len())

	s.RemovePrefix("123")
	require.Equal(t, 0, s.Len())

	_, _, ok := s.ForwardLongest("123456")
	require.False(t, ok)

	// the reverse trie must have been pruned along with the forward one.
	require.Empty(t, s.ReverseAscent("9", cmp))
	require.Empty(t, s.ReverseAscent("777777", cmp))
}

func TestRemovePrefixAbsentIsNoop(t *testing.T) {
	s := NewStore()
	s.AddRule("123", "9")
	s.RemovePrefix("999")
	require.Equal(t, 1, s.Len())
}

func TestRootsArePrunedWhenEmptied(t *testing.T) {
	s := NewStore()
	s.AddRule("2", "020")
	s.RemovePrefix("2")

	require.Nil(t, s.fwdRoot)
	require.Nil(t, s.revRoot)
	require.Equal(t, 0, s.Len())
}

func TestDeepChainTeardownDoesNotRecurse(t *testing.T) {
	// a single rule whose source is a long run of the same digit builds a
	// degenerate chain that must tear down without recursion. This just
	// exercises the path; a stack overflow would crash the test binary
	// rather than fail an assertion.
	src := strings.Repeat("1", 5000)
	s := NewStore()
	s.AddRule(src, "9")
	s.RemovePrefix(src[:1])
	require.Equal(t, 0, s.Len())
	require.Nil(t, s.fwdRoot)
}

func TestReverseAscentOrdersSourcesAndLevels(t *testing.T) {
	s := NewStore()
	s.AddRule("9", "2")
	s.AddRule("3", "2")
	s.AddRule("2123", "212")

	levels := s.ReverseAscent("212345", cmp)
	// "212" is matched at depth 3 (sources: "2123"), "2" at depth 1
	// (sources: "3", "9" sorted by cmp).
	require.Len(t, levels, 2)
	require.Equal(t, 3, levels[0].Depth)
	require.Equal(t, []string{"2123"}, levels[0].Sources)
	require.Equal(t, 1, levels[1].Depth)
	require.Equal(t, []string{"3", "9"}, levels[1].Sources)
}

func TestDumpStringShowsBothTries(t *testing.T) {
	s := NewStore()
	s.AddRule("123", "9")

	out := s.DumpString()
	require.Contains(t, out, "### forward")
	require.Contains(t, out, "### reverse")
	require.Contains(t, out, `target:"9"`)
	require.Contains(t, out, `sources:["123"]`)
}

func TestCloseResetsStore(t *testing.T) {
	s := NewStore()
	s.AddRule("123", "9")
	s.Close()
	require.Equal(t, 0, s.Len())
	_, _, ok := s.ForwardLongest("123")
	require.False(t, ok)
}
