// SPDX-License-Identifier: MIT

package phonefwd

// The digit alphabet Σ = {'0'..'9', '*', '#'} and the lexicographic
// ordering it induces over digit strings: pairwise by symbol index, with a
// shorter string preceding a longer one that shares its prefix.

// alphabetSize is |Σ|, the branching factor of both tries.
const alphabetSize = 12

// symbolIndex maps an input byte to its index in [0,11], or -1 if the byte
// is not a member of Σ = {'0'..'9', '*', '#'}.
var symbolIndex = [256]int8{}

func init() {
	for i := range symbolIndex {
		symbolIndex[i] = -1
	}
	for d := byte('0'); d <= '9'; d++ {
		symbolIndex[d] = int8(d - '0')
	}
	symbolIndex['*'] = 10
	symbolIndex['#'] = 11
}

// index returns the Σ-index of c, or -1 if c is not in Σ.
func index(c byte) int {
	return int(symbolIndex[c])
}

// Validate reports whether s is a non-empty string over Σ. It returns the
// length of s on success, or 0 if s is empty or contains a symbol outside Σ.
func Validate(s string) int {
	if len(s) == 0 {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if index(s[i]) < 0 {
			return 0
		}
	}
	return len(s)
}

// compare orders two digit strings lexicographically by Σ-index, with a
// shorter string preceding a longer one that shares its prefix. Both a and b
// are assumed valid (callers validate before placing strings in the trie).
func compare(a, b string) int {
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
