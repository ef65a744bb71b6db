// SPDX-License-Identifier: MIT

package trie

// index maps a digit-string byte to its Σ-index in [0,11], matching the
// root package's own alphabet. Duplicated from the root package rather
// than imported: the root package imports trie for the store, so the
// dependency can't run the other way, and the mapping is a three-line
// table neither package should have to expose just to share it.
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

func index(c byte) int {
	return int(symbolIndex[c])
}
