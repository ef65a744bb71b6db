// SPDX-License-Identifier: MIT

package phonefwd

// replacePrefix returns newPrefix followed by the tail of num starting at
// toReplace, i.e. the result of substituting newPrefix for num's first
// toReplace digits.
func replacePrefix(num, newPrefix string, toReplace int) string {
	return newPrefix + num[toReplace:]
}
