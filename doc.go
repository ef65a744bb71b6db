// SPDX-License-Identifier: MIT

// Package phonefwd stores and queries phone-number prefix forwarding rules.
//
// A rule maps a source digit-string prefix s to a target prefix t: any
// number beginning with s is rewritten by substituting t for that prefix.
// PhoneForward answers three queries over an evolving rule set:
//
//   - Get rewrites a number by its longest matching source prefix.
//   - Reverse lists every number that could plausibly map onto a given
//     number under some rule, plus the number itself.
//   - GetReverse filters Reverse's result down to the numbers for which
//     Get actually round-trips back to the query.
//
// The digit alphabet is fixed: '0'-'9', '*', '#'. The store is not safe for
// concurrent use; callers share a *PhoneForward across goroutines at their
// own risk, with external synchronization.
package phonefwd
