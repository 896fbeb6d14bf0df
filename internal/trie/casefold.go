package trie

import "strings"

// foldCase is the Store's case-folding transform for WithCaseInsensitive.
// Put folds a key before it ever reaches the label-splitting logic, so
// under that option the trie stores and returns the folded form, not the
// caller's original casing — the simplest correct semantics for a radix
// structure keyed by folded text.
func foldCase(s string) string {
	return strings.ToLower(s)
}
