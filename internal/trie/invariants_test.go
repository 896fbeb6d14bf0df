package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertInvariants walks the whole trie checking every structural invariant
// except radix uniqueness, which the children map's rune key enforces by
// construction and so cannot be violated at runtime: label non-emptiness,
// maximal compaction, back-link consistency, and depth correctness.
func assertInvariants[V any](t *testing.T, s *Store[V]) {
	t.Helper()
	walkInvariants(t, s.root, true)
}

func walkInvariants[V any](t *testing.T, n *node[V], isRoot bool) {
	t.Helper()

	if isRoot {
		assert.Equal(t, "", n.getLabel(), "root label must be empty")
	} else {
		assert.NotEqual(t, "", n.getLabel(), "non-root node must have a non-empty label")
	}

	children := n.snapshotChildren()
	if !isRoot && !n.completes() {
		assert.NotEqual(t, 1, len(children), "non-terminal node %q must not have exactly one child", n.getLabel())
	}

	expectedDepth := 0
	for _, c := range children {
		assert.Same(t, n, c.parent, "child %q's parent must be %q", c.getLabel(), n.getLabel())
		if d := runeLen(c.getLabel()) + c.getDepth(); d > expectedDepth {
			expectedDepth = d
		}
		walkInvariants(t, c, false)
	}
	assert.Equal(t, expectedDepth, n.getDepth(), "depth of %q must equal max(child label + child depth)", n.getLabel())
}
