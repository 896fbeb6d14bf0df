// Package trie implements a compacted, thread-safe radix tree mapping
// string keys to a generic payload, with exact lookup, prefix enumeration,
// and fuzzy substring search under a tunable error budget.
package trie

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Store owns the root of a compacted trie and every node reachable from it.
// A Store is safe for concurrent use by multiple goroutines; each operation
// follows the locking discipline described on node's fields.
type Store[V any] struct {
	root *node[V]

	log             zerolog.Logger
	caseInsensitive bool
}

// Option configures a Store at construction time.
type Option[V any] func(*Store[V])

// WithCaseInsensitive folds both inserted keys and search queries to lower
// case. Because the fold happens before a key is split into edge labels,
// the trie ends up storing the folded form: sequences returned in results
// and via MatchByPrefix are lower-cased too, not the caller's original
// casing.
func WithCaseInsensitive[V any]() Option[V] {
	return func(s *Store[V]) { s.caseInsensitive = true }
}

// WithLogger overrides the Store's zerolog.Logger, used at Debug level to
// trace structural mutations (split, fuse, unlink). Default is a disabled
// logger so the Store stays silent unless a caller opts in.
func WithLogger[V any](l zerolog.Logger) Option[V] {
	return func(s *Store[V]) { s.log = l }
}

// New creates an empty Store.
func New[V any](opts ...Option[V]) *Store[V] {
	s := &Store[V]{
		root: newNode[V]("", nil),
		log:  zerolog.New(os.Stderr).Level(zerolog.Disabled),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store[V]) fold(key string) string {
	if s.caseInsensitive {
		return foldCase(key)
	}
	return key
}

// Put inserts value under key, returning the value key held before (if
// any), by matching progressively longer prefixes of key against child
// labels: it descends on a full-label match, splits a child whose label
// runs past the remaining key, splits on a fresh common prefix, or appends
// a new leaf when no child shares key's first character.
func (s *Store[V]) Put(key string, value V) (prev V, hadPrev bool, err error) {
	if key == "" {
		return prev, false, invalidArgf("put: key must be non-empty")
	}
	for _, r := range key {
		if r == '*' {
			return prev, false, invalidArgf("put: '*' is reserved for WILDCARD queries and cannot appear in a stored key")
		}
	}

	cur := s.root
	remainder := s.fold(key)

	for {
		if remainder == "" {
			prev, hadPrev = cur.setValue(value)
			recomputeDepthToRoot(cur)
			s.log.Debug().Str("key", key).Bool("overwrite", hadPrev).Msg("put: overwrite existing node")
			return prev, hadPrev, nil
		}

		r := firstRune(remainder)
		child := cur.childLocked(r)

		if child == nil {
			leaf := newNode[V](remainder, cur)
			leaf.setValue(value)
			cur.setChild(leaf)
			recomputeDepthToRoot(cur)
			s.log.Debug().Str("key", key).Str("label", remainder).Msg("put: appended new leaf")
			return prev, false, nil
		}

		// Snapshot once: child.label can be rewritten by a concurrent split
		// or fuse elsewhere, so every branch below decides and slices off
		// this single consistent view rather than re-reading the live field.
		childLabel := child.getLabel()

		switch {
		case isPrefixOf(childLabel, remainder):
			remainder = remainder[len(childLabel):]
			cur = child

		case isPrefixOf(remainder, childLabel):
			// Split: remainder becomes a new intermediate node carrying
			// value, with the old child demoted under it with a shortened
			// label.
			mid := newNode[V](remainder, cur)
			mid.setValue(value)
			child.parent = mid
			child.setLabel(childLabel[len(remainder):])
			mid.setChild(child)
			cur.setChild(mid)
			recomputeDepthToRoot(mid)
			s.log.Debug().Str("key", key).Str("split_at", remainder).Msg("put: split child, remainder is prefix")
			return prev, false, nil

		default:
			common := commonPrefix(childLabel, remainder)
			if common == "" {
				panicInvariant("put: no common prefix but same first rune %q", r)
			}
			mid := newNode[V](common, cur)

			child.parent = mid
			child.setLabel(childLabel[len(common):])
			mid.setChild(child)

			leaf := newNode[V](remainder[len(common):], mid)
			leaf.setValue(value)
			mid.setChild(leaf)

			cur.setChild(mid)
			recomputeDepthToRoot(mid)
			s.log.Debug().Str("key", key).Str("split_common", common).Msg("put: split child, fresh sibling")
			return prev, false, nil
		}
	}
}

// Get returns the value stored under key, or ok=false if absent.
func (s *Store[V]) Get(key string) (value V, ok bool, err error) {
	if key == "" {
		return value, false, invalidArgf("get: key must be non-empty")
	}
	n := s.findExact(s.fold(key))
	if n == nil {
		return value, false, nil
	}
	value, ok = n.getValue()
	return value, ok, nil
}

// findExact walks from the root matching key exactly, returning the node
// whose accumulated labels equal key, or nil if no such node exists.
func (s *Store[V]) findExact(key string) *node[V] {
	cur := s.root
	remainder := key
	for remainder != "" {
		child := cur.childLocked(firstRune(remainder))
		if child == nil {
			return nil
		}
		childLabel := child.getLabel()
		if !isPrefixOf(childLabel, remainder) {
			return nil
		}
		remainder = remainder[len(childLabel):]
		cur = child
	}
	return cur
}

// Remove deletes key, returning the value it held. It fails with
// ErrNotFound if key is absent.
func (s *Store[V]) Remove(key string) (prev V, err error) {
	if key == "" {
		return prev, invalidArgf("remove: key must be non-empty")
	}
	folded := s.fold(key)
	n := s.findExact(folded)
	if n == nil || !n.completes() {
		return prev, fmt.Errorf("trie: remove %q: %w", key, ErrNotFound)
	}

	prev, _ = n.clearValue()
	s.log.Debug().Str("key", key).Msg("remove: cleared terminal value")
	s.compactUpward(n)
	return prev, nil
}

// compactUpward restores maximal compaction after a value is cleared: while
// the current node is non-terminal with at most one child, unlink it (if
// it now has no children and isn't the root) or fuse it into its sole
// child. Runs until the chain reaches a node that must stay, then
// recomputes depth to the root.
func (s *Store[V]) compactUpward(n *node[V]) {
	cur := n
	for cur != s.root && !cur.completes() {
		parent := cur.parent
		if parent == nil {
			panicInvariant("compactUpward: non-root node %q has nil parent", cur.getLabel())
		}

		if cur.childCountLocked() == 0 {
			curLabel := cur.getLabel()
			parent.deleteChild(firstRune(curLabel))
			s.log.Debug().Str("label", curLabel).Msg("compact: unlinked childless non-terminal node")
			cur = parent
			continue
		}

		if child, ok := cur.soleChildLocked(); ok {
			fused := cur.getLabel() + child.getLabel()
			child.setLabel(fused)
			child.parent = parent
			parent.setChild(child)
			s.log.Debug().Str("fused_label", fused).Msg("compact: fused single-child chain")
			cur = parent
			continue
		}

		break
	}
	recomputeDepthToRoot(cur)
}

// Stats summarizes the shape of a Store at the moment it was taken.
type Stats struct {
	Nodes    int
	Keys     int
	MaxDepth int
}

// Stats walks the whole trie and reports its current size and shape. It
// takes no locks beyond what snapshotChildren/getValue/getDepth already do
// per node, so a concurrent Put or Remove elsewhere may be reflected
// partially in the result; callers wanting a frozen view should quiesce
// writers first.
func (s *Store[V]) Stats() Stats {
	var st Stats
	st.MaxDepth = s.root.getDepth()
	var walk func(n *node[V])
	walk = func(n *node[V]) {
		st.Nodes++
		if n.completes() {
			st.Keys++
		}
		for _, c := range n.snapshotChildren() {
			walk(c)
		}
	}
	walk(s.root)
	return st
}

// Len returns the number of keys currently stored.
func (s *Store[V]) Len() int {
	return s.Stats().Keys
}

// isPrefixOf reports whether a is a prefix of b (byte-wise, valid on UTF-8
// boundaries because a and b only ever diverge at a rune boundary in this
// package's call sites).
func isPrefixOf(a, b string) bool {
	return len(a) <= len(b) && b[:len(a)] == a
}

// commonPrefix returns the longest common prefix of a and b, aligned on
// rune boundaries.
func commonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	// i may have landed mid-rune if a and b diverge within a multi-byte
	// rune; back off to the last rune boundary both strings agree on.
	for i > 0 && !isRuneBoundary(a, i) {
		i--
	}
	return a[:i]
}

func isRuneBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	return s[i]&0xC0 != 0x80
}
