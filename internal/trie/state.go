package trie

// searchContext is the immutable configuration shared by every state in one
// traversal: the query being matched, the error budget, and the strategy.
// It is passed by pointer to every state method rather than embedded in
// searchState, keeping states themselves small, cheaply-copied value types.
type searchContext struct {
	query     []rune
	tolerance int
	strategy  MatchingStrategy
}

// swapPair is an open (sourceChar, targetChar) obligation recorded under
// TYPO/SWAP: sourceChar is the query character present when the pair was
// opened, targetChar the stored character substituted in for it. The pair
// resolves when a later transition presents the reverse: a stored
// character equal to sourceChar against a query character equal to
// targetChar — i.e. a transposition.
type swapPair struct {
	sourceChar rune
	targetChar rune
}

// searchState is an immutable snapshot of one point in a fuzzy traversal.
// node/labelOffset together are the trie position: labelOffset is how many
// runes of node.label have been consumed, so a state can sit mid-edge on a
// compacted multi-character label without that label having to be a single
// child (see DESIGN.md).
type searchState[V any] struct {
	node        *node[V]
	labelOffset int
	sequence    []rune

	searchIndex     int
	numberOfMatches int
	numberOfErrors  int

	startMatchIndex int // -1 when unset
	endMatchIndex   int // -1 when unset

	pendingSwaps []swapPair

	isGatherState bool
}

func initialState[V any](root *node[V]) searchState[V] {
	return searchState[V]{
		node:            root,
		labelOffset:     0,
		startMatchIndex: -1,
		endMatchIndex:   -1,
	}
}

// atBoundary reports whether the state sits exactly at a node, having
// consumed that node's whole edge label.
func (st *searchState[V]) atBoundary() bool {
	return st.labelOffset == runeLen(st.node.getLabel())
}

func (st *searchState[V]) completesHere() bool {
	return st.atBoundary() && st.node.completes()
}

// remainingDepth is how many more characters are reachable strictly below
// this state's position: what's left of the current edge, plus the
// subtree depth cached below the node that edge leads to.
func (st *searchState[V]) remainingDepth() int {
	return runeLen(st.node.getLabel()) - st.labelOffset + st.node.getDepth()
}

func (st *searchState[V]) effectiveErrors(ctx *searchContext) int {
	unmatched := len(ctx.query) - st.searchIndex
	if unmatched < 0 {
		unmatched = 0
	}
	return st.numberOfErrors + unmatched
}

// matches is the acceptance predicate: a state may emit a result once it
// has started and ended a match window, matched enough of the query, and
// stays within the error budget with no swap left unresolved.
func (st *searchState[V]) matches(ctx *searchContext) bool {
	if st.startMatchIndex < 0 || st.endMatchIndex < 0 {
		return false
	}
	if st.numberOfMatches < len(ctx.query)-ctx.tolerance {
		return false
	}
	if st.effectiveErrors(ctx) > ctx.tolerance {
		return false
	}
	return len(st.pendingSwaps) == 0
}

// hasSearchResult is true iff this state both accepts and sits on a
// terminal node.
func (st *searchState[V]) hasSearchResult(ctx *searchContext) bool {
	return st.matches(ctx) && st.completesHere()
}

// charTransition is one single-character step out of a state: either
// deeper into the current node's own (possibly multi-rune) label, or into
// a real child once the label is exhausted.
type charTransition[V any] struct {
	char        rune
	newNode     *node[V]
	newOffset   int
	newRemDepth int
}

func (st *searchState[V]) transitions() []charTransition[V] {
	if !st.atBoundary() {
		label := st.node.getLabel()
		r := []rune(label)[st.labelOffset]
		newOff := st.labelOffset + 1
		return []charTransition[V]{{
			char:        r,
			newNode:     st.node,
			newOffset:   newOff,
			newRemDepth: runeLen(label) - newOff + st.node.getDepth(),
		}}
	}
	children := st.node.snapshotChildren()
	out := make([]charTransition[V], 0, len(children))
	for _, c := range children {
		cLabel := c.getLabel()
		out = append(out, charTransition[V]{
			char:        firstRune(cLabel),
			newNode:     c,
			newOffset:   1,
			newRemDepth: runeLen(cLabel) - 1 + c.getDepth(),
		})
	}
	return out
}

func appendRune(seq []rune, r rune) []rune {
	out := make([]rune, len(seq)+1)
	copy(out, seq)
	out[len(seq)] = r
	return out
}

func copySwaps(s []swapPair) []swapPair {
	if len(s) == 0 {
		return nil
	}
	out := make([]swapPair, len(s))
	copy(out, s)
	return out
}

// expand produces every successor of st for one step of the traversal,
// trying match, then error, then reset, then gather, for each possible
// character transition out of st.
func expand[V any](ctx *searchContext, st searchState[V]) []searchState[V] {
	var out []searchState[V]
	need := len(ctx.query) - st.numberOfMatches - ctx.tolerance

	for _, t := range st.transitions() {
		// t.char itself is one of the characters still available to match.
		if t.newRemDepth+1 < need {
			continue
		}

		if st.isGatherState {
			out = append(out, continueGather(st, t))
			continue
		}

		if next, ok := tryMatch(ctx, st, t); ok {
			out = append(out, next)
			continue
		}
		if errs, ok := tryError(ctx, st, t); ok {
			out = append(out, errs...)
			continue
		}
		if !st.matches(ctx) {
			out = append(out, resetAt(st, t))
			continue
		}

		gathered := continueGather(st, t)
		gathered.isGatherState = true
		out = append(out, gathered)
		if st.numberOfMatches != len(ctx.query) {
			out = append(out, resetAt(st, t))
		}
	}
	return out
}

func continueGather[V any](st searchState[V], t charTransition[V]) searchState[V] {
	next := st
	next.node = t.newNode
	next.labelOffset = t.newOffset
	next.sequence = appendRune(st.sequence, t.char)
	return next
}

func resetAt[V any](st searchState[V], t charTransition[V]) searchState[V] {
	return searchState[V]{
		node:            t.newNode,
		labelOffset:     t.newOffset,
		sequence:        appendRune(st.sequence, t.char),
		startMatchIndex: -1,
		endMatchIndex:   -1,
	}
}

func tryMatch[V any](ctx *searchContext, st searchState[V], t charTransition[V]) (searchState[V], bool) {
	if st.searchIndex >= len(ctx.query) {
		return searchState[V]{}, false
	}
	qc := ctx.query[st.searchIndex]
	charMatches := qc == t.char || (ctx.strategy == Wildcard && qc == '*')
	if !charMatches {
		return searchState[V]{}, false
	}
	switch ctx.strategy {
	case MatchPrefix:
		if !matchPrefixPrecondition(st) {
			return searchState[V]{}, false
		}
	case AnchorToPrefix:
		if !anchorToPrefixPrecondition(st) {
			return searchState[V]{}, false
		}
	}

	next := st
	next.node = t.newNode
	next.labelOffset = t.newOffset
	next.sequence = appendRune(st.sequence, t.char)
	next.searchIndex = st.searchIndex + 1
	next.numberOfMatches = st.numberOfMatches + 1
	if next.startMatchIndex < 0 {
		next.startMatchIndex = len(st.sequence)
	}
	next.endMatchIndex = len(next.sequence) - 1
	next.isGatherState = false
	return next, true
}

func matchPrefixPrecondition[V any](st searchState[V]) bool {
	return st.numberOfMatches > 0 || atWordStart(st.sequence, len(st.sequence))
}

func anchorToPrefixPrecondition[V any](st searchState[V]) bool {
	if st.numberOfMatches > 0 {
		return true
	}
	return leadingSkipDistance(st.sequence, len(st.sequence)) <= st.numberOfErrors
}

func leadingSkipDistance(seq []rune, pos int) int {
	sep := lastSeparatorBefore(seq, pos)
	return pos - (sep + 1)
}

// tryError attempts the error category for one transition: swap
// completion if an open pair resolves, otherwise up to three (or, for
// TYPO/SWAP, exactly one) fresh error successors.
func tryError[V any](ctx *searchContext, st searchState[V], t charTransition[V]) ([]searchState[V], bool) {
	if st.searchIndex >= len(ctx.query) {
		return nil, false
	}
	if st.numberOfErrors >= ctx.tolerance {
		return nil, false
	}
	switch ctx.strategy {
	case FuzzyPostfix:
		if st.numberOfMatches < len(ctx.query)-ctx.tolerance {
			return nil, false
		}
	case AnchorToPrefix:
		if st.numberOfMatches == 0 && leadingSkipDistance(st.sequence, len(st.sequence)) > st.numberOfErrors {
			return nil, false
		}
	default:
		if st.numberOfMatches == 0 {
			return nil, false
		}
	}

	qc := ctx.query[st.searchIndex]

	if resolved, ok := tryResolveSwap(st, t, qc); ok {
		return []searchState[V]{resolved}, true
	}

	switch ctx.strategy {
	case Typo, Swap:
		// TYPO keeps at most one pending swap open at a time; SWAP may
		// hold several while it hunts for a transposition.
		if ctx.strategy == Typo && len(st.pendingSwaps) > 0 {
			return nil, false
		}
		next := st
		next.node = t.newNode
		next.labelOffset = t.newOffset
		next.sequence = appendRune(st.sequence, t.char)
		next.searchIndex = st.searchIndex + 1
		next.numberOfErrors = st.numberOfErrors + 1
		next.pendingSwaps = append(copySwaps(st.pendingSwaps), swapPair{sourceChar: qc, targetChar: t.char})
		next.isGatherState = false
		return []searchState[V]{next}, true
	default:
		misspelling := st
		misspelling.node = t.newNode
		misspelling.labelOffset = t.newOffset
		misspelling.sequence = appendRune(st.sequence, t.char)
		misspelling.searchIndex = st.searchIndex + 1
		misspelling.numberOfErrors = st.numberOfErrors + 1
		misspelling.isGatherState = false

		missingInData := st
		missingInData.searchIndex = st.searchIndex + 1
		missingInData.numberOfErrors = st.numberOfErrors + 1
		missingInData.isGatherState = false

		missingInQuery := st
		missingInQuery.node = t.newNode
		missingInQuery.labelOffset = t.newOffset
		missingInQuery.sequence = appendRune(st.sequence, t.char)
		missingInQuery.numberOfErrors = st.numberOfErrors + 1
		missingInQuery.isGatherState = false

		return []searchState[V]{misspelling, missingInData, missingInQuery}, true
	}
}

func tryResolveSwap[V any](st searchState[V], t charTransition[V], queryChar rune) (searchState[V], bool) {
	for i, p := range st.pendingSwaps {
		if p.sourceChar == t.char && p.targetChar == queryChar {
			next := st
			next.node = t.newNode
			next.labelOffset = t.newOffset
			next.sequence = appendRune(st.sequence, t.char)
			next.searchIndex = st.searchIndex + 1
			next.numberOfMatches = st.numberOfMatches + 1
			if next.startMatchIndex < 0 {
				next.startMatchIndex = len(st.sequence)
			}
			next.endMatchIndex = len(next.sequence) - 1
			next.isGatherState = false

			remaining := make([]swapPair, 0, len(st.pendingSwaps)-1)
			remaining = append(remaining, st.pendingSwaps[:i]...)
			remaining = append(remaining, st.pendingSwaps[i+1:]...)
			next.pendingSwaps = remaining
			return next, true
		}
	}
	return searchState[V]{}, false
}
