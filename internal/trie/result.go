package trie

import "github.com/google/uuid"

// ResultRecord is what a search hands back to the caller. Ranking,
// cross-call deduping, and display formatting are left to an external
// layer; this struct carries exactly the metadata that layer needs.
type ResultRecord[V any] struct {
	// ID is an opaque, stable identity for this record, independent of the
	// driver's own (node, sequence, window) dedup key — useful once
	// results cross a boundary (channel, RPC) where pointer identity is
	// unavailable to the caller.
	ID uuid.UUID

	Sequence         string
	Value            V
	MatchedSubstring string
	MatchedWord      string

	NumberOfMatches int
	NumberOfErrors  int
	PrefixDistance  int

	MatchedWholeSequence bool
	MatchedWholeWord     bool
}

// buildResult materializes a ResultRecord from an accepted, terminal
// search state. Callers must have already confirmed hasSearchResult.
func buildResult[V any](ctx *searchContext, st *searchState[V]) ResultRecord[V] {
	value, _ := st.node.getValue()

	matchedSubstring := string(st.sequence[st.startMatchIndex : st.endMatchIndex+1])

	wordStart := 0
	if sep := lastSeparatorBefore(st.sequence, st.startMatchIndex); sep >= 0 {
		wordStart = sep + 1
	}
	wordEnd := len(st.sequence)
	if sep := firstSeparatorFrom(st.sequence, st.endMatchIndex+1); sep < len(st.sequence) {
		wordEnd = sep
	}
	matchedWord := string(st.sequence[wordStart:wordEnd])

	effErrs := st.effectiveErrors(ctx)
	sequence := string(st.sequence)

	return ResultRecord[V]{
		ID:                   uuid.New(),
		Sequence:             sequence,
		Value:                value,
		MatchedSubstring:     matchedSubstring,
		MatchedWord:          matchedWord,
		NumberOfMatches:      st.numberOfMatches,
		NumberOfErrors:       effErrs,
		PrefixDistance:       st.startMatchIndex - wordStart,
		MatchedWholeSequence: effErrs == 0 && matchedSubstring == sequence,
		MatchedWholeWord:     effErrs == 0 && matchedSubstring == matchedWord,
	}
}
