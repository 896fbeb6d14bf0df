package trie

import "fmt"

// MatchingStrategy selects how MatchBySubstringFuzzy treats the query's
// position within a stored sequence and what kinds of errors it tolerates.
type MatchingStrategy int

const (
	// Liberal matches the query anywhere in any stored sequence with no
	// positional constraint.
	Liberal MatchingStrategy = iota
	// MatchPrefix requires the first matched character to be at the start
	// of a word (root edge or immediately after a word separator).
	MatchPrefix
	// AnchorToPrefix is MatchPrefix but permits up to tolerance leading
	// characters of the word before the first match, charged as errors.
	// Also known as FuzzyPrefix.
	AnchorToPrefix
	// FuzzyPostfix permits missing trailing characters in the query
	// relative to the stored sequence; it only allows errors once the
	// minimum required number of matches has been reached.
	FuzzyPostfix
	// Typo permits character substitutions, tracking the substituted pair
	// so a later transposed reversal resolves without an extra charge.
	Typo
	// Swap is Typo but explicitly hunts for transposed adjacent
	// characters, and may hold more than one pending swap at a time.
	Swap
	// Wildcard treats '*' in the query as matching any single character;
	// no other errors are permitted unless combined with tolerance.
	Wildcard
)

// FuzzyPrefix is the commonly used alternate name for AnchorToPrefix.
const FuzzyPrefix = AnchorToPrefix

func (m MatchingStrategy) String() string {
	switch m {
	case Liberal:
		return "LIBERAL"
	case MatchPrefix:
		return "MATCH_PREFIX"
	case AnchorToPrefix:
		return "ANCHOR_TO_PREFIX"
	case FuzzyPostfix:
		return "FUZZY_POSTFIX"
	case Typo:
		return "TYPO"
	case Swap:
		return "SWAP"
	case Wildcard:
		return "WILDCARD"
	default:
		return fmt.Sprintf("MatchingStrategy(%d)", int(m))
	}
}

func (m MatchingStrategy) valid() bool {
	return m >= Liberal && m <= Wildcard
}
