package trie

import "github.com/kumarlokesh/triex/internal/wordclass"

func lastSeparatorBefore(seq []rune, endExclusive int) int {
	return wordclass.LastSeparatorBefore(seq, endExclusive)
}

func firstSeparatorFrom(seq []rune, startInclusive int) int {
	return wordclass.FirstSeparatorFrom(seq, startInclusive)
}

func atWordStart(seq []rune, i int) bool {
	return wordclass.AtWordStart(seq, i)
}
