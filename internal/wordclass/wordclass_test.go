package wordclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSeparator(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"space", ' ', true},
		{"tab", '\t', true},
		{"newline", '\n', true},
		{"comma", ',', true},
		{"period", '.', true},
		{"hyphen", '-', true},
		{"lowercase letter", 'a', false},
		{"digit", '5', false},
		{"underscore", '_', true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSeparator(tt.r))
		})
	}
}

func TestLastSeparatorBefore(t *testing.T) {
	seq := []rune("the quick brown fox")

	tests := []struct {
		name         string
		endExclusive int
		want         int
	}{
		{"within first word", 2, -1},
		{"right after space", 4, 3},
		{"deep into third word", 15, 9},
		{"empty sequence", 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastSeparatorBefore(seq, tt.endExclusive))
		})
	}

	assert.Equal(t, -1, LastSeparatorBefore(nil, 0))
}

func TestFirstSeparatorFrom(t *testing.T) {
	seq := []rune("the quick brown fox")

	tests := []struct {
		name          string
		startInclusive int
		want          int
	}{
		{"from word start", 0, 3},
		{"from mid second word", 6, 9},
		{"from last word", 16, len(seq)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstSeparatorFrom(seq, tt.startInclusive))
		})
	}
}

func TestAtWordStart(t *testing.T) {
	seq := []rune("the quick")

	assert.True(t, AtWordStart(seq, 0))
	assert.False(t, AtWordStart(seq, 1))
	assert.True(t, AtWordStart(seq, 4))
	assert.False(t, AtWordStart(seq, 5))
}
