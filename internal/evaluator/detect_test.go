package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/besthand/internal/deck"
)

func ranks(rs ...deck.Rank) []deck.Rank { return rs }

func TestRanksDesc(t *testing.T) {
	hand := deck.MustParseCards("7C AC 9C JC 7D")
	assert.Equal(t, ranks(deck.Ace, deck.Jack, deck.Nine, deck.Seven, deck.Seven), RanksDesc(hand))
	assert.Equal(t, "7C AC 9C JC 7D", deck.FormatCards(hand), "input must not be reordered")
}

func TestIsFlush(t *testing.T) {
	assert.True(t, IsFlush(deck.MustParseCards("7C AC 9C JC TC")))
	assert.False(t, IsFlush(deck.MustParseCards("7C AC 9C JC TD")))
}

func TestIsStraight(t *testing.T) {
	tests := []struct {
		name  string
		ranks []deck.Rank
		want  bool
	}{
		{"broadway", ranks(14, 13, 12, 11, 10), true},
		{"six high", ranks(6, 5, 4, 3, 2), true},
		{"gap", ranks(14, 13, 12, 11, 9), false},
		{"pair", ranks(10, 9, 9, 8, 7), false},
		{"wheel is not a straight", ranks(14, 5, 4, 3, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStraight(tt.ranks))
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		ranks  []deck.Rank
		want   deck.Rank
		wantOK bool
	}{
		{"quads", 4, ranks(11, 11, 11, 11, 7), 11, true},
		{"quad kicker", 1, ranks(11, 11, 11, 11, 7), 7, true},
		{"trips", 3, ranks(9, 9, 9, 5, 5), 9, true},
		{"pair in full house", 2, ranks(9, 9, 9, 5, 5), 5, true},
		{"highest pair first", 2, ranks(13, 13, 4, 4, 2), 13, true},
		{"quads are not a pair", 2, ranks(8, 8, 8, 8, 3), 0, false},
		{"none", 3, ranks(14, 10, 8, 6, 2), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KindOf(tt.n, tt.ranks)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTwoPairs(t *testing.T) {
	high, low, ok := TwoPairs(ranks(11, 11, 9, 7, 7))
	assert.True(t, ok)
	assert.Equal(t, deck.Jack, high)
	assert.Equal(t, deck.Seven, low)

	_, _, ok = TwoPairs(ranks(11, 11, 9, 7, 6))
	assert.False(t, ok, "one pair")

	_, _, ok = TwoPairs(ranks(7, 7, 7, 7, 9))
	assert.False(t, ok, "quads")

	_, _, ok = TwoPairs(ranks(9, 9, 9, 7, 7))
	assert.False(t, ok, "full house has a single pair")
}
