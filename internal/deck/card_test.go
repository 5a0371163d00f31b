package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "straight flush",
			input: "6C 7C 8C 9C TC",
			expected: []Card{
				{Suit: Clubs, Rank: Six},
				{Suit: Clubs, Rank: Seven},
				{Suit: Clubs, Rank: Eight},
				{Suit: Clubs, Rank: Nine},
				{Suit: Clubs, Rank: Ten},
			},
		},
		{
			name:  "face cards",
			input: "AS KH QD JC",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:  "case insensitive",
			input: "as kh 2d",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Two},
			},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
		{name: "invalid rank", input: "XS KS", wantErr: true},
		{name: "invalid suit", input: "AS KX", wantErr: true},
		{name: "ten as digits", input: "10C", wantErr: true},
		{name: "single character", input: "A", wantErr: true},
		{name: "joker is not a card", input: "AS ?B", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCardString(t *testing.T) {
	for _, card := range Standard() {
		parsed, err := ParseCard(card.String())
		require.NoError(t, err)
		assert.Equal(t, card, parsed)
	}
	assert.Equal(t, "TC", NewCard(Ten, Clubs).String())
	assert.Equal(t, "AH", NewCard(Ace, Hearts).String())
	assert.Equal(t, "2D", NewCard(Two, Diamonds).String())
}

func TestSuitColor(t *testing.T) {
	assert.Equal(t, Black, Clubs.Color())
	assert.Equal(t, Black, Spades.Color())
	assert.Equal(t, Red, Hearts.Color())
	assert.Equal(t, Red, Diamonds.Color())
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("AS KS")
	assert.Equal(t, []Card{{Suit: Spades, Rank: Ace}, {Suit: Spades, Rank: King}}, cards)

	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestSortCards(t *testing.T) {
	cards := MustParseCards("TD TC TH 7C 8S 8C")
	SortCards(cards)
	assert.Equal(t, "7C 8C 8S TC TD TH", FormatCards(cards))
}

func TestStandard(t *testing.T) {
	cards := Standard()
	require.Len(t, cards, 52)

	seen := make(map[Card]bool)
	for _, card := range cards {
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	assert.Equal(t, NewCard(Two, Clubs), cards[0])
	assert.Equal(t, NewCard(Ace, Hearts), cards[51])
}

func TestOfColor(t *testing.T) {
	for _, color := range []Color{Black, Red} {
		cards := OfColor(color)
		require.Len(t, cards, 26)
		for _, card := range cards {
			assert.Equal(t, color, card.Color(), card.String())
		}
	}
}
