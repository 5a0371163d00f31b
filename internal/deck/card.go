package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Color groups suits for joker substitution
type Color int

const (
	Black Color = iota
	Red
)

// String returns the joker letter for the color ("B" or "R")
func (c Color) String() string {
	switch c {
	case Black:
		return "B"
	case Red:
		return "R"
	default:
		return "?"
	}
}

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Spades
	Diamonds
	Hearts
)

// String returns the token letter of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Spades:
		return "S"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	default:
		return "?"
	}
}

// Color returns Black for clubs and spades, Red for hearts and diamonds
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank represents a card rank, 2 through 14 (ace high)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the token character of a rank
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character token of a card (e.g., "TC")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Color returns the color of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// ParseCard parses a two-character token such as "AS" or "tc".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want 2 characters, got %d", s, len(s))
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses whitespace separated card tokens. Jokers are rejected.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// SortCards orders cards by their token text
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].String() < cards[j].String()
	})
}

// FormatCards joins card tokens with single spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 's', 'S':
		return Spades, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
