package deck

import (
	"fmt"
	"strings"
)

// Joker is a wild card that stands in for any card of its color
type Joker struct {
	Color Color
}

// Jokers available in the deck
var (
	BlackJoker = Joker{Color: Black}
	RedJoker   = Joker{Color: Red}
)

// String returns "?B" or "?R"
func (j Joker) String() string {
	return "?" + j.Color.String()
}

// Substitutes returns every card the joker may become, in Standard order
func (j Joker) Substitutes() []Card {
	return OfColor(j.Color)
}

// Token is one entry of an input hand: either a concrete card or a joker.
type Token struct {
	Card    Card
	Joker   Joker
	IsJoker bool
}

// CardToken wraps a concrete card
func CardToken(c Card) Token {
	return Token{Card: c}
}

// JokerToken wraps a joker
func JokerToken(j Joker) Token {
	return Token{Joker: j, IsJoker: true}
}

// String returns the token text
func (t Token) String() string {
	if t.IsJoker {
		return t.Joker.String()
	}
	return t.Card.String()
}

// ParseToken parses a card token or one of the joker tokens "?B" and "?R".
func ParseToken(s string) (Token, error) {
	if len(s) == 2 && s[0] == '?' {
		switch s[1] {
		case 'B', 'b':
			return JokerToken(BlackJoker), nil
		case 'R', 'r':
			return JokerToken(RedJoker), nil
		default:
			return Token{}, fmt.Errorf("invalid joker %q: unknown color '%c'", s, s[1])
		}
	}

	card, err := ParseCard(s)
	if err != nil {
		return Token{}, err
	}
	return CardToken(card), nil
}

// ParseTokens parses whitespace separated tokens
func ParseTokens(s string) ([]Token, error) {
	return ParseTokenList(strings.Fields(s))
}

// ParseTokenList parses already split tokens, as received from a command line
func ParseTokenList(fields []string) ([]Token, error) {
	tokens := make([]Token, 0, len(fields))
	for i, field := range fields {
		token, err := ParseToken(field)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// MustParseTokens parses tokens and panics on error (for tests)
func MustParseTokens(s string) []Token {
	tokens, err := ParseTokens(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse tokens '%s': %v", s, err))
	}
	return tokens
}

// Tokens wraps concrete cards as tokens
func Tokens(cards []Card) []Token {
	tokens := make([]Token, len(cards))
	for i, card := range cards {
		tokens[i] = CardToken(card)
	}
	return tokens
}

// HasJoker reports whether any token is a joker
func HasJoker(tokens []Token) bool {
	for _, t := range tokens {
		if t.IsJoker {
			return true
		}
	}
	return false
}

// Cards returns the concrete cards of the tokens, skipping jokers
func Cards(tokens []Token) []Card {
	cards := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsJoker {
			cards = append(cards, t.Card)
		}
	}
	return cards
}
