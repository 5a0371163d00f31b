// Package validate checks input hands before they reach the evaluator,
// which assumes well formed input and does no checking of its own.
package validate

import (
	"errors"
	"fmt"

	"github.com/lox/besthand/internal/deck"
)

var (
	ErrHandSize         = errors.New("wrong number of cards")
	ErrDuplicateCard    = errors.New("duplicate card")
	ErrDuplicateJoker   = errors.New("duplicate joker")
	ErrJokersNotAllowed = errors.New("jokers not allowed")
)

// DefaultHandSize is the number of tokens in an input hand
const DefaultHandSize = 7

// Options controls what Hand accepts
type Options struct {
	// Size is the required token count (0 means DefaultHandSize)
	Size int

	// AllowJokers permits ?B and ?R tokens, at most one of each
	AllowJokers bool
}

// Hand returns an error wrapping one of the package sentinels if tokens is
// not a valid input hand.
func Hand(tokens []deck.Token, opts Options) error {
	size := opts.Size
	if size == 0 {
		size = DefaultHandSize
	}
	if len(tokens) != size {
		return fmt.Errorf("%w: want %d, got %d", ErrHandSize, size, len(tokens))
	}

	seenCards := make(map[deck.Card]bool, len(tokens))
	seenJokers := make(map[deck.Color]bool, 2)
	for _, t := range tokens {
		if t.IsJoker {
			if !opts.AllowJokers {
				return fmt.Errorf("%w: %s", ErrJokersNotAllowed, t)
			}
			if seenJokers[t.Joker.Color] {
				return fmt.Errorf("%w: %s", ErrDuplicateJoker, t)
			}
			seenJokers[t.Joker.Color] = true
			continue
		}
		if seenCards[t.Card] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, t)
		}
		seenCards[t.Card] = true
	}
	return nil
}
