package evaluator

import (
	"github.com/lox/besthand/internal/deck"
)

// Expand resolves every joker in hand into each concrete card of its color
// that is not already held. The result is the cartesian product over joker
// positions, built breadth first; card positions are preserved. A hand
// without jokers expands to itself.
func Expand(hand []deck.Token) [][]deck.Card {
	return expand(hand, hand)
}

// expand resolves hand while treating every card in held as unavailable.
func expand(hand, held []deck.Token) [][]deck.Card {
	taken := make(map[deck.Card]bool, len(held))
	for _, t := range held {
		if !t.IsJoker {
			taken[t.Card] = true
		}
	}

	partial := [][]deck.Card{make([]deck.Card, 0, len(hand))}
	for _, t := range hand {
		if !t.IsJoker {
			for i := range partial {
				partial[i] = append(partial[i], t.Card)
			}
			continue
		}

		subs := t.Joker.Substitutes()
		next := make([][]deck.Card, 0, len(partial)*len(subs))
		for _, p := range partial {
			for _, sub := range subs {
				if taken[sub] || containsCard(p, sub) {
					continue
				}
				resolved := make([]deck.Card, len(p), len(hand))
				copy(resolved, p)
				next = append(next, append(resolved, sub))
			}
		}
		partial = next
	}
	return partial
}

// BestWildHand returns the strongest concrete five card hand that can be
// made from tokens, where each joker becomes any card of its color not
// already in tokens. Ties keep the first candidate in combination order,
// then expansion order.
func BestWildHand(tokens []deck.Token) ([]deck.Card, Score) {
	var (
		best      []deck.Card
		bestScore Score
	)
	sub := make([]deck.Token, HandSize)
	forEachCombination(len(tokens), HandSize, func(idx []int) {
		for i, j := range idx {
			sub[i] = tokens[j]
		}
		for _, hand := range expand(sub, tokens) {
			score := RankHand(hand)
			if best == nil || score.Beats(bestScore) {
				best = hand
				bestScore = score
			}
		}
	})
	return best, bestScore
}

func containsCard(cards []deck.Card, card deck.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
