package evaluator

import (
	"github.com/lox/besthand/internal/deck"
)

// HandSize is the number of cards in a scored hand
const HandSize = 5

// forEachCombination calls fn with every k-subset of 0..n-1 in lexicographic
// order. The idx slice is reused between calls.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k > n || k <= 0 {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)

		// Find the rightmost index that can still move right
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Combinations returns every k-subset of 0..n-1 in lexicographic order
func Combinations(n, k int) [][]int {
	var out [][]int
	forEachCombination(n, k, func(idx []int) {
		out = append(out, append([]int(nil), idx...))
	})
	return out
}

// BestHand returns the strongest five card subset of cards along with its
// score. Ties keep the first subset in combination order. The input is not
// modified.
func BestHand(cards []deck.Card) ([]deck.Card, Score) {
	var (
		best      []deck.Card
		bestScore Score
	)
	hand := make([]deck.Card, HandSize)
	forEachCombination(len(cards), HandSize, func(idx []int) {
		for i, j := range idx {
			hand[i] = cards[j]
		}
		score := RankHand(hand)
		if best == nil || score.Beats(bestScore) {
			best = append(best[:0], hand...)
			bestScore = score
		}
	})
	return best, bestScore
}

// Evaluate picks BestHand or BestWildHand depending on whether the tokens
// contain a joker.
func Evaluate(tokens []deck.Token) ([]deck.Card, Score) {
	if deck.HasJoker(tokens) {
		return BestWildHand(tokens)
	}
	return BestHand(deck.Cards(tokens))
}
