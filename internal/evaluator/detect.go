package evaluator

import (
	"sort"

	"github.com/lox/besthand/internal/deck"
)

// RanksDesc returns the ranks of the hand sorted from high to low, keeping duplicates
func RanksDesc(hand []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, len(hand))
	for i, card := range hand {
		ranks[i] = card.Rank
	}
	sort.Sort(ranksByDesc(ranks))
	return ranks
}

// IsFlush returns true if every card shares one suit
func IsFlush(hand []deck.Card) bool {
	for _, card := range hand[1:] {
		if card.Suit != hand[0].Suit {
			return false
		}
	}
	return true
}

// IsStraight reports whether descending ranks step down by exactly one.
// The ace only plays high, so A-2-3-4-5 is not a straight.
func IsStraight(ranks []deck.Rank) bool {
	for i := 0; i+1 < len(ranks); i++ {
		if ranks[i]-ranks[i+1] != 1 {
			return false
		}
	}
	return true
}

// KindOf returns the highest rank that appears exactly n times.
// ok is false when no rank has that count.
func KindOf(n int, ranks []deck.Rank) (rank deck.Rank, ok bool) {
	for _, r := range ranks {
		if countRank(ranks, r) == n {
			return r, true
		}
	}
	return 0, false
}

// TwoPairs returns the two ranks that appear exactly twice, high first.
// Quads do not count as two pair.
func TwoPairs(ranks []deck.Rank) (high, low deck.Rank, ok bool) {
	var pairs []deck.Rank
	for _, r := range ranks {
		if countRank(ranks, r) != 2 {
			continue
		}
		if len(pairs) > 0 && pairs[len(pairs)-1] == r {
			continue
		}
		pairs = append(pairs, r)
	}
	if len(pairs) != 2 {
		return 0, 0, false
	}
	return pairs[0], pairs[1], true
}

func countRank(ranks []deck.Rank, rank deck.Rank) int {
	n := 0
	for _, r := range ranks {
		if r == rank {
			n++
		}
	}
	return n
}

// ranksByDesc sorts ranks in descending order
type ranksByDesc []deck.Rank

func (r ranksByDesc) Len() int           { return len(r) }
func (r ranksByDesc) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r ranksByDesc) Less(i, j int) bool { return r[i] > r[j] }
