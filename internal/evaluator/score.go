package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/besthand/internal/deck"
)

// Category is the class of a five card hand, weakest first
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// two pair carries both pairs plus all five ranks
const maxTiebreaks = 7

// Score is the comparison key of a five card hand: the category followed by
// tiebreak ranks. Hands of the same category always populate the same number
// of tiebreaks, so Score values are comparable with ==.
type Score struct {
	Category  Category
	tiebreaks [maxTiebreaks]deck.Rank
	n         int
}

func newScore(category Category, tiebreaks ...deck.Rank) Score {
	s := Score{Category: category, n: len(tiebreaks)}
	copy(s.tiebreaks[:], tiebreaks)
	return s
}

// Tiebreaks returns the populated tiebreak ranks in comparison order
func (s Score) Tiebreaks() []deck.Rank {
	out := make([]deck.Rank, s.n)
	copy(out, s.tiebreaks[:s.n])
	return out
}

// Compare returns -1 if s is weaker than other, 0 if equal, 1 if s is stronger
func (s Score) Compare(other Score) int {
	if s.Category != other.Category {
		if s.Category < other.Category {
			return -1
		}
		return 1
	}

	for i := 0; i < s.n && i < other.n; i++ {
		if s.tiebreaks[i] < other.tiebreaks[i] {
			return -1
		}
		if s.tiebreaks[i] > other.tiebreaks[i] {
			return 1
		}
	}
	return 0
}

// Beats returns true if s is strictly stronger than other
func (s Score) Beats(other Score) bool {
	return s.Compare(other) > 0
}

// String returns the category with its tiebreaks, e.g. "Full House (T 8)"
func (s Score) String() string {
	parts := make([]string, s.n)
	for i, r := range s.tiebreaks[:s.n] {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s (%s)", s.Category, strings.Join(parts, " "))
}

// RankHand scores a five card hand. Categories are checked strongest first
// and the first match wins.
func RankHand(hand []deck.Card) Score {
	ranks := RanksDesc(hand)
	straight := IsStraight(ranks)
	flush := IsFlush(hand)
	quads, hasQuads := KindOf(4, ranks)
	trips, hasTrips := KindOf(3, ranks)
	pair, hasPair := KindOf(2, ranks)

	switch {
	case straight && flush:
		return newScore(StraightFlush, ranks[0])
	case hasQuads:
		kicker, _ := KindOf(1, ranks)
		return newScore(FourOfAKind, quads, kicker)
	case hasTrips && hasPair:
		return newScore(FullHouse, trips, pair)
	case flush:
		return newScore(Flush, ranks...)
	case straight:
		return newScore(Straight, ranks[0])
	case hasTrips:
		return newScore(ThreeOfAKind, append([]deck.Rank{trips}, ranks...)...)
	}

	if high, low, ok := TwoPairs(ranks); ok {
		return newScore(TwoPair, append([]deck.Rank{high, low}, ranks...)...)
	}
	if hasPair {
		return newScore(OnePair, append([]deck.Rank{pair}, ranks...)...)
	}
	return newScore(HighCard, ranks...)
}
