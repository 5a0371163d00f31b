package deck

// Standard returns the 52 cards ordered by suit (clubs, spades, diamonds,
// hearts) and then by rank from two to ace.
func Standard() []Card {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Hearts; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// OfColor returns the 26 cards whose suit has the given color, in
// Standard order.
func OfColor(color Color) []Card {
	cards := make([]Card, 0, 26)
	for _, card := range Standard() {
		if card.Color() == color {
			cards = append(cards, card)
		}
	}
	return cards
}
