// internal/uno/deck.go
package uno

import "math/rand"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 108

// NewDeck builds the standard 108-card deck: per color one "0", two each
// of "1"-"9" and two each of skip/reverse/draw2, plus four wilds and four
// wild draw-fours. Composition is fixed; only the card ids are fresh.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, color := range Colors {
		deck = append(deck, NewCard(TypeZero, color))
		for _, t := range NumberTypes[1:] {
			deck = append(deck, NewCard(t, color))
			deck = append(deck, NewCard(t, color))
		}
		for _, t := range ActionTypes {
			deck = append(deck, NewCard(t, color))
			deck = append(deck, NewCard(t, color))
		}
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, NewCard(TypeWild, ColorNone))
		deck = append(deck, NewCard(TypeWildDraw4, ColorNone))
	}
	return deck
}

// ShuffleDeck returns a uniformly random permutation of deck without
// mutating its input.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// DealCards splits the front n cards off deck, returning the dealt cards
// and the remainder. If the deck holds fewer than n cards, everything it
// holds is dealt; replenishing the deck is the caller's concern.
func DealCards(deck []Card, n int) (dealt, remaining []Card) {
	if n > len(deck) {
		n = len(deck)
	}
	dealt = make([]Card, n)
	copy(dealt, deck[:n])
	remaining = make([]Card, len(deck)-n)
	copy(remaining, deck[n:])
	return dealt, remaining
}

// StartingCard picks the first plain numbered card to seed the discard
// pile, returning it together with the deck minus that one card (order of
// the rest preserved). If the deck front-loads nothing but wilds and
// action cards all the way down, the whole deck is reshuffled and the
// scan retried; 60 of the 108 cards qualify, so this terminates.
func StartingCard(deck []Card, rng *rand.Rand) (Card, []Card) {
	for {
		for i, c := range deck {
			if c.Color != ColorNone && c.IsNumber() {
				remaining := make([]Card, 0, len(deck)-1)
				remaining = append(remaining, deck[:i]...)
				remaining = append(remaining, deck[i+1:]...)
				return c, remaining
			}
		}
		deck = ShuffleDeck(deck, rng)
	}
}
