// internal/uno/validation.go
package uno

import "github.com/google/uuid"

// CanPlayCard reports whether card may be played on topCard given the
// active color. Wilds always play; anything else must match the active
// color or the top card's type (a type match covers same-rank numbers and
// same action kind across colors).
func CanPlayCard(card, topCard Card, currentColor Color) bool {
	if card.IsWild() {
		return true
	}
	return card.Color == currentColor || card.Type == topCard.Type
}

// HasPlayableCard reports whether any card in hand is playable.
func HasPlayableCard(hand []Card, topCard Card, currentColor Color) bool {
	for _, c := range hand {
		if CanPlayCard(c, topCard, currentColor) {
			return true
		}
	}
	return false
}

// CanCallUno reports whether the hand is at the conventional call point:
// exactly two cards, i.e. about to play down to one.
func CanCallUno(hand []Card) bool {
	return len(hand) == 2
}

// ShouldHaveCalledUno reports whether the player is down to one card
// without having called UNO, making them challengeable.
func ShouldHaveCalledUno(hand []Card, calledUno []string, playerID string) bool {
	if len(hand) != 1 {
		return false
	}
	for _, id := range calledUno {
		if id == playerID {
			return false
		}
	}
	return true
}

// IsPlayerTurn reports whether playerID holds the current seat.
func IsPlayerTurn(state GameState, playerID string) bool {
	if state.CurrentPlayerIndex < 0 || state.CurrentPlayerIndex >= len(state.Players) {
		return false
	}
	return state.Players[state.CurrentPlayerIndex].ID == playerID
}

// FindCardInHand looks up a card by id. Lookup is by id rather than by
// face because two cards can share type and color.
func FindCardInHand(hand []Card, cardID uuid.UUID) (Card, bool) {
	for _, c := range hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}
