// internal/uno/deck_test.go
package uno

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)

	type face struct {
		t CardType
		c Color
	}
	counts := make(map[face]int)
	ids := make(map[uuid.UUID]bool)
	for _, card := range deck {
		counts[face{card.Type, card.Color}]++
		require.False(t, ids[card.ID], "duplicate card id %s", card.ID)
		ids[card.ID] = true
	}

	for _, color := range Colors {
		assert.Equal(t, 1, counts[face{TypeZero, color}], "one 0 per color")
		for _, nt := range NumberTypes[1:] {
			assert.Equal(t, 2, counts[face{nt, color}], "two %s per color", nt)
		}
		for _, at := range ActionTypes {
			assert.Equal(t, 2, counts[face{at, color}], "two %s per color", at)
		}
	}
	assert.Equal(t, 4, counts[face{TypeWild, ColorNone}])
	assert.Equal(t, 4, counts[face{TypeWildDraw4, ColorNone}])
}

func TestShuffleDeckDoesNotMutate(t *testing.T) {
	deck := NewDeck()
	original := make([]Card, len(deck))
	copy(original, deck)

	rng := rand.New(rand.NewSource(42))
	shuffled := ShuffleDeck(deck, rng)

	assert.Equal(t, original, deck, "input deck must not be mutated")
	require.Len(t, shuffled, len(deck))

	// Same multiset of ids either way.
	ids := make(map[uuid.UUID]bool)
	for _, c := range deck {
		ids[c.ID] = true
	}
	for _, c := range shuffled {
		assert.True(t, ids[c.ID], "shuffled deck contains foreign card %s", c.ID)
	}
}

func TestDealCards(t *testing.T) {
	deck := NewDeck()

	dealt, remaining := DealCards(deck, 7)
	require.Len(t, dealt, 7)
	require.Len(t, remaining, len(deck)-7)
	assert.Equal(t, deck[:7], dealt, "deals off the front")
	assert.Equal(t, deck[7:], remaining)
}

func TestDealCardsShortDeck(t *testing.T) {
	deck := NewDeck()[:3]

	dealt, remaining := DealCards(deck, 5)
	assert.Len(t, dealt, 3, "deals what exists when asked for more")
	assert.Empty(t, remaining)
}

func TestStartingCardSkipsWildsAndActions(t *testing.T) {
	deck := []Card{
		NewCard(TypeWild, ColorNone),
		NewCard(TypeSkip, ColorRed),
		NewCard(TypeDraw2, ColorBlue),
		NewCard(TypeFive, ColorGreen),
		NewCard(TypeNine, ColorYellow),
	}

	rng := rand.New(rand.NewSource(1))
	start, remaining := StartingCard(deck, rng)

	assert.Equal(t, TypeFive, start.Type)
	assert.Equal(t, ColorGreen, start.Color)
	require.Len(t, remaining, 4)
	// Order of the remaining cards is preserved.
	assert.Equal(t, deck[0].ID, remaining[0].ID)
	assert.Equal(t, deck[1].ID, remaining[1].ID)
	assert.Equal(t, deck[2].ID, remaining[2].ID)
	assert.Equal(t, deck[4].ID, remaining[3].ID)
}

func TestStartingCardFindsSoleNumber(t *testing.T) {
	deck := []Card{
		NewCard(TypeWild, ColorNone),
		NewCard(TypeWildDraw4, ColorNone),
		NewCard(TypeThree, ColorRed),
	}

	rng := rand.New(rand.NewSource(7))
	start, remaining := StartingCard(deck, rng)
	assert.Equal(t, TypeThree, start.Type)
	assert.Len(t, remaining, 2)
}
