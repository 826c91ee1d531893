// internal/uno/validation_test.go
package uno

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTypes = []CardType{
	TypeZero, TypeOne, TypeTwo, TypeThree, TypeFour, TypeFive,
	TypeSix, TypeSeven, TypeEight, TypeNine,
	TypeSkip, TypeReverse, TypeDraw2, TypeWild, TypeWildDraw4,
}

// TestCanPlayCardExhaustive checks the legality predicate over every
// combination of card type and color against a fixed top card and active
// color: a card plays iff it is wild, matches the active color, or
// matches the top card's type.
func TestCanPlayCardExhaustive(t *testing.T) {
	top := NewCard(TypeSeven, ColorRed)
	currentColor := ColorRed

	cardColors := append([]Color{ColorNone}, Colors...)
	for _, ct := range allTypes {
		for _, cc := range cardColors {
			card := NewCard(ct, cc)
			got := CanPlayCard(card, top, currentColor)
			want := ct == TypeWild || ct == TypeWildDraw4 ||
				cc == currentColor || ct == top.Type
			assert.Equal(t, want, got, "type=%s color=%s", ct, cc)
		}
	}
}

func TestCanPlayCardActionKindAcrossColors(t *testing.T) {
	top := NewCard(TypeSkip, ColorBlue)
	assert.True(t, CanPlayCard(NewCard(TypeSkip, ColorGreen), top, ColorBlue),
		"same action kind matches across colors")
	assert.False(t, CanPlayCard(NewCard(TypeReverse, ColorGreen), top, ColorBlue))
}

func TestHasPlayableCard(t *testing.T) {
	top := NewCard(TypeTwo, ColorYellow)
	hand := []Card{
		NewCard(TypeFive, ColorRed),
		NewCard(TypeNine, ColorBlue),
	}
	assert.False(t, HasPlayableCard(hand, top, ColorYellow))

	hand = append(hand, NewCard(TypeTwo, ColorGreen))
	assert.True(t, HasPlayableCard(hand, top, ColorYellow), "rank match suffices")
}

func TestCanCallUno(t *testing.T) {
	hand := []Card{NewCard(TypeOne, ColorRed)}
	assert.False(t, CanCallUno(hand))
	hand = append(hand, NewCard(TypeTwo, ColorRed))
	assert.True(t, CanCallUno(hand))
	hand = append(hand, NewCard(TypeThree, ColorRed))
	assert.False(t, CanCallUno(hand))
}

func TestShouldHaveCalledUno(t *testing.T) {
	oneCard := []Card{NewCard(TypeOne, ColorRed)}
	assert.True(t, ShouldHaveCalledUno(oneCard, nil, "p1"))
	assert.False(t, ShouldHaveCalledUno(oneCard, []string{"p1"}, "p1"))
	assert.True(t, ShouldHaveCalledUno(oneCard, []string{"p2"}, "p1"))

	twoCards := append(oneCard, NewCard(TypeTwo, ColorRed))
	assert.False(t, ShouldHaveCalledUno(twoCards, nil, "p1"))
}

func TestIsPlayerTurn(t *testing.T) {
	state := GameState{
		Players: []Player{
			{ID: "a"}, {ID: "b"}, {ID: "c"},
		},
		CurrentPlayerIndex: 1,
	}
	assert.True(t, IsPlayerTurn(state, "b"))
	assert.False(t, IsPlayerTurn(state, "a"))
	assert.False(t, IsPlayerTurn(state, "missing"))
}

func TestFindCardInHand(t *testing.T) {
	// Two cards with identical faces; lookup must go by id.
	c1 := NewCard(TypeFive, ColorRed)
	c2 := NewCard(TypeFive, ColorRed)
	hand := []Card{c1, c2}

	found, ok := FindCardInHand(hand, c2.ID)
	require.True(t, ok)
	assert.Equal(t, c2.ID, found.ID)

	_, ok = FindCardInHand(hand, uuid.New())
	assert.False(t, ok)
}
