// internal/uno/card.go
package uno

import "github.com/google/uuid"

// Color is the color of a card. ColorNone marks a wild card that has not
// been played yet; once played, the instance on the discard pile carries
// the chooser's color instead.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorNone   Color = "none"
)

// Colors lists the four playable colors in deck-construction order.
var Colors = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// CardType is a card face: the ten number ranks plus the action and wild kinds.
type CardType string

const (
	TypeZero  CardType = "0"
	TypeOne   CardType = "1"
	TypeTwo   CardType = "2"
	TypeThree CardType = "3"
	TypeFour  CardType = "4"
	TypeFive  CardType = "5"
	TypeSix   CardType = "6"
	TypeSeven CardType = "7"
	TypeEight CardType = "8"
	TypeNine  CardType = "9"

	TypeSkip      CardType = "skip"
	TypeReverse   CardType = "reverse"
	TypeDraw2     CardType = "draw2"
	TypeWild      CardType = "wild"
	TypeWildDraw4 CardType = "wild_draw4"
)

// NumberTypes lists the number ranks in order. Used for deck construction.
var NumberTypes = []CardType{
	TypeZero, TypeOne, TypeTwo, TypeThree, TypeFour,
	TypeFive, TypeSix, TypeSeven, TypeEight, TypeNine,
}

// ActionTypes lists the colored action kinds.
var ActionTypes = []CardType{TypeSkip, TypeReverse, TypeDraw2}

// Card is a single card instance. ID is unique across a deck and is how
// cards are matched during play; two cards can share Type and Color.
type Card struct {
	ID    uuid.UUID `json:"id"`
	Type  CardType  `json:"type"`
	Color Color     `json:"color"`
}

// NewCard builds a card of the given face with a fresh unique id.
func NewCard(t CardType, color Color) Card {
	return Card{ID: uuid.New(), Type: t, Color: color}
}

// IsWild reports whether the card is a wild or wild draw-four.
func (c Card) IsWild() bool {
	return c.Type == TypeWild || c.Type == TypeWildDraw4
}

// IsNumber reports whether the card is a plain numbered card.
func (c Card) IsNumber() bool {
	switch c.Type {
	case TypeSkip, TypeReverse, TypeDraw2, TypeWild, TypeWildDraw4:
		return false
	}
	return true
}
