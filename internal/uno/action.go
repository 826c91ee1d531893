// internal/uno/action.go
package uno

import (
	"encoding/json"
	"fmt"
)

// Action is one player move, a closed set of variants tagged by a "type"
// field on the wire. The engine dispatches on the concrete type; an
// unknown variant is an error rather than a silently dropped move.
type Action interface {
	ActionType() string
}

// Action type tags as they appear on the wire.
const (
	ActionPlayCard     = "play_card"
	ActionDrawCard     = "draw_card"
	ActionCallUno      = "call_uno"
	ActionChallengeUno = "challenge_uno"
)

// PlayCardAction plays one card from the acting player's hand. The card
// is matched by id; ChosenColor is required when the card is wild.
type PlayCardAction struct {
	Type        string `json:"type"`
	PlayerID    string `json:"playerId"`
	Card        Card   `json:"card"`
	ChosenColor Color  `json:"chosenColor,omitempty"`
}

func (a PlayCardAction) ActionType() string { return ActionPlayCard }

// DrawCardAction draws one card, or the whole pending draw2/draw4 stack.
type DrawCardAction struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

func (a DrawCardAction) ActionType() string { return ActionDrawCard }

// CallUnoAction announces UNO for the acting player.
type CallUnoAction struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

func (a CallUnoAction) ActionType() string { return ActionCallUno }

// ChallengeUnoAction accuses the target of failing to call UNO.
type ChallengeUnoAction struct {
	Type           string `json:"type"`
	ChallengerID   string `json:"challengerId"`
	TargetPlayerID string `json:"targetPlayerId"`
}

func (a ChallengeUnoAction) ActionType() string { return ActionChallengeUno }

// DecodeAction unmarshals a wire action into its concrete variant.
func DecodeAction(data []byte) (Action, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode action envelope: %w", err)
	}

	switch envelope.Type {
	case ActionPlayCard:
		var a PlayCardAction
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode play_card action: %w", err)
		}
		return a, nil
	case ActionDrawCard:
		var a DrawCardAction
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode draw_card action: %w", err)
		}
		return a, nil
	case ActionCallUno:
		var a CallUnoAction
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode call_uno action: %w", err)
		}
		return a, nil
	case ActionChallengeUno:
		var a ChallengeUnoAction
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode challenge_uno action: %w", err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", envelope.Type)
	}
}
