// internal/handlers/messages.go
package handlers

import "encoding/json"

// Inbound message types accepted over the websocket.
const (
	MsgJoinGame   = "join_game"
	MsgStartGame  = "start_game"
	MsgGameAction = "game_action"
	MsgLeaveGame  = "leave_game"
)

// ClientMessage is the envelope for every inbound websocket message.
// RoomID and PlayerName accompany join_game; Action carries the raw
// tagged game action for game_action and is decoded by the engine's
// action codec.
type ClientMessage struct {
	Type       string          `json:"type"`
	RoomID     string          `json:"roomId,omitempty"`
	PlayerName string          `json:"playerName,omitempty"`
	Action     json.RawMessage `json:"action,omitempty"`
}
