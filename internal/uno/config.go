// internal/uno/config.go
package uno

// Config holds the fixed game parameters. These are not runtime-tunable;
// DefaultConfig is what every room uses.
type Config struct {
	MinPlayers      int `json:"minPlayers"`
	MaxPlayers      int `json:"maxPlayers"`
	InitialHandSize int `json:"initialHandSize"`
	DrawPenalty     int `json:"drawPenalty"` // reserved; the engine draws 1 on its own
	UnoPenalty      int `json:"unoPenalty"`
}

// DefaultConfig is the standard two-to-four player game.
var DefaultConfig = Config{
	MinPlayers:      2,
	MaxPlayers:      4,
	InitialHandSize: 7,
	DrawPenalty:     1,
	UnoPenalty:      2,
}
