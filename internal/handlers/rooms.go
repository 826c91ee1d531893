// internal/handlers/rooms.go
package handlers

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/cardtable/uno/internal/room"
	"github.com/cardtable/uno/internal/uno"
)

// RoomSummary is one entry in the room list.
type RoomSummary struct {
	ID      string `json:"id"`
	Players int    `json:"players"`
	Phase   string `json:"phase"`
}

// ListRoomsHandler returns a JSON summary of all live rooms.
func ListRoomsHandler(store *room.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		rooms := store.Rooms()
		summaries := make([]RoomSummary, 0, len(rooms))
		for _, rm := range rooms {
			phase := string(uno.PhaseWaiting)
			if state := rm.State(); state != nil {
				phase = string(state.Phase)
			}
			summaries = append(summaries, RoomSummary{
				ID:      rm.ID,
				Players: len(rm.Seats()),
				Phase:   phase,
			})
		}
		sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			http.Error(w, "failed to encode room list", http.StatusInternalServerError)
		}
	}
}
