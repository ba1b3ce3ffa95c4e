package mux

import (
	"net/http"

	"unoroom-server/internal/util"
)

type postPlayerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// postPlayer issues a new player ID along with a name the player can change later
func (m *Mux) postPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, postPlayerResponse{
			ID:   util.NewPlayerID(),
			Name: util.GetRandomName(),
		})
	}
}
