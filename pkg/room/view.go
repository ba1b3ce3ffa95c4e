package room

import (
	"time"

	"unoroom-server/pkg/deck"
)

// PublicPlayer is what everyone can see about a seated player
type PublicPlayer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	CardCount int    `json:"cardCount"`
}

// PublicView is the room as seen by a single player
// Other players' hands are reduced to a count and only the top discard is shown.
type PublicView struct {
	Code         string          `json:"id"`
	HostID       string          `json:"hostId"`
	Players      []*PublicPlayer `json:"players"`
	Phase        Phase           `json:"state"`
	MyCards      []*deck.Card    `json:"myCards"`
	TopCard      *deck.Card      `json:"topCard"`
	CardsInDeck  int             `json:"cardsInDeck"`
	CurrentIndex int             `json:"currentPlayerIndex"`
	Direction    int             `json:"direction"`
	ActiveColor  deck.Color      `json:"currentColor"`
	// Winner is the ID of the winning player
	Winner     *string      `json:"winner"`
	LastAction string       `json:"lastAction"`
	ChatEvents []*ChatEvent `json:"chatEvents"`
	Version    int          `json:"version"`
}

// GetPublicRoom renders the room for viewerID
// A viewer who isn't seated gets an empty hand. The second return value is false if the room doesn't exist.
func (r *Registry) GetPublicRoom(code, viewerID string) (*PublicView, bool) {
	room, err := r.getRoom(code)
	if err != nil {
		return nil, false
	}

	room.lock.Lock()
	defer room.lock.Unlock()

	return room.publicView(viewerID, r.now().Add(-r.opts.ChatVisibleFor)), true
}

// publicView projects the room for viewerID, showing chat events newer than chatSince
// NOTE: the room lock must be held
func (r *Room) publicView(viewerID string, chatSince time.Time) *PublicView {
	view := &PublicView{
		Code:         r.Code,
		HostID:       r.HostID,
		Players:      make([]*PublicPlayer, len(r.players)),
		Phase:        r.phase,
		MyCards:      []*deck.Card{},
		CurrentIndex: 0,
		Direction:    1,
		LastAction:   r.lastAction,
		ChatEvents:   r.chat.since(chatSince),
		Version:      r.version,
	}

	for i, player := range r.players {
		view.Players[i] = &PublicPlayer{
			ID:        player.ID,
			Name:      player.Name,
			Avatar:    player.Avatar,
			CardCount: player.CardCount(),
		}

		if player.ID == viewerID {
			view.MyCards = player.Hand()
		}
	}

	if g := r.game; g != nil {
		view.TopCard = g.TopCard()
		view.CardsInDeck = g.CardsInDeck()
		view.CurrentIndex = g.CurrentIndex()
		view.Direction = g.Direction()
		view.ActiveColor = g.ActiveColor()
		if winner := g.Winner(); winner != nil {
			id := winner.ID
			view.Winner = &id
		}
	}

	return view
}
