package room

import (
	"sync"
	"time"

	"unoroom-server/pkg/deck"
	"unoroom-server/pkg/uno"
)

// Phase is the lifecycle phase of a room
type Phase string

// room phases
const (
	PhaseLobby    Phase = "lobby"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// MaxPlayers is the most players a room can seat
const MaxPlayers = uno.MaxPlayers

// Room is a single game room
// Every field below lock must only be accessed while holding it.
type Room struct {
	Code    string
	HostID  string
	Created time.Time

	lock sync.Mutex

	phase      Phase
	players    []*uno.Player
	game       *uno.Game
	chat       *chatLog
	version    int
	lastAction string

	// changed is closed and replaced on every version bump
	changed chan struct{}
}

func newRoom(code string, host *uno.Player, created time.Time, chatLimit int) *Room {
	return &Room{
		Code:    code,
		HostID:  host.ID,
		Created: created,
		phase:   PhaseLobby,
		players: []*uno.Player{host},
		chat:    newChatLog(chatLimit),
		version: 1,
		changed: make(chan struct{}),
	}
}

// bump increments the version and wakes up any watchers
func (r *Room) bump() {
	r.version++
	close(r.changed)
	r.changed = make(chan struct{})
}

func (r *Room) getPlayer(playerID string) *uno.Player {
	for _, player := range r.players {
		if player.ID == playerID {
			return player
		}
	}

	return nil
}

// addPlayer seats a new player and records the join
func (r *Room) addPlayer(playerID, name, avatar string) *uno.Player {
	player := uno.NewPlayer(playerID, name, avatarOrDefault(avatar, seatAvatar(len(r.players))))
	r.players = append(r.players, player)
	r.lastAction = name + " joined the room."
	r.bump()

	return player
}

// syncGame copies the game's outcome back onto the room after a game action
func (r *Room) syncGame() {
	r.lastAction = r.game.LastAction()
	if r.game.IsOver() {
		r.phase = PhaseFinished
	}

	r.bump()
}

// snapshot copies the room state
func (r *Room) snapshot() *Snapshot {
	s := &Snapshot{
		Code:         r.Code,
		HostID:       r.HostID,
		Created:      r.Created,
		Phase:        r.phase,
		Players:      make([]*PlayerSnapshot, len(r.players)),
		DrawPile:     []*deck.Card{},
		Discards:     []*deck.Card{},
		CurrentIndex: 0,
		Direction:    1,
		LastAction:   r.lastAction,
		ChatEvents:   r.chat.all(),
		Version:      r.version,
	}

	for i, player := range r.players {
		s.Players[i] = &PlayerSnapshot{
			ID:     player.ID,
			Name:   player.Name,
			Avatar: player.Avatar,
			Hand:   player.Hand(),
		}
	}

	if g := r.game; g != nil {
		s.DrawPile = g.DrawPile()
		s.Discards = g.Discards()
		s.CurrentIndex = g.CurrentIndex()
		s.Direction = g.Direction()
		s.ActiveColor = g.ActiveColor()
		if winner := g.Winner(); winner != nil {
			s.WinnerID = winner.ID
		}
	}

	return s
}

// summary returns the lightweight description used for reconnection discovery
func (r *Room) summary() RoomSummary {
	return RoomSummary{
		Code:        r.Code,
		Phase:       r.phase,
		PlayerCount: len(r.players),
	}
}

// RoomSummary describes a room a player belongs to
type RoomSummary struct {
	Code        string `json:"roomId"`
	Phase       Phase  `json:"state"`
	PlayerCount int    `json:"playerCount"`
}
