package room

import (
	"time"

	"unoroom-server/pkg/deck"
)

// PlayerSnapshot is a copy of a seated player, including their hand
type PlayerSnapshot struct {
	ID     string
	Name   string
	Avatar string
	Hand   deck.Hand
}

// Snapshot is a point in time copy of a room
// It is safe to use after the room has moved on. Cards are immutable and shared.
type Snapshot struct {
	Code    string
	HostID  string
	Created time.Time
	Phase   Phase

	Players  []*PlayerSnapshot
	DrawPile []*deck.Card
	// Discards is ordered, the last card is the top of the pile
	Discards []*deck.Card

	CurrentIndex int
	Direction    int
	ActiveColor  deck.Color
	WinnerID     string

	LastAction string
	ChatEvents []*ChatEvent
	Version    int
}

// Player returns the player by ID, or nil if they are not seated
func (s *Snapshot) Player(playerID string) *PlayerSnapshot {
	for _, player := range s.Players {
		if player.ID == playerID {
			return player
		}
	}

	return nil
}

// TopCard returns the top of the discard pile, or nil before the game starts
func (s *Snapshot) TopCard() *deck.Card {
	if len(s.Discards) == 0 {
		return nil
	}

	return s.Discards[len(s.Discards)-1]
}

// TotalCards counts the cards in the piles and in every hand
func (s *Snapshot) TotalCards() int {
	total := len(s.DrawPile) + len(s.Discards)
	for _, player := range s.Players {
		total += len(player.Hand)
	}

	return total
}
