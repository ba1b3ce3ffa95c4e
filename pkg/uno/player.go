package uno

import (
	"unoroom-server/pkg/deck"
)

// Player is a seated player
// ID is supplied by the caller and is stable across reconnects
type Player struct {
	ID     string
	Name   string
	Avatar string
	hand   deck.Hand
}

// NewPlayer returns a new player with an empty hand
func NewPlayer(id, name, avatar string) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Avatar: avatar,
		hand:   make(deck.Hand, 0),
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// CardCount returns how many cards the player holds
func (p *Player) CardCount() int {
	return len(p.hand)
}

// HasCard returns true if the player holds the card
func (p *Player) HasCard(cardID string) bool {
	return p.hand.HasCard(cardID)
}
