package uno

import (
	"unoroom-server/pkg/deck"
)

// CanPlay returns true if card may be played on top of the discard pile
// A wild is always legal, otherwise the card must match the active color or the top card's value.
func CanPlay(card, top *deck.Card, activeColor deck.Color) bool {
	if card.IsWild() {
		return true
	}

	if card.Color == activeColor {
		return true
	}

	return top != nil && card.Value == top.Value
}
