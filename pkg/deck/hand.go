package deck

// Hand represents a collection of cards
// Order carries no meaning
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Find returns the card with the given ID, or nil if the hand doesn't hold it
func (h Hand) Find(cardID string) *Card {
	for _, c := range h {
		if c.ID == cardID {
			return c
		}
	}

	return nil
}

// HasCard returns true if the hand contains the card with the given ID
func (h Hand) HasCard(cardID string) bool {
	return h.Find(cardID) != nil
}

// Remove removes the card with the given ID and returns it
// If the card isn't in the hand, nil is returned and the hand is unchanged
func (h *Hand) Remove(cardID string) *Card {
	for i, c := range *h {
		if c.ID == cardID {
			newHand := make(Hand, 0, len(*h)-1)
			newHand = append(newHand, (*h)[:i]...)
			newHand = append(newHand, (*h)[i+1:]...)
			*h = newHand
			return c
		}
	}

	return nil
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
