package deck

import (
	"errors"

	"unoroom-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a standard deck
const Size = 108

// Deck represents a draw pile
// The top of the deck is Cards[0]
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return &Deck{
		Cards: buildCards(),
		rng:   rng.Crypto{},
	}
}

// SetGenerator will set the random number generator used for shuffling
// Games use this so all shuffles come from the registry's generator
func (d *Deck) SetGenerator(g rng.Generator) {
	d.rng = g
}

// buildCards returns the 108 cards of a standard deck
// Per color: one 0, two each of 1-9, two each of skip, reverse and draw2.
// Then four wilds and four wild draw fours.
func buildCards() []*Card {
	cards := make([]*Card, 0, Size)
	for _, color := range BaseColors {
		cards = append(cards, NewCard(color, NumberValue(0)))
		for n := 1; n <= 9; n++ {
			cards = append(cards, NewCard(color, NumberValue(n)), NewCard(color, NumberValue(n)))
		}

		for _, action := range []Value{Skip, Reverse, Draw2} {
			cards = append(cards, NewCard(color, action), NewCard(color, action))
		}
	}

	for i := 0; i < 4; i++ {
		cards = append(cards, NewCard(Wild, WildValue), NewCard(Wild, WildDraw4))
	}

	return cards
}

// Shuffle will shuffle the remaining cards in the deck
// The shuffle is applied to a fresh copy, the previous slice is never reordered in place
func (d *Deck) Shuffle() {
	d.Cards = shuffled(d.rng, d.Cards)
}

// ShuffleDiscards will replace the existing deck with the cards specified
func (d *Deck) ShuffleDiscards(discards []*Card) {
	d.Cards = shuffled(d.rng, discards)
}

func shuffled(g rng.Generator, cards []*Card) []*Card {
	cp := make([]*Card, len(cards))
	copy(cp, cards)

	rng.Shuffle(g, len(cp), func(i, j int) {
		cp[i], cp[j] = cp[j], cp[i]
	})

	return cp
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Push returns a card to the bottom of the deck
func (d *Deck) Push(card *Card) {
	d.Cards = append(d.Cards, card)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
