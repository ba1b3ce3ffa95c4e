package uno

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"unoroom-server/internal/rng"
	"unoroom-server/pkg/deck"
)

// hand size dealt to each player when the game starts
const handSize = 7

// player limits
const (
	MinPlayers = 2
	MaxPlayers = 10
)

// Game is a game of Uno
// A Game is not safe for concurrent use, the caller must serialize access
type Game struct {
	players    []*Player
	idToPlayer map[string]*Player

	drawPile *deck.Deck
	// discards is ordered, the last card is the top of the pile
	discards []*deck.Card

	current     int
	direction   int
	activeColor deck.Color

	winner     *Player
	lastAction string

	logger logrus.FieldLogger
}

// NewGame shuffles a fresh deck, deals seven cards to each player and turns over the starter.
// players must be in seating order. If g is nil, a crypto-backed generator is used.
func NewGame(logger logrus.FieldLogger, players []*Player, g rng.Generator) (*Game, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: len(players),
		}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	d := deck.New()
	if g != nil {
		d.SetGenerator(g)
	}
	d.Shuffle()

	idToPlayer := make(map[string]*Player, len(players))
	for _, player := range players {
		idToPlayer[player.ID] = player
		player.hand = make(deck.Hand, 0, handSize)
	}

	for _, player := range players {
		for i := 0; i < handSize; i++ {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			player.hand.AddCard(card)
		}
	}

	starter, err := d.Draw()
	if err != nil {
		return nil, err
	}

	// a wild or action starter goes back into the deck until a plain number turns up
	for !starter.IsPlainNumber() {
		logger.WithField("card", starter.String()).Debug("starter returned to the deck")
		d.Push(starter)
		d.Shuffle()

		if starter, err = d.Draw(); err != nil {
			return nil, err
		}
	}

	return &Game{
		players:     append([]*Player{}, players...),
		idToPlayer:  idToPlayer,
		drawPile:    d,
		discards:    []*deck.Card{starter},
		current:     0,
		direction:   1,
		activeColor: starter.Color,
		lastAction:  "Game started!",
		logger:      logger,
	}, nil
}

// PlayCard plays cardID from the player's hand
// chosenColor is only used when the card is wild. Nothing is changed if an error is returned.
func (g *Game) PlayCard(playerID, cardID string, chosenColor deck.Color) error {
	if g.IsOver() {
		return ErrGameIsOver
	}

	player := g.CurrentPlayer()
	if player.ID != playerID {
		return ErrNotYourTurn
	}

	card := player.hand.Find(cardID)
	if card == nil {
		return ErrCardNotInHand
	}

	if !CanPlay(card, g.TopCard(), g.activeColor) {
		return ErrIllegalPlay
	}

	if card.IsWild() && !chosenColor.IsBase() {
		return ErrInvalidColorChoice
	}

	player.hand.Remove(cardID)
	g.discards = append(g.discards, card)

	color := card.Color
	if card.IsWild() {
		color = chosenColor
	}
	g.activeColor = color

	log := g.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"card":     card.String(),
	})

	if len(player.hand) == 0 {
		g.winner = player
		g.lastAction = fmt.Sprintf("%s wins!", player.Name)
		log.Info("game won")
		return nil
	}

	log.Debug("card played")

	switch card.Value {
	case deck.Skip:
		g.advance()
		skipped := g.CurrentPlayer()
		g.lastAction = fmt.Sprintf("%s played Skip! %s was skipped.", player.Name, skipped.Name)
		g.advance()
	case deck.Reverse:
		g.direction *= -1
		if len(g.players) == 2 {
			// with two players a reverse behaves like a skip
			g.lastAction = fmt.Sprintf("%s played Reverse!", player.Name)
			g.advance()
			g.advance()
		} else {
			g.lastAction = fmt.Sprintf("%s played Reverse! Direction changed.", player.Name)
			g.advance()
		}
	case deck.Draw2:
		g.advance()
		target := g.CurrentPlayer()
		drawn := g.drawInto(target, 2)
		g.lastAction = fmt.Sprintf("%s played Draw Two! %s draws %d cards.", player.Name, target.Name, drawn)
		g.advance()
	case deck.WildValue:
		g.lastAction = fmt.Sprintf("%s played Wild! Color is now %s.", player.Name, color)
		g.advance()
	case deck.WildDraw4:
		g.advance()
		target := g.CurrentPlayer()
		drawn := g.drawInto(target, 4)
		g.lastAction = fmt.Sprintf("%s played Wild Draw Four! %s draws %d cards. Color is now %s.", player.Name, target.Name, drawn, color)
		g.advance()
	default:
		g.lastAction = fmt.Sprintf("%s played %s %s.", player.Name, color, card.Value)
		g.advance()
	}

	return nil
}

// DrawCard draws a single card for the current player and passes the turn
// Drawing never grants an extra turn. If the deck is exhausted, the returned card is nil
// and the turn still passes.
func (g *Game) DrawCard(playerID string) (*deck.Card, error) {
	if g.IsOver() {
		return nil, ErrGameIsOver
	}

	player := g.CurrentPlayer()
	if player.ID != playerID {
		return nil, ErrNotYourTurn
	}

	var card *deck.Card
	if g.drawInto(player, 1) == 1 {
		card = player.hand[len(player.hand)-1]
		g.lastAction = fmt.Sprintf("%s drew a card.", player.Name)
	} else {
		g.lastAction = fmt.Sprintf("%s tried to draw, but the deck is empty.", player.Name)
	}

	g.advance()
	return card, nil
}

// advance moves the turn one seat in the current direction
func (g *Game) advance() {
	n := len(g.players)
	g.current = (g.current + g.direction + n) % n
}

// drawInto moves up to n cards from the draw pile into the player's hand
// It returns the number of cards actually drawn.
func (g *Game) drawInto(player *Player, n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		g.reshuffleIfNeeded()

		card, err := g.drawPile.Draw()
		if err != nil {
			g.logger.WithField("playerID", player.ID).Debug("deck exhausted")
			continue
		}

		player.hand.AddCard(card)
		drawn++
	}

	return drawn
}

// reshuffleIfNeeded turns the discard pile, minus its top card, into a new draw pile
// once the draw pile is empty
func (g *Game) reshuffleIfNeeded() {
	if g.drawPile.CardsLeft() > 0 || len(g.discards) <= 1 {
		return
	}

	last := len(g.discards) - 1
	top := g.discards[last]
	g.drawPile.ShuffleDiscards(g.discards[:last])
	g.discards = []*deck.Card{top}

	g.logger.WithField("cards", g.drawPile.CardsLeft()).Debug("discard pile reshuffled")
}

// IsOver returns true once a player has emptied their hand
func (g *Game) IsOver() bool {
	return g.winner != nil
}

// Winner returns the winning player, or nil while the game is in progress
func (g *Game) Winner() *Player {
	return g.winner
}

// Players returns the players in seating order
func (g *Game) Players() []*Player {
	return append([]*Player{}, g.players...)
}

// GetPlayer returns the player by ID
func (g *Game) GetPlayer(playerID string) (*Player, bool) {
	p, ok := g.idToPlayer[playerID]
	return p, ok
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.current]
}

// CurrentIndex returns the seat index of the current player
func (g *Game) CurrentIndex() int {
	return g.current
}

// Direction returns 1 for clockwise, -1 for counter-clockwise
func (g *Game) Direction() int {
	return g.direction
}

// ActiveColor is the color the next non-wild card must match
func (g *Game) ActiveColor() deck.Color {
	return g.activeColor
}

// TopCard returns the top of the discard pile
func (g *Game) TopCard() *deck.Card {
	if len(g.discards) == 0 {
		return nil
	}

	return g.discards[len(g.discards)-1]
}

// Discards returns a copy of the discard pile, top card last
func (g *Game) Discards() []*deck.Card {
	return append([]*deck.Card{}, g.discards...)
}

// DrawPile returns a copy of the draw pile, next card first
func (g *Game) DrawPile() []*deck.Card {
	return append([]*deck.Card{}, g.drawPile.Cards...)
}

// CardsInDeck returns the number of cards left to draw
func (g *Game) CardsInDeck() int {
	return g.drawPile.CardsLeft()
}

// LastAction is a human readable description of the last thing that happened
func (g *Game) LastAction() string {
	return g.lastAction
}

// TotalCards counts every card in the draw pile, the discard pile and all hands
func (g *Game) TotalCards() int {
	total := g.drawPile.CardsLeft() + len(g.discards)
	for _, player := range g.players {
		total += len(player.hand)
	}

	return total
}
