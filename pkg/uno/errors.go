package uno

import (
	"errors"
	"fmt"
)

// ErrNotEnoughPlayers is returned when a game is started with fewer than two players
var ErrNotEnoughPlayers = errors.New("need at least two players to start")

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("it's not your turn")

// ErrCardNotInHand happens when the player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in your hand")

// ErrIllegalPlay happens when the card matches neither the active color nor the top card's value
var ErrIllegalPlay = errors.New("cannot play this card")

// ErrInvalidColorChoice happens when a wild is played without choosing red, blue, green or yellow
var ErrInvalidColorChoice = errors.New("must choose red, blue, green or yellow for a wild card")

// ErrGameIsOver is returned when an action is attempted on an ended game
var ErrGameIsOver = errors.New("game is over")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected between %d and %d players, got %d", p.Min, p.Max, p.Got)
}

// Is reports a short-handed table as ErrNotEnoughPlayers
func (p PlayerCountError) Is(target error) bool {
	return target == ErrNotEnoughPlayers && p.Got < p.Min
}
