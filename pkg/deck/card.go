package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
)

// Color represents a card color
type Color string

// color constants
const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Wild   Color = "wild"
)

// BaseColors are the four colors a card can have, in deck order
var BaseColors = []Color{Red, Blue, Green, Yellow}

// IsBase returns true if the color is one of the four base colors
func (c Color) IsBase() bool {
	switch c {
	case Red, Blue, Green, Yellow:
		return true
	}

	return false
}

// ParseColor returns the base color for s
// The second return value is false if s isn't a base color
func ParseColor(s string) (Color, bool) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsBase()
}

// Value is the face value of a card
type Value string

// action and wild values
const (
	Skip      Value = "skip"
	Reverse   Value = "reverse"
	Draw2     Value = "draw2"
	WildValue Value = "wild"
	WildDraw4 Value = "wild_draw4"
)

// NumberValue returns the value for a number card
func NumberValue(n int) Value {
	if n < 0 || n > 9 {
		panic(fmt.Sprintf("invalid card number: %d", n))
	}

	return Value(strconv.Itoa(n))
}

// IsAction returns true for skip, reverse and draw2
func (v Value) IsAction() bool {
	return v == Skip || v == Reverse || v == Draw2
}

// IsNumber returns true for "0" through "9"
func (v Value) IsNumber() bool {
	return len(v) == 1 && v[0] >= '0' && v[0] <= '9'
}

// cardCounter hands out card IDs for the lifetime of the process
var cardCounter uint64

func nextCardID() string {
	return "card_" + strconv.FormatUint(atomic.AddUint64(&cardCounter, 1), 10)
}

// Card is an individual playing card
// A card is immutable once created
type Card struct {
	ID    string `json:"id"`
	Color Color  `json:"color"`
	Value Value  `json:"value"`
}

// NewCard returns a card with a newly assigned ID
func NewCard(color Color, value Value) *Card {
	return &Card{
		ID:    nextCardID(),
		Color: color,
		Value: value,
	}
}

// IsWild returns true if the card has no intrinsic color
func (c *Card) IsWild() bool {
	return c.Color == Wild
}

// IsPlainNumber returns true if the card is a colored number card
func (c *Card) IsPlainNumber() bool {
	return !c.IsWild() && c.Value.IsNumber()
}

func (c *Card) String() string {
	switch c.Value {
	case WildValue:
		return "wild"
	case WildDraw4:
		return "wild draw four"
	case Skip:
		return fmt.Sprintf("%s skip", c.Color)
	case Reverse:
		return fmt.Sprintf("%s reverse", c.Color)
	case Draw2:
		return fmt.Sprintf("%s draw two", c.Color)
	}

	return fmt.Sprintf("%s %s", c.Color, c.Value)
}

var cardRx = regexp.MustCompile(`(?i)^([rbgy])([0-9]|skip|reverse|draw2)\z|^(w)(4)?\z`)

// CardFromString returns a new Card from the string.
// The format is <color><value> where color is in [rbgy] and value is 0-9, skip, reverse or draw2.
// Wild cards are written as "w" and wild draw fours as "w4".
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	if match[3] != "" {
		if match[4] != "" {
			return NewCard(Wild, WildDraw4)
		}

		return NewCard(Wild, WildValue)
	}

	var color Color
	switch strings.ToLower(match[1]) {
	case "r":
		color = Red
	case "b":
		color = Blue
	case "g":
		color = Green
	case "y":
		color = Yellow
	default:
		// should never be hit due to the regexp
		panic("unknown color")
	}

	return NewCard(color, Value(strings.ToLower(match[2])))
}

// CardsFromString will return a slice of new cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (red seven) to a string (r7)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	switch card.Value {
	case WildValue:
		return "w"
	case WildDraw4:
		return "w4"
	}

	return fmt.Sprintf("%c%s", card.Color[0], card.Value)
}

// CardsToString will convert a slice of cards to a string in the format of r7,gskip,w4,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
