package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("r7")
	a.Equal(Red, card.Color)
	a.Equal(Value("7"), card.Value)
	a.NotEmpty(card.ID)

	card = CardFromString("GSKIP")
	a.Equal(Green, card.Color)
	a.Equal(Skip, card.Value)

	a.Equal(WildValue, CardFromString("w").Value)
	a.Equal(WildDraw4, CardFromString("w4").Value)
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("x1")
	})

	a.Panics(func() {
		CardFromString("r10")
	})

	a.Equal("r7,yreverse,bdraw2,w,w4", CardsToString(CardsFromString("r7,yreverse,bdraw2,w,w4")))
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("red 7", CardFromString("r7").String())
	a.Equal("blue skip", CardFromString("bskip").String())
	a.Equal("yellow draw two", CardFromString("ydraw2").String())
	a.Equal("wild", CardFromString("w").String())
	a.Equal("wild draw four", CardFromString("w4").String())
}

func TestCard_Kinds(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("r0").IsPlainNumber())
	a.False(CardFromString("rskip").IsPlainNumber())
	a.False(CardFromString("w").IsPlainNumber())
	a.True(CardFromString("w4").IsWild())
	a.True(Reverse.IsAction())
	a.False(WildDraw4.IsAction())
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor(" Blue ")
	assert.True(t, ok)
	assert.Equal(t, Blue, c)

	_, ok = ParseColor("wild")
	assert.False(t, ok)

	_, ok = ParseColor("purple")
	assert.False(t, ok)
}
