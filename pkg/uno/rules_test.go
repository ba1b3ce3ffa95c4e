package uno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"unoroom-server/pkg/deck"
)

func TestCanPlay(t *testing.T) {
	tests := []struct {
		card   string
		top    string
		color  deck.Color
		expect bool
	}{
		{"r7", "r3", deck.Red, true},
		{"b3", "r3", deck.Red, true},
		{"b4", "r3", deck.Red, false},
		{"gskip", "rskip", deck.Red, true},
		{"gdraw2", "rskip", deck.Red, false},
		{"w", "r3", deck.Red, true},
		{"w4", "b9", deck.Blue, true},
		// the active color is what a wild chose, not the wild's own color
		{"y2", "w", deck.Yellow, true},
		{"r2", "w", deck.Yellow, false},
		{"r5", "", deck.Red, true},
		{"b5", "", deck.Red, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, CanPlay(deck.CardFromString(tt.card), deck.CardFromString(tt.top), tt.color), "%s on %s (%s)", tt.card, tt.top, tt.color)
	}
}
