package util

import (
	"fmt"

	"unoroom-server/internal/rng"
)

var adjectives = []string{
	"Lucky", "Wild", "Sneaky", "Speedy", "Clever", "Daring", "Jolly", "Sly", "Bold", "Brave", "Funny",
	"Red", "Blue", "Green", "Yellow", "Fuzzy", "Smiling", "Grand", "Mighty", "Dizzy", "Sleepy", "Cheeky",
	"Swift", "Shuffling", "Dealing", "Bluffing", "Flipping", "Jumping", "Spinning", "Skipping", "Reversing",
}

var animals = []string{
	"Fox", "Cat", "Dog", "Panda", "Koala", "Lion", "Owl", "Frog", "Penguin", "Rabbit", "Bear", "Tiger",
	"Otter", "Hedgehog", "Dolphin", "Badger", "Llama", "Walrus", "Moose", "Gecko", "Raccoon", "Beaver",
}

var random rng.Generator = rng.Crypto{}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
