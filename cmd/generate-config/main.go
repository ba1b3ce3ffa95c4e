package main

import (
	"os"

	"gopkg.in/yaml.v2"
	"unoroom-server/internal/config"
)

// prints the default configuration as a starting config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
