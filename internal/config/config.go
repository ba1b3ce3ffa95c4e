package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"unoroom-server/internal/util"
)

// Config provides configuration for the Uno room server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Chat struct {
		// VisibleFor is in seconds
		VisibleFor int `yaml:"visibleFor" envconfig:"visible_for"`
		Limit      int `yaml:"limit" envconfig:"limit"`
	} `yaml:"chat"`
	WS struct {
		// PingPeriod is in seconds
		PingPeriod int `yaml:"pingPeriod" envconfig:"ping_period"`
	} `yaml:"ws"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}

	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Chat.VisibleFor = 10
	cfg.Chat.Limit = 20
	cfg.WS.PingPeriod = 54

	return cfg
}

// ChatVisibleFor returns how long a chat event stays in the public view
func (c Config) ChatVisibleFor() time.Duration {
	return time.Duration(c.Chat.VisibleFor) * time.Second
}

// PingPeriod returns how often websocket clients are pinged
func (c Config) PingPeriod() time.Duration {
	return time.Duration(c.WS.PingPeriod) * time.Second
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional, environment variables prefixed with UNO_ take precedence over it.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("UNO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return err
	}

	if err := envconfig.Process("uno", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
