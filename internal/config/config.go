package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	FirstTurn string `yaml:"first-turn" env:"GAME_FIRST_TURN" env-default:"X"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine: the game has to run with zero setup, so defaults and environment
// variables apply instead.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
