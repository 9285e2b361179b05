package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	StopOnWin bool   `yaml:"stop-on-win" env:"STOP_ON_WIN" env-default:"false"`
	Moves     []Move `yaml:"moves"`
}

// Move is a single move as written in the config file, e.g. {square: B2, token: X}.
type Move struct {
	Square string `yaml:"square"`
	Token  string `yaml:"token"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
