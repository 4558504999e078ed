package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	// LogFile receives JSON logs; "-" means stderr. The terminal owns stdout.
	LogFile string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Game    Game   `yaml:"game"`
	UI      UI     `yaml:"ui"`
}

type Game struct {
	StartingPlayer string `yaml:"starting-player" env:"TICTACTOE_STARTING_PLAYER" env-default:"X"`
}

type UI struct {
	// AltScreen defaults to true in Load; an env-default would override a false from the file.
	AltScreen bool   `yaml:"alt-screen" env:"TICTACTOE_ALT_SCREEN"`
	ColorX    string `yaml:"color-x" env:"TICTACTOE_COLOR_X" env-default:"#EA2027"`
	ColorO    string `yaml:"color-o" env:"TICTACTOE_COLOR_O" env-default:"#25CCF7"`
	ColorDraw string `yaml:"color-draw" env:"TICTACTOE_COLOR_DRAW" env-default:"#009432"`
}

// Load reads the yml file at path, falling back to environment and defaults when it does not exist.
func Load(path string) (*Config, error) {
	config := &Config{UI: UI{AltScreen: true}}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
