package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// ErrDeckNotFound is returned when a deck is neither in the library nor at a path
var ErrDeckNotFound = errors.New("deck not found")

// DeckExt is the extension of deck files created in the deck library
const DeckExt = ".toml"

// Config represents the application configuration.
// Every field can be overridden by a CARDS_* environment variable.
type Config struct {
	DefaultDeck string `toml:"default_deck" envconfig:"default_deck"`
	Jokers      bool   `toml:"jokers" envconfig:"jokers"`
	LogLevel    string `toml:"log_level" envconfig:"log_level"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cards", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cards", "config.toml")
}

func defaultConfig() *Config {
	return &Config{
		DefaultDeck: "main",
		Jokers:      true,
		LogLevel:    "warning",
	}
}

// LoadConfig loads the config file, creating it with defaults if it does
// not exist, and applies environment overrides
func LoadConfig() (*Config, error) {
	config, err := readConfig()
	if err != nil {
		return nil, err
	}

	if err := envconfig.Process("cards", config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	return config, nil
}

func readConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := defaultConfig()
		if err := writeConfig(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	config := defaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetLibraryDeckPath returns the path a deck named deckName has in the library
func GetLibraryDeckPath(deckName string) string {
	return filepath.Join(GetDeckLibraryPath(), deckName+DeckExt)
}

// GetDeckPath returns the path to an existing deck, either in the deck
// library or a relative path
func GetDeckPath(deckName string) (string, error) {
	// First, try to find the deck in the deck library
	if !strings.ContainsRune(deckName, filepath.Separator) {
		deckPath := GetLibraryDeckPath(deckName)
		if _, err := os.Stat(deckPath); err == nil {
			return deckPath, nil
		}
	}

	// If not found in the library, treat as a relative path
	if info, err := os.Stat(deckName); err == nil && !info.IsDir() {
		return deckName, nil
	}

	return "", fmt.Errorf("%w: %s", ErrDeckNotFound, deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	// environment overrides are not persisted
	config, err := readConfig()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName
	return writeConfig(config)
}
