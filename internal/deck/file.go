package deck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cards/internal/card"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

// SchemaVersion is the deck file schema version written by this package
const SchemaVersion = "1.0"

// ErrUnknownFormat is returned for deck files that are neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown deck file format")

// File is a deck as stored on disk
type File struct {
	Deck Section `toml:"deck" yaml:"deck"`
}

// Section is the [deck] table of a deck file. Cards are kept as their text
// encoding so that a file with a bad card can still be read and reported on.
type Section struct {
	ID            string   `toml:"id" yaml:"id"`
	Name          string   `toml:"name" yaml:"name"`
	SchemaVersion string   `toml:"schema_version" yaml:"schema_version"`
	Description   string   `toml:"description,omitempty" yaml:"description,omitempty"`
	CreatedDate   string   `toml:"created_date" yaml:"created_date"`
	UpdatedDate   string   `toml:"updated_date,omitempty" yaml:"updated_date,omitempty"`
	Cards         []string `toml:"cards" yaml:"cards"` // bottom to top
}

// NewFile returns a deck file with a fresh ID holding the cards of d
func NewFile(name string, d *Deck) *File {
	f := &File{
		Deck: Section{
			ID:            uuid.NewString(),
			Name:          name,
			SchemaVersion: SchemaVersion,
			CreatedDate:   today(),
		},
	}

	f.Deck.Cards = formatCards(d)
	return f
}

// Load loads a deck file. The format is chosen by the file extension.
func Load(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var f File
	if err := DecodeFile(path, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Cards parses the cards stored in the file into a deck
func (f *File) Cards() (*Deck, error) {
	d := WithCapacity(len(f.Deck.Cards))
	for i, s := range f.Deck.Cards {
		var c card.Card
		if err := c.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}

		d.Put(c)
	}

	return d, nil
}

// SetCards replaces the cards stored in the file with those of d
func (f *File) SetCards(d *Deck) {
	f.Deck.Cards = formatCards(d)
	f.Deck.UpdatedDate = today()
}

// Save writes the file to path, creating the parent directory if needed.
// The file is written next to path and renamed over it, so a failed save
// leaves any previous version in place.
func (f *File) Save(path string) error {
	if !knownFormat(path) {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating deck directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating deck file: %w", err)
	}
	tmp := file.Name()

	if err := encode(file, filepath.Ext(path), f); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error writing deck file: %w", err)
	}

	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error writing deck file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error writing deck file: %w", err)
	}

	return nil
}

// DecodeFile decodes the TOML or YAML file at path into v
func DecodeFile(path string, v any) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, v); err != nil {
			return fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return nil
}

func encode(w io.Writer, ext string, v any) error {
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("error encoding deck: %w", err)
		}
	case ".yaml", ".yml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding deck: %w", err)
		}

		if _, err := w.Write(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, ext)
	}

	return nil
}

func knownFormat(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return true
	}

	return false
}

func formatCards(d *Deck) []string {
	cards := make([]string, 0, d.Len())
	for c := range d.All() {
		text, _ := c.MarshalText()
		cards = append(cards, string(text))
	}

	return cards
}

func today() string {
	return time.Now().Format("2006-01-02")
}
