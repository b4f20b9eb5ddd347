package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/cards/internal/card"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_SaveLoad(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "decks", "poker"+ext)

			d := Full()
			d.Reverse()
			f := NewFile("poker", d)
			require.NoError(t, f.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, f.Deck, loaded.Deck)

			_, err = uuid.Parse(loaded.Deck.ID)
			assert.NoError(t, err)
			assert.Equal(t, SchemaVersion, loaded.Deck.SchemaVersion)

			cards, err := loaded.Cards()
			require.NoError(t, err)
			assert.Equal(t, d.Cards(), cards.Cards())
		})
	}
}

func TestFile_EmptyDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, NewFile("empty", New()).Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	d, err := loaded.Cards()
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestFile_SetCards(t *testing.T) {
	f := NewFile("x", Standard())
	f.SetCards(FromCards(mustCards(t, "AS,B?")))

	assert.Equal(t, []string{"AS", "B?"}, f.Deck.Cards)
	assert.NotEmpty(t, f.Deck.UpdatedDate)
}

func TestFile_InvalidCard(t *testing.T) {
	f := &File{Deck: Section{Cards: []string{"AS", "XX"}}}

	_, err := f.Cards()
	assert.ErrorContains(t, err, "card 2")
}

func TestFile_SaveReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poker.toml")

	require.NoError(t, NewFile("poker", Full()).Save(path))
	require.NoError(t, NewFile("poker", FromCards(mustCards(t, "AS,R?"))).Save(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "poker.toml", entries[0].Name())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AS", "R?"}, loaded.Deck.Cards)
}

func TestFile_SaveFailureKeepsDirectoryClean(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taken.toml")
	require.NoError(t, os.Mkdir(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0644))

	err := NewFile("taken", Standard()).Save(path)
	assert.ErrorContains(t, err, "error writing deck file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "taken.toml", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestFile_CardsUseTextEncoding(t *testing.T) {
	f := NewFile("x", FromCards(mustCards(t, "10H,B?")))
	assert.Equal(t, []string{"10H", "B?"}, f.Deck.Cards)

	// the text decoder accepts the same spellings as card.Parse
	f.Deck.Cards = []string{"th", " as ", "r?"}
	d, err := f.Cards()
	require.NoError(t, err)
	assert.Equal(t, mustCards(t, "10H,AS,R?"), d.Cards())

	f.Deck.Cards = []string{"AS", "+2C"}
	_, err = f.Cards()
	assert.ErrorIs(t, err, card.ErrInvalidCard)
	assert.ErrorContains(t, err, "card 2")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "not found")

	txt := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(txt, []byte("AS"), 0644))
	_, err = Load(txt)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[deck\nname="), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	err = NewFile("x", New()).Save(filepath.Join(dir, "deck.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.NoFileExists(t, filepath.Join(dir, "deck.json"))
}
