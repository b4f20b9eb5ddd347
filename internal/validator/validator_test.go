package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/cards/internal/card"
	"github.com/arcanaland/cards/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func saveDeck(t *testing.T, d *deck.Deck) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, deck.NewFile("test", d).Save(path))
	return path
}

func TestValidate_CompleteDecks(t *testing.T) {
	double := deck.Full()
	double.Append(deck.Full())
	double.Shuffle()

	for name, d := range map[string]*deck.Deck{
		"standard": deck.Standard(),
		"full":     deck.Full(),
		"double":   double,
	} {
		t.Run(name, func(t *testing.T) {
			results, err := NewValidator(saveDeck(t, d)).Validate()
			require.NoError(t, err)
			assert.Empty(t, results.Errors)
			assert.Empty(t, results.Warnings)
		})
	}
}

func TestValidate_PartialDeck(t *testing.T) {
	d := deck.Standard()
	d.Draw()
	d.Put(d.Cards()[0])

	results, err := NewValidator(saveDeck(t, d)).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{
		"deck is not made of complete standard or full decks (52 cards)",
		"duplicate card: 2C (2 copies)",
	}, results.Warnings)
}

func TestValidate_StrayJoker(t *testing.T) {
	d := deck.Standard()
	d.Draw()
	d.Put(card.NewJoker(card.Red))

	results, err := NewValidator(saveDeck(t, d)).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{
		"deck is not made of complete standard or full decks (52 cards)",
		"deck holds jokers (1) but is not made of complete full decks",
	}, results.Warnings)
}

func TestValidate_HandEditedRank(t *testing.T) {
	path := writeDeck(t, "deck.toml", `[deck]
id = "0b9d4c1e-6c1a-4b8e-9a57-2f1d3c4b5a69"
name = "edited"
schema_version = "1.0"
created_date = "2026-10-17"
cards = ["02C", "+3C", "4C"]
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 2)
	assert.Contains(t, results.Errors[0], "card 1")
	assert.Contains(t, results.Errors[1], "card 2")
}

func TestValidate_EmptyDeck(t *testing.T) {
	results, err := NewValidator(saveDeck(t, deck.New())).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"deck has no cards"}, results.Warnings)
}

func TestValidate_MissingFields(t *testing.T) {
	path := writeDeck(t, "deck.toml", `
[deck]
schema_version = "2.0"
cards = ["AS", "1S", "R?"]
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"deck.id is required",
		"deck.name is required",
		"unsupported schema_version: 2.0 (supported: 1.0)",
		`card 2: invalid card: unknown rank in "1S"`,
	}, results.Errors)
}

func TestValidate_YAML(t *testing.T) {
	path := writeDeck(t, "deck.yaml", `
deck:
  id: abc
  name: yaml deck
  cards: [AS, KS]
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"deck.schema_version is required"}, results.Errors)
	assert.Len(t, results.Warnings, 1)
}

func TestValidate_Unreadable(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.toml")).Validate()
	assert.ErrorContains(t, err, "deck file not found")

	_, err = NewValidator(writeDeck(t, "deck.toml", "[deck")).Validate()
	assert.Error(t, err)

	_, err = NewValidator(writeDeck(t, "deck.ini", "")).Validate()
	assert.ErrorIs(t, err, deck.ErrUnknownFormat)
}
