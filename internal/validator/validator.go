package validator

import (
	"fmt"
	"iter"
	"os"

	"github.com/arcanaland/cards/internal/card"
	"github.com/arcanaland/cards/internal/deck"
	"github.com/sirupsen/logrus"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck file. An error is returned only if the file cannot
// be read at all; problems with its content are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	f, err := v.validateDeckFile()
	if err != nil {
		return v.Results, err
	}

	cards := v.validateCards(f.Deck.Cards)
	v.validateComposition(cards)

	logrus.WithFields(logrus.Fields{
		"path":     v.DeckPath,
		"errors":   len(v.Results.Errors),
		"warnings": len(v.Results.Warnings),
	}).Debug("validated deck")

	return v.Results, nil
}

func (v *Validator) validateDeckFile() (*deck.File, error) {
	if _, err := os.Stat(v.DeckPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", v.DeckPath)
	}

	var f deck.File
	if err := deck.DecodeFile(v.DeckPath, &f); err != nil {
		return nil, err
	}

	if f.Deck.ID == "" {
		v.Results.Errors = append(v.Results.Errors, "deck.id is required")
	}

	if f.Deck.Name == "" {
		v.Results.Errors = append(v.Results.Errors, "deck.name is required")
	}

	if f.Deck.SchemaVersion == "" {
		v.Results.Errors = append(v.Results.Errors, "deck.schema_version is required")
	} else if f.Deck.SchemaVersion != deck.SchemaVersion {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported schema_version: %s (supported: %s)", f.Deck.SchemaVersion, deck.SchemaVersion))
	}

	return &f, nil
}

// validateCards parses every card, reporting the ones that do not parse
func (v *Validator) validateCards(raw []string) []card.Card {
	cards := make([]card.Card, 0, len(raw))
	for i, s := range raw {
		c, err := card.Parse(s)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}

		cards = append(cards, c)
	}

	return cards
}

// validateComposition warns about decks that are not made of whole
// standard or full decks
func (v *Validator) validateComposition(cards []card.Card) {
	if len(cards) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "deck has no cards")
		return
	}

	counts := make(map[card.Card]int)
	for _, c := range cards {
		counts[c]++
	}

	if isWholeDecks(counts, len(cards), card.Standard(), 52) || isWholeDecks(counts, len(cards), card.Full(), 54) {
		return
	}

	v.Results.Warnings = append(v.Results.Warnings,
		fmt.Sprintf("deck is not made of complete standard or full decks (%d cards)", len(cards)))

	jokers := counts[card.NewJoker(card.Black)] + counts[card.NewJoker(card.Red)]
	if jokers > 0 && len(cards)%54 != 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deck holds jokers (%d) but is not made of complete full decks", jokers))
	}

	for c := range card.Full() {
		if counts[c] > 1 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("duplicate card: %s (%d copies)", c, counts[c]))
		}
	}
}

// isWholeDecks returns true if counts holds the same number of copies of
// every card in seq, and nothing else
func isWholeDecks(counts map[card.Card]int, total int, seq iter.Seq[card.Card], size int) bool {
	if total%size != 0 {
		return false
	}

	copies := total / size
	for c := range seq {
		if counts[c] != copies {
			return false
		}
	}

	return true
}
