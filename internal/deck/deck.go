package deck

import (
	"crypto/sha256"
	"encoding/hex"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/cards/internal/card"
)

// Deck is an ordered collection of cards. The top of the deck is the last
// card in order; Draw and Put work on the top.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cards []card.Card
}

// New returns an empty deck
func New() *Deck {
	return &Deck{}
}

// WithCapacity returns an empty deck with room for n cards
func WithCapacity(n int) *Deck {
	return &Deck{cards: make([]card.Card, 0, n)}
}

// Standard returns an unshuffled deck of the 52 suited cards in canonical order
func Standard() *Deck {
	d := WithCapacity(52)
	d.cards = slices.AppendSeq(d.cards, card.Standard())
	return d
}

// Full returns an unshuffled deck of the 52 suited cards followed by the
// black and red jokers
func Full() *Deck {
	d := WithCapacity(54)
	d.cards = slices.AppendSeq(d.cards, card.Full())
	return d
}

// FromCards returns a deck holding a copy of cards, bottom first.
// The cards are not checked against any canonical set.
func FromCards(cards []card.Card) *Deck {
	return &Deck{cards: slices.Clone(cards)}
}

// All returns an iterator over the cards, bottom to top. The deck is not
// modified.
func (d *Deck) All() iter.Seq[card.Card] {
	return func(yield func(card.Card) bool) {
		for _, c := range d.cards {
			if !yield(c) {
				return
			}
		}
	}
}

// Cards returns a copy of the cards, bottom first
func (d *Deck) Cards() []card.Card {
	return slices.Clone(d.cards)
}

// IntoCards hands the cards to the caller and leaves the deck empty
func (d *Deck) IntoCards() []card.Card {
	cards := d.cards
	d.cards = nil
	return cards
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Shuffle puts the cards in a uniformly random order using a source seeded
// from system entropy
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), d.swap)
}

// ShuffleWith puts the cards in a random order drawn from rng.
// This should only be used when a reproducible order is needed.
func (d *Deck) ShuffleWith(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), d.swap)
}

func (d *Deck) swap(i, j int) {
	d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
}

// Draw removes and returns the top card.
// If the deck is empty, the boolean is false.
func (d *Deck) Draw() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}

	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// DrawN draws up to n cards, top card first
func (d *Deck) DrawN(n int) []card.Card {
	n = max(0, min(n, len(d.cards)))
	drawn := make([]card.Card, 0, n)
	for range n {
		c, _ := d.Draw()
		drawn = append(drawn, c)
	}

	return drawn
}

// Put places c on top of the deck
func (d *Deck) Put(c card.Card) {
	d.cards = append(d.cards, c)
}

// Append moves the cards of other onto the top of this deck, keeping their
// order. other is left empty. Appending a deck to itself does nothing.
func (d *Deck) Append(other *Deck) {
	if other == nil || other == d {
		return
	}

	d.cards = append(d.cards, other.cards...)
	other.cards = nil
}

// Reverse reverses the order of the cards
func (d *Deck) Reverse() {
	slices.Reverse(d.cards)
}

// Fingerprint returns a SHA-256 hash of the deck's cards, in order
func (d *Deck) Fingerprint() string {
	hash := sha256.New()
	for _, c := range d.cards {
		_, _ = hash.Write([]byte(c.String()))
		_, _ = hash.Write([]byte{','})
	}

	return hex.EncodeToString(hash.Sum(nil))
}
