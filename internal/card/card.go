package card

import (
	"cmp"
	"fmt"
)

type shape uint8

// shapes in declaration order; suited cards sort before jokers
const (
	suitCard shape = iota
	jokerCard
)

// Card is a playing card. It is either a suited card (a suit and a non-joker
// rank) or a joker of a given color. The zero value is the Two of Clubs.
// Cards are plain values and can be compared with ==.
type Card struct {
	shape shape
	suit  Suit
	rank  Rank
	color Color
}

// New returns the suited card of the given suit and rank.
// It panics if rank is Joker; use NewJoker for jokers.
func New(suit Suit, rank Rank) Card {
	if rank == Joker {
		panic(fmt.Sprintf("card: cannot create a %s with rank Joker, use NewJoker", suit.Name()))
	}

	return Card{
		shape: suitCard,
		suit:  suit,
		rank:  rank,
	}
}

// NewJoker returns the joker of the given color
func NewJoker(color Color) Card {
	return Card{
		shape: jokerCard,
		rank:  Joker,
		color: color,
	}
}

// Rank returns the rank of the card. Every joker has rank Joker.
func (c Card) Rank() Rank {
	if c.shape == jokerCard {
		return Joker
	}

	return c.rank
}

// Suit returns the suit of the card. The boolean is false for jokers,
// which have no suit.
func (c Card) Suit() (Suit, bool) {
	if c.shape == jokerCard {
		return 0, false
	}

	return c.suit, true
}

// Color returns the color of the card: the suit color for suited cards, and
// the joker's own color for jokers.
func (c Card) Color() Color {
	if c.shape == jokerCard {
		return c.color
	}

	return c.suit.Color()
}

// IsJoker returns true if the card is a joker
func (c Card) IsJoker() bool {
	return c.shape == jokerCard
}

// String renders a suited card as <rank><suit> (AS, 10H) and a joker as
// <color>? (B?, R?)
func (c Card) String() string {
	if c.shape == jokerCard {
		return c.color.String() + Joker.String()
	}

	return c.rank.String() + c.suit.String()
}

// Name returns a human readable name (e.g., Ten of Hearts, Red Joker)
func (c Card) Name() string {
	if c.shape == jokerCard {
		return c.color.Name() + " Joker"
	}

	return fmt.Sprintf("%s of %s", c.rank.Name(), c.suit.Name())
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b. Suited cards sort before jokers and are ordered by suit, then
// rank. Jokers are ordered by color.
func Compare(a, b Card) int {
	if a.shape != b.shape {
		return cmp.Compare(a.shape, b.shape)
	}

	if a.shape == jokerCard {
		return cmp.Compare(a.color, b.color)
	}

	if c := cmp.Compare(a.suit, b.suit); c != 0 {
		return c
	}

	return cmp.Compare(a.rank, b.rank)
}
