package card

import "iter"

// Sequence delivers the distinct cards in canonical order: every suit of
// Two, then every suit of Three, and so on through Ace, optionally followed
// by one joker per color.
type Sequence struct {
	rank   int
	suit   int
	jokers bool
}

// NewStandardSequence returns a sequence over the 52 suited cards
func NewStandardSequence() *Sequence {
	return &Sequence{}
}

// NewFullSequence returns a sequence over the 52 suited cards and the 2 jokers
func NewFullSequence() *Sequence {
	return &Sequence{jokers: true}
}

// Next returns the next card. The boolean is false once the sequence is
// exhausted, and stays false on every later call.
func (s *Sequence) Next() (Card, bool) {
	if s.rank >= len(Ranks) {
		return Card{}, false
	}

	if Ranks[s.rank] == Joker {
		if !s.jokers || s.suit >= len(Colors) {
			s.rank = len(Ranks)
			return Card{}, false
		}

		c := NewJoker(Colors[s.suit])
		s.suit++
		return c, true
	}

	c := New(Suits[s.suit], Ranks[s.rank])
	s.suit++
	if s.suit >= len(Suits) {
		s.suit = 0
		s.rank++
	}

	return c, true
}

// All returns an iterator over the cards remaining in the sequence
func (s *Sequence) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for {
			c, ok := s.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Standard returns an iterator over the 52 suited cards in canonical order.
// Each call starts from the beginning.
func Standard() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		NewStandardSequence().All()(yield)
	}
}

// Full returns an iterator over the 52 suited cards followed by the black
// and red jokers. Each call starts from the beginning.
func Full() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		NewFullSequence().All()(yield)
	}
}
