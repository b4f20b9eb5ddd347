package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a string does not describe a card
var ErrInvalidCard = errors.New("invalid card")

// Parse returns the card described by s, in the format produced by
// Card.String(): <rank><suit> (2C, 10H, AS) or <color>? for jokers (B?, R?).
// Parsing is case-insensitive and also accepts T for Ten.
func Parse(s string) (Card, error) {
	str := strings.ToUpper(strings.TrimSpace(s))
	if len(str) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	head, tail := str[:len(str)-1], str[len(str)-1:]

	if tail == Joker.String() {
		for _, color := range Colors {
			if head == color.String() {
				return NewJoker(color), nil
			}
		}

		return Card{}, fmt.Errorf("%w: unknown joker color in %q", ErrInvalidCard, s)
	}

	suit, ok := parseSuit(tail)
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	rank, ok := parseRank(head)
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	return New(suit, rank), nil
}

func parseSuit(s string) (Suit, bool) {
	for _, suit := range Suits {
		if s == suit.String() {
			return suit, true
		}
	}

	return 0, false
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "T":
		return Ten, true
	}

	for _, rank := range SuitRanks {
		if s == rank.String() {
			return rank, true
		}
	}

	return 0, false
}

// MarshalText implements encoding.TextMarshaler
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// ParseList parses a comma separated list of cards (e.g., 2C,10H,R?)
func ParseList(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		c, err := Parse(part)
		if err != nil {
			return nil, err
		}

		cards[i] = c
	}

	return cards, nil
}

// FormatList renders cards as a comma separated list, the inverse of ParseList
func FormatList(cards []Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.String()
	}

	return strings.Join(s, ",")
}
