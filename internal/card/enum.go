package card

import "strconv"

// Suit represents a card suit
type Suit uint8

// suit constants, in declaration order
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in declaration order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitGlyphs = [...]string{"C", "D", "H", "S"}

var suitNames = [...]string{"Clubs", "Diamonds", "Hearts", "Spades"}

func (s Suit) String() string {
	return suitGlyphs[s]
}

// Name returns the English name of the suit (e.g., Spades)
func (s Suit) Name() string {
	return suitNames[s]
}

// Color returns the color of the suit
func (s Suit) Color() Color {
	switch s {
	case Diamonds, Hearts:
		return Red
	default:
		return Black
	}
}

// Rank represents a card rank. Joker is always the highest rank.
type Rank uint8

// rank constants, lowest to highest
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Joker
)

// Ranks lists every rank, Joker included, lowest to highest
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace, Joker}

// SuitRanks lists the ranks a suited card can have
var SuitRanks = Ranks[:len(Ranks)-1]

// glyphs for the ranks from Jack upward
var faceGlyphs = [...]string{"J", "Q", "K", "A", "?"}

var rankNames = [...]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Jack", "Queen", "King", "Ace", "Joker",
}

// String renders numeric ranks as their decimal value (2-10) and the others
// as a single letter. Joker renders as "?".
func (r Rank) String() string {
	if r >= Jack {
		return faceGlyphs[r-Jack]
	}

	return strconv.Itoa(int(r) + 2)
}

// Name returns the English name of the rank (e.g., Queen)
func (r Rank) Name() string {
	return rankNames[r]
}

// Color is the color of a suit, and the identity of a joker
type Color uint8

// color constants, in declaration order
const (
	Black Color = iota
	Red
)

// Colors lists every color in declaration order
var Colors = []Color{Black, Red}

var colorGlyphs = [...]string{"B", "R"}

var colorNames = [...]string{"Black", "Red"}

func (c Color) String() string {
	return colorGlyphs[c]
}

// Name returns the English name of the color
func (c Color) Name() string {
	return colorNames[c]
}
