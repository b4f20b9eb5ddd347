package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cards/internal/card"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display information about a card",
	Long: `Show displays a playing card next to its name, rank, suit and color.
Cards are written the way they are printed: 2C, 10H, QS, AD, or B? and R?
for the jokers. Lower case and T for ten are accepted too.

Examples:
  cards show AS
  cards show 10h
  cards show R?`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		colored, _ := cmd.Flags().GetBool("color")
		displayCard(cmd.OutOrStdout(), c, colored)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("color", !colorize.NoColor, "Use colors (on by default in a terminal)")
}

var suitSymbols = map[card.Suit]string{
	card.Clubs:    "♣",
	card.Diamonds: "♦",
	card.Hearts:   "♥",
	card.Spades:   "♠",
}

// symbol returns the symbol drawn on the card face
func symbol(c card.Card) string {
	if suit, ok := c.Suit(); ok {
		return suitSymbols[suit]
	}

	return "★"
}

// cardArt draws a small framed card
func cardArt(c card.Card) []string {
	const inner = 9

	rank := c.Rank().String()
	sym := symbol(c)

	top := rank + sym
	bottom := sym + rank
	pad := func(s string, left bool) string {
		fill := strings.Repeat(" ", inner-utf8.RuneCountInString(s))
		if left {
			return s + fill
		}
		return fill + s
	}
	center := strings.Repeat(" ", (inner-1)/2) + sym + strings.Repeat(" ", inner/2)
	blank := strings.Repeat(" ", inner)

	return []string{
		"┌" + strings.Repeat("─", inner) + "┐",
		"│" + pad(top, true) + "│",
		"│" + blank + "│",
		"│" + center + "│",
		"│" + blank + "│",
		"│" + pad(bottom, false) + "│",
		"└" + strings.Repeat("─", inner) + "┘",
	}
}

// displayCard prints the card art with the card information to its right
func displayCard(w io.Writer, c card.Card, colored bool) {
	label := colorize.New(colorize.FgCyan)
	value := colorize.New(colorize.FgHiWhite)
	art := colorize.New(colorize.FgHiWhite)
	if c.Color() == card.Red {
		art = colorize.New(colorize.FgHiRed)
	}

	for _, col := range []*colorize.Color{label, value, art} {
		if colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}

	infoLines := []string{
		label.Sprint("Card:  ") + value.Sprint(c.Name()),
		label.Sprint("Code:  ") + value.Sprint(c.String()),
		label.Sprint("Rank:  ") + value.Sprint(c.Rank().Name()),
	}

	if suit, ok := c.Suit(); ok {
		infoLines = append(infoLines, label.Sprint("Suit:  ")+value.Sprintf("%s · %s", suit.Name(), suitSymbols[suit]))
	}

	infoLines = append(infoLines, label.Sprint("Color: ")+value.Sprint(c.Color().Name()))

	artLines := cardArt(c)
	const spacing = 4

	fmt.Fprintln(w)

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		line := "  "
		if i < len(artLines) {
			line += art.Sprint(artLines[i])
		} else {
			line += strings.Repeat(" ", utf8.RuneCountInString(artLines[0]))
		}

		if i < len(infoLines) {
			line += strings.Repeat(" ", spacing) + infoLines[i]
		}

		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	fmt.Fprintln(w)
}
