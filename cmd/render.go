package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cards/internal/card"
	"github.com/arcanaland/cards/internal/deck"
)

// widest rendering is "10H", plus a space
const cellWidth = 4

// renderer prints cards, optionally coloring red cards
type renderer struct {
	red *colorize.Color
}

func newRenderer(colored bool) *renderer {
	r := &renderer{red: colorize.New(colorize.FgHiRed)}

	if colored {
		r.red.EnableColor()
	} else {
		r.red.DisableColor()
	}

	return r
}

func (r *renderer) card(c card.Card) string {
	if c.Color() == card.Red {
		return r.red.Sprint(c.String())
	}

	return c.String()
}

// lines prints one card per line
func (r *renderer) lines(w io.Writer, cards []card.Card) error {
	for _, c := range cards {
		if _, err := fmt.Fprintln(w, r.card(c)); err != nil {
			return err
		}
	}

	return nil
}

// grid prints as many cards per line as fit in width
func (r *renderer) grid(w io.Writer, cards []card.Card, width int) error {
	perLine := max(1, width/cellWidth)

	var line strings.Builder
	for i, c := range cards {
		// pad on the plain rendering so escape codes don't count
		line.WriteString(r.card(c))
		line.WriteString(strings.Repeat(" ", cellWidth-len(c.String())))

		if (i+1)%perLine == 0 || i == len(cards)-1 {
			if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
				return err
			}
			line.Reset()
		}
	}

	return nil
}

// terminalWidth returns the width of the terminal, or 80 if stdout is not one
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}

	return width
}

// printDeck prints d bottom to top according to the --wide and --color flags
func printDeck(cmd *cobra.Command, d *deck.Deck) error {
	wide, _ := cmd.Flags().GetBool("wide")
	colored, _ := cmd.Flags().GetBool("color")

	r := newRenderer(colored)
	if wide {
		return r.grid(cmd.OutOrStdout(), d.Cards(), terminalWidth())
	}

	return r.lines(cmd.OutOrStdout(), d.Cards())
}
