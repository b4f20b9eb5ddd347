package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/cards/internal/config"
	"github.com/arcanaland/cards/internal/deck"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command. Called without a subcommand it prints
// a full deck, shuffled unless the bare argument is given.
var RootCmd = &cobra.Command{
	Use:   "cards [bare]",
	Short: "Tool for building, shuffling and managing decks of playing cards",
	Long: `Cards is a command-line tool for decks of playing cards.

Run without arguments it prints a shuffled 54 card deck, one card per line.
Pass "bare" to print the deck in its canonical order instead. Decks can also
be saved to a deck library and drawn from, merged and shuffled over time.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogger(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := driverDeck(args)
		if err != nil {
			return err
		}

		return printDeck(cmd, d)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	RootCmd.Flags().BoolP("wide", "w", false, "Lay the cards out across the terminal instead of one per line")
	RootCmd.Flags().Bool("color", false, "Print red cards in red")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// driverDeck builds the full deck printed by the root command
func driverDeck(args []string) (*deck.Deck, error) {
	d := deck.Full()

	if len(args) == 0 {
		d.Shuffle()
		return d, nil
	}

	if args[0] != "bare" {
		return nil, fmt.Errorf("unknown argument %q (usage: cards [bare])", args[0])
	}

	return d, nil
}

func setupLogger(verbose bool) {
	logrus.SetOutput(os.Stderr)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Warn("could not load config")
		return
	}

	if cfg.LogLevel == "" {
		return
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("could not parse log level")
		return
	}

	logrus.SetLevel(level)
}
