package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/cards/internal/card"
	"github.com/arcanaland/cards/internal/config"
	"github.com/arcanaland/cards/internal/deck"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long: `Commands for managing saved decks in your deck library.

Commands that take an optional deck name use the default deck from your
config when none is given. A deck name is looked up in the deck library
(XDG_DATA_HOME/cards/decks) first, then treated as a path to a deck file.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'cards deck init' to create it.")
			return nil
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != config.DeckExt {
				continue
			}

			f, err := deck.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid deck, skip
				logrus.WithError(err).WithField("file", entry.Name()).Debug("skipping deck")
				continue
			}

			found++
			name := strings.TrimSuffix(entry.Name(), config.DeckExt)
			if name == defaultDeck {
				fmt.Fprintf(out, "* %s (%s, %d cards) [DEFAULT]\n", name, f.Deck.Name, len(f.Deck.Cards))
			} else {
				fmt.Fprintf(out, "  %s (%s, %d cards)\n", name, f.Deck.Name, len(f.Deck.Cards))
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "Create one with 'cards deck new [deck_name]'.")
		}

		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// deckNewCmd represents the deck new command
var deckNewCmd = &cobra.Command{
	Use:   "new [deck_name]",
	Short: "Create a new deck in your deck library",
	Long: `Create a new deck in your deck library. The deck holds the 52 standard
cards, plus the two jokers unless --standard is given or jokers are disabled
in your config. Use --empty to start with no cards at all.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		path := config.GetLibraryDeckPath(name)

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("deck %s already exists (use --force to replace it)", name)
		}

		d, err := newDeck(cmd)
		if err != nil {
			return err
		}

		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			d.Shuffle()
		}

		if err := deck.NewFile(name, d).Save(path); err != nil {
			return fmt.Errorf("error saving deck: %w", err)
		}

		logrus.WithFields(logrus.Fields{"path": path, "cards": d.Len()}).Debug("created deck")
		fmt.Fprintf(cmd.OutOrStdout(), "Created deck %s with %d cards\n", name, d.Len())
		return nil
	},
}

// newDeck builds the deck requested by the flags of deck new
func newDeck(cmd *cobra.Command) (*deck.Deck, error) {
	if empty, _ := cmd.Flags().GetBool("empty"); empty {
		return deck.New(), nil
	}

	if standard, _ := cmd.Flags().GetBool("standard"); standard {
		return deck.Standard(), nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if !cfg.Jokers {
		return deck.Standard(), nil
	}

	return deck.Full(), nil
}

// deckPrintCmd represents the deck print command
var deckPrintCmd = &cobra.Command{
	Use:   "print [deck_name]",
	Short: "Print the cards of a deck, bottom to top",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, f, d, err := openDeck(args)
		if err != nil {
			return err
		}

		if fingerprint, _ := cmd.Flags().GetBool("fingerprint"); fingerprint {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d cards) %s\n", f.Deck.Name, d.Len(), d.Fingerprint())
			return nil
		}

		if list, _ := cmd.Flags().GetBool("list"); list {
			fmt.Fprintln(cmd.OutOrStdout(), card.FormatList(d.Cards()))
			return nil
		}

		return printDeck(cmd, d)
	},
}

// deckDrawCmd represents the deck draw command
var deckDrawCmd = &cobra.Command{
	Use:   "draw [deck_name]",
	Short: "Draw cards from the top of a deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if n < 1 {
			return fmt.Errorf("count must be at least 1, got %d", n)
		}

		path, f, d, err := openDeck(args)
		if err != nil {
			return err
		}

		drawn := d.DrawN(n)
		if len(drawn) < n {
			fmt.Fprintf(cmd.ErrOrStderr(), "The deck ran out after %d of %d cards.\n", len(drawn), n)
		}

		if err := saveDeck(path, f, d); err != nil {
			return err
		}

		colored, _ := cmd.Flags().GetBool("color")
		return newRenderer(colored).lines(cmd.OutOrStdout(), drawn)
	},
}

// deckPutCmd represents the deck put command
var deckPutCmd = &cobra.Command{
	Use:   "put [deck_name] [card]...",
	Short: "Put cards on top of a deck",
	Long: `Put cards on top of a deck, in the order given. Cards are written the way
they are printed: 2C, 10H, QS, AD, or B? and R? for the jokers. An argument
may also hold a comma separated list, as printed by 'cards deck print --list'.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := make([]card.Card, 0, len(args)-1)
		for _, s := range args[1:] {
			parsed, err := card.ParseList(s)
			if err != nil {
				return err
			}
			cards = append(cards, parsed...)
		}

		path, f, d, err := openDeck(args[:1])
		if err != nil {
			return err
		}

		for _, c := range cards {
			d.Put(c)
		}

		if err := saveDeck(path, f, d); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Put %d cards on %s, now %d cards\n", len(cards), args[0], d.Len())
		return nil
	},
}

// deckMergeCmd represents the deck merge command
var deckMergeCmd = &cobra.Command{
	Use:   "merge [dest_deck] [source_deck]",
	Short: "Move every card of the source deck onto the top of the destination deck",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dstPath, dstFile, dst, err := openDeck(args[:1])
		if err != nil {
			return err
		}

		srcPath, srcFile, src, err := openDeck(args[1:])
		if err != nil {
			return err
		}

		if dstPath == srcPath {
			return fmt.Errorf("cannot merge deck %s into itself", args[0])
		}

		moved := src.Len()
		dst.Append(src)

		if err := saveDeck(dstPath, dstFile, dst); err != nil {
			return err
		}

		if err := saveDeck(srcPath, srcFile, src); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Moved %d cards from %s to %s, now %d cards\n", moved, args[1], args[0], dst.Len())
		return nil
	},
}

// deckShuffleCmd represents the deck shuffle command
var deckShuffleCmd = &cobra.Command{
	Use:   "shuffle [deck_name]",
	Short: "Shuffle a deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return modifyDeck(cmd, args, "Shuffled", (*deck.Deck).Shuffle)
	},
}

// deckReverseCmd represents the deck reverse command
var deckReverseCmd = &cobra.Command{
	Use:   "reverse [deck_name]",
	Short: "Reverse the order of a deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return modifyDeck(cmd, args, "Reversed", (*deck.Deck).Reverse)
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		// Try to load the deck to make sure it's valid
		if _, _, _, err := openDeck(args); err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

// openDeck resolves and loads the deck named by args[0], or the default deck
func openDeck(args []string) (string, *deck.File, *deck.Deck, error) {
	var deckName string
	if len(args) > 0 {
		deckName = args[0]
	} else {
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return "", nil, nil, fmt.Errorf("error getting default deck: %w", err)
		}
		deckName = defaultDeck
	}

	path, err := config.GetDeckPath(deckName)
	if err != nil {
		return "", nil, nil, err
	}

	f, err := deck.Load(path)
	if err != nil {
		return "", nil, nil, fmt.Errorf("error loading deck: %w", err)
	}

	d, err := f.Cards()
	if err != nil {
		return "", nil, nil, fmt.Errorf("error loading deck %s: %w", deckName, err)
	}

	return path, f, d, nil
}

func saveDeck(path string, f *deck.File, d *deck.Deck) error {
	f.SetCards(d)
	if err := f.Save(path); err != nil {
		return fmt.Errorf("error saving deck: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": path, "cards": d.Len()}).Debug("saved deck")
	return nil
}

func modifyDeck(cmd *cobra.Command, args []string, verb string, modify func(*deck.Deck)) error {
	path, f, d, err := openDeck(args)
	if err != nil {
		return err
	}

	modify(d)

	if err := saveDeck(path, f, d); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d cards)\n", verb, f.Deck.Name, d.Len())
	return nil
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckInitCmd)
	deckCmd.AddCommand(deckNewCmd)
	deckCmd.AddCommand(deckPrintCmd)
	deckCmd.AddCommand(deckDrawCmd)
	deckCmd.AddCommand(deckPutCmd)
	deckCmd.AddCommand(deckMergeCmd)
	deckCmd.AddCommand(deckShuffleCmd)
	deckCmd.AddCommand(deckReverseCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)

	deckNewCmd.Flags().Bool("standard", false, "Leave out the jokers")
	deckNewCmd.Flags().Bool("empty", false, "Create the deck with no cards")
	deckNewCmd.Flags().BoolP("shuffle", "s", false, "Shuffle the new deck")
	deckNewCmd.Flags().BoolP("force", "f", false, "Replace an existing deck of the same name")

	deckPrintCmd.Flags().BoolP("wide", "w", false, "Lay the cards out across the terminal instead of one per line")
	deckPrintCmd.Flags().Bool("color", false, "Print red cards in red")
	deckPrintCmd.Flags().Bool("fingerprint", false, "Print a hash identifying the order of the deck instead of its cards")
	deckPrintCmd.Flags().BoolP("list", "l", false, "Print the cards on one line as a comma separated list")

	deckDrawCmd.Flags().IntP("count", "n", 1, "Number of cards to draw")
	deckDrawCmd.Flags().Bool("color", false, "Print red cards in red")
}
