package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorx/internal/platform/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Convert colors live in the terminal",
	Long: `Start the interactive converter. Every keystroke re-parses the input
and previews it in all notations next to a color swatch.

Controls:
  Tab / Shift+Tab  - Select output format
  Enter            - Save the conversion to history
  Ctrl+R           - Browse history
  Esc / Ctrl+C     - Quit

Examples:
  colorx interactive
  colorx interactive -o percent
  colorx interactive --no-history`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Initially selected output format (default from config)")
}

func runInteractive(_ *cobra.Command, _ []string) error {
	target, err := targetNotation()
	if err != nil {
		return err
	}

	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return tui.Run(newService(store), store, target, width, height)
}
