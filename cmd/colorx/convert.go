package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorx/internal/color"
	"github.com/vovakirdan/colorx/internal/converter"
	"github.com/vovakirdan/colorx/internal/platform/tui"
)

var (
	flagOutput string
	flagQuiet  bool
	flagSwatch bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to another notation",
	Long: `Convert a single color. The input notation is detected from its shape;
the output notation is chosen with --output.

Examples:
  colorx convert "#fff"                       # #ffffffff
  colorx convert -o rgba "#fff8"              # rgba(255, 255, 255, 0.533)
  colorx convert -o percent "rgb(255, 0, 128)"
  colorx convert -q -o hex "%1,0,0.5,1"       # prints only #ff0080ff`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	addConvertFlags(convertCmd)
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "The transformed output format: hex, rgb, rgba or percent (default from config)")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print only the converted color")
	cmd.Flags().BoolVar(&flagSwatch, "swatch", false, "Draw a swatch of the color below the result")
}

// targetNotation resolves --output, falling back to the configured default.
func targetNotation() (color.Notation, error) {
	if flagOutput != "" {
		return color.ParseNotation(flagOutput)
	}
	return cfg.OutputNotation()
}

func runConvert(cmd *cobra.Command, args []string) error {
	target, err := targetNotation()
	if err != nil {
		return err
	}

	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	res, err := newService(store).Convert(args[0], target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeResult(out, res, flagQuiet)

	if flagSwatch {
		width := 24
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < width {
			width = w
		}
		fmt.Fprintln(out, tui.RenderSwatch(res.Color, width, 3))
	}
	return nil
}

// writeResult prints a conversion report.
func writeResult(w io.Writer, res converter.Result, quiet bool) {
	if quiet {
		fmt.Fprintln(w, res.Output)
		return
	}
	fmt.Fprintf(w, "Input: %s\n", res.Input)
	fmt.Fprintf(w, "Target: %s\n", res.Target)
	fmt.Fprintf(w, "Output: %s\n", res.Output)
}
