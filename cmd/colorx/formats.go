package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorx/internal/color"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List accepted color notations",
	Long:  `Shows every notation colorx can read and write, in detection order.`,
	Run:   runFormats,
}

func runFormats(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	infos := color.Notations()

	fmt.Fprintln(out, "Available formats:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	maxTitleLen := 5
	for _, n := range infos {
		if l := len(n.Notation.String()); l > maxNameLen {
			maxNameLen = l
		}
		if len(n.Title) > maxTitleLen {
			maxTitleLen = len(n.Title)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxNameLen, "Name", maxTitleLen, "Title", "Example")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxNameLen, "----", maxTitleLen, "-----", "-------")

	for _, n := range infos {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxNameLen, n.Notation, maxTitleLen, n.Title, n.Example)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'colorx -o <name> <color>' to convert a color.")
}
