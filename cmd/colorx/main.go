// colorx converts colors between hexadecimal, functional RGBA and
// fractional percent notations.
//
// Usage:
//
//	colorx <color>              - Convert a color (same as "colorx convert")
//	colorx convert <color>      - Convert a color to the --output notation
//	colorx formats              - List accepted notations
//	colorx history              - Show recent conversions
//	colorx interactive          - Live converter in the terminal
//	colorx serve                - Serve the live converter over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.colorx/config.yaml)
//	--db <path>         - History database (default: ~/.colorx/history.db)
//	--no-history        - Do not record conversions
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorx/internal/config"
	"github.com/vovakirdan/colorx/internal/converter"
	"github.com/vovakirdan/colorx/internal/logging"
	"github.com/vovakirdan/colorx/internal/storage"
)

const version = "1.0.0"

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagNoHistory bool
	flagLogLevel  string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "colorx [color]",
	Short:   "Transforms colors into other formats",
	Version: version,
	Long: `colorx converts a color written as hex, rgb()/rgba() or percent
into any of those notations.

Accepted input:
  #rgb, #rgba, #rrggbb, #rrggbbaa
  rgb(R, G, B), rgba(R, G, B, A)    R,G,B in 0-255, A in 0-1
  %R, G, B, A                       every field in 0-1, alpha required

Examples:
  colorx "#1e90ff"
  colorx -o rgba "#1e90ff80"
  colorx -o percent "rgb(30, 144, 255)"
  colorx -o hex "%0.118, 0.565, 1, 1"
  colorx interactive`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runConvert(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record conversions")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	addConvertFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads configuration and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		loaded.History.DBPath = flagDBPath
	}
	if flagNoHistory {
		loaded.History.Enabled = false
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, _ := loaded.LogLevel()
	cfg = loaded
	logger = logging.New("colorx", level)
	return nil
}

// openHistory opens the history store when history is enabled.
// A store that cannot be opened is logged and treated as disabled.
func openHistory() *storage.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.History.DBPath, "error", err)
		return nil
	}
	return store
}

// newService builds a conversion service recording into store, if any.
func newService(store *storage.Store) *converter.Service {
	svc := converter.New(logger)
	if store != nil {
		svc.SetRecorder(store)
	}
	return svc
}
