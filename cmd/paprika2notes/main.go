package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/notefold/paprika2notes/internal/app"
)

var (
	flagOutput  string
	flagConfig  string
	flagPDF     bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "paprika2notes <source-dir>",
	Short: "Convert Paprika recipe exports into Apple Notes-ready HTML",
	Long: `paprika2notes converts a directory tree of Paprika recipe HTML exports into
clean, self-contained HTML notes suitable for bulk import into Apple Notes,
plus a generated table of contents.

Examples:
  paprika2notes ~/Paprika/export
  paprika2notes ~/Paprika/export -o ./notes --pdf`,
	Args:          cobra.ExactArgs(1),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", app.DefaultOutputDir, "Output directory for converted files")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Optional YAML/JSON config file")
	rootCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Also write a printable PDF index")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		SourceDir: args[0],
		OutputDir: flagOutput,
		EnablePDF: flagPDF,
		Verbose:   flagVerbose,
	}
	if flagConfig != "" {
		fc, err := app.LoadConfigFile(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	return app.New(cfg, nil).Run(cmd.Context())
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
