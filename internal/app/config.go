package app

import "github.com/notefold/paprika2notes/internal/normalize"

// DefaultOutputDir is the output location used when no flag or file config
// overrides it.
const DefaultOutputDir = "./apple_notes_recipes"

// DefaultProgressEvery is the record interval between progress lines.
const DefaultProgressEvery = 50

// Config holds runtime configuration for one conversion run.
type Config struct {
	SourceDir string
	OutputDir string

	// ProgressEvery controls how often a progress line is reported while
	// writing notes. Zero falls back to DefaultProgressEvery.
	ProgressEvery int

	// EnablePDF also writes a printable PDF index next to the table of
	// contents.
	EnablePDF bool

	Verbose bool

	// Synonyms are extra category rules consulted after the built-in table.
	Synonyms []normalize.SynonymRule
}
