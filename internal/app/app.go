// Package app orchestrates one conversion run: discover export files,
// extract a record from each, render every record to a note document, and
// write the table of contents last. Only a missing source directory is
// fatal; every per-item failure is reported and skipped.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/notefold/paprika2notes/internal/extract"
	"github.com/notefold/paprika2notes/internal/recipe"
	"github.com/notefold/paprika2notes/internal/render"
)

// ContentsFilename is the table-of-contents document, named to sort before
// every recipe note.
const ContentsFilename = "00_Recipe_Collection_Table_of_Contents.html"

// IndexPDFFilename is the optional printable index.
const IndexPDFFilename = "00_Recipe_Collection_Index.pdf"

type App struct {
	cfg Config
	rep Reporter
	ext *extract.Extractor
}

// New creates an App. A nil reporter falls back to the console reporter.
func New(cfg Config, rep Reporter) *App {
	if rep == nil {
		rep = &ConsoleReporter{}
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = DefaultProgressEvery
	}
	return &App{cfg: cfg, rep: rep, ext: extract.New(cfg.Synonyms...)}
}

// Run executes the full conversion sequentially: each file is read, parsed,
// and rendered independently, and the summary document is built from the
// accumulated records at the end.
func (a *App) Run(ctx context.Context) error {
	files, err := Discover(a.cfg.SourceDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	a.rep.Info(fmt.Sprintf("Converting recipes from %s to %s", a.cfg.SourceDir, a.cfg.OutputDir))
	a.rep.Info(fmt.Sprintf("Found %d recipe files", len(files)))

	records := a.extractAll(ctx, files)
	a.rep.Info(fmt.Sprintf("Successfully parsed %d recipes", len(records)))

	a.writeNotes(records)
	a.writeContents(records)
	a.summary(len(files), len(records))
	return nil
}

// extractAll parses every discovered file, dropping files that fail to
// parse or yield no usable title.
func (a *App) extractAll(ctx context.Context, files []string) []recipe.Record {
	records := make([]recipe.Record, 0, len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			return records
		}
		data, err := os.ReadFile(path)
		if err != nil {
			a.rep.Warn(filepath.Base(path), "read failed: "+err.Error())
			continue
		}
		rec, err := a.ext.FromHTML(data)
		if err != nil {
			a.rep.Warn(filepath.Base(path), "parse failed: "+err.Error())
			continue
		}
		if rec.Title == "" {
			a.rep.Warn(filepath.Base(path), "could not parse title")
			continue
		}
		log.Debug().Str("file", filepath.Base(path)).Str("recipe", rec.Title).Msg("extracted")
		records = append(records, rec)
	}
	return records
}

// writeNotes renders each record to <safe-title>.html. Write failures are
// reported per record and never abort the batch; colliding filenames
// silently overwrite.
func (a *App) writeNotes(records []recipe.Record) {
	for i, rec := range records {
		out := filepath.Join(a.cfg.OutputDir, SafeFilename(rec.Title)+".html")
		if err := os.WriteFile(out, []byte(render.Note(rec)), 0o644); err != nil {
			a.rep.Warn(rec.Title, "write failed: "+err.Error())
			continue
		}
		if (i+1)%a.cfg.ProgressEvery == 0 {
			a.rep.Progress(i+1, len(records))
		}
	}
}

// writeContents writes the table of contents after every note, plus the
// optional PDF index.
func (a *App) writeContents(records []recipe.Record) {
	tocPath := filepath.Join(a.cfg.OutputDir, ContentsFilename)
	if err := os.WriteFile(tocPath, []byte(render.Contents(records)), 0o644); err != nil {
		a.rep.Warn(ContentsFilename, "write failed: "+err.Error())
	}
	if a.cfg.EnablePDF {
		pdfPath := filepath.Join(a.cfg.OutputDir, IndexPDFFilename)
		if err := render.ContentsPDF(records, pdfPath); err != nil {
			a.rep.Warn(IndexPDFFilename, "write failed: "+err.Error())
		}
	}
}

func (a *App) summary(found, parsed int) {
	a.rep.Info("")
	a.rep.Info("Conversion complete!")
	a.rep.Info(fmt.Sprintf("Discovered %d files, generated %d recipe notes in %s", found, parsed, a.cfg.OutputDir))
	a.rep.Info("To import into Apple Notes:")
	a.rep.Info("1. Open Apple Notes")
	a.rep.Info("2. Select a folder or create a new one")
	a.rep.Info("3. Go to File > Import to Notes")
	a.rep.Info(fmt.Sprintf("4. Select the folder: %s", a.cfg.OutputDir))
	a.rep.Info("5. Check 'Preserve folder structure on import' if desired")
}
