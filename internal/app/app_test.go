package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testReporter struct {
	infos      []string
	warns      []string
	progressed int
}

func (r *testReporter) Info(msg string)          { r.infos = append(r.infos, msg) }
func (r *testReporter) Progress(done, total int) { r.progressed++ }
func (r *testReporter) Warn(subject, msg string) { r.warns = append(r.warns, subject+": "+msg) }

func recipeDoc(title string) string {
	return `<html><body>
<h1 itemprop="name">` + title + `</h1>
<p itemprop="recipeCategory">Dinner</p>
<p itemprop="recipeIngredient">1 cup rice</p>
<div itemprop="recipeInstructions">Cook the rice.</div>
</body></html>`
}

func writeSource(t *testing.T, root, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunConvertsTree(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "notes")
	writeSource(t, src, "soup.html", recipeDoc("Chicken Soup"))
	writeSource(t, src, "toast.html", recipeDoc("Toast"))
	writeSource(t, src, "broken.html", "<html><body><p>no markers</p></body></html>")
	writeSource(t, src, "index.html", recipeDoc("Should Be Skipped"))

	rep := &testReporter{}
	a := New(Config{SourceDir: src, OutputDir: out, ProgressEvery: 1}, rep)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range []string{"Chicken_Soup.html", "Toast.html", ContentsFilename} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "Should_Be_Skipped.html")); err == nil {
		t.Error("index.html should have been skipped")
	}

	if len(rep.warns) != 1 || !strings.Contains(rep.warns[0], "broken.html") {
		t.Errorf("warns = %v, want one for broken.html", rep.warns)
	}
	if rep.progressed != 2 {
		t.Errorf("progress reported %d times, want 2", rep.progressed)
	}

	note, err := os.ReadFile(filepath.Join(out, "Chicken_Soup.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(note), "<h1>Chicken Soup</h1>") {
		t.Error("note missing recipe title")
	}
	toc, err := os.ReadFile(filepath.Join(out, ContentsFilename))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(toc), ">Chicken Soup<") || !strings.Contains(string(toc), ">Toast<") {
		t.Error("table of contents missing entries")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "notes")
	writeSource(t, src, "soup.html", recipeDoc("Chicken Soup"))

	cfg := Config{SourceDir: src, OutputDir: out}
	if err := New(cfg, &testReporter{}).Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(out, "Chicken_Soup.html"))
	if err != nil {
		t.Fatal(err)
	}
	if err := New(cfg, &testReporter{}).Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(out, "Chicken_Soup.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("reruns produced different note output")
	}
}

// Colliding safe filenames overwrite silently; the run still succeeds.
func TestRunFilenameCollision(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "notes")
	writeSource(t, src, "one.html", recipeDoc("???"))
	writeSource(t, src, "two.html", recipeDoc("? ? ?"))

	rep := &testReporter{}
	if err := New(Config{SourceDir: src, OutputDir: out}, rep).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 {
		t.Errorf("output = %v, want untitled_recipe.html plus the table of contents", names)
	}
	if _, err := os.Stat(filepath.Join(out, "untitled_recipe.html")); err != nil {
		t.Errorf("missing untitled_recipe.html: %v", err)
	}
	if len(rep.warns) != 0 {
		t.Errorf("unexpected warns: %v", rep.warns)
	}
}

func TestRunMissingSource(t *testing.T) {
	a := New(Config{SourceDir: filepath.Join(t.TempDir(), "nope"), OutputDir: t.TempDir()}, &testReporter{})
	if err := a.Run(context.Background()); !errors.Is(err, ErrSourceMissing) {
		t.Errorf("Run = %v, want ErrSourceMissing", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "notes")
	writeSource(t, src, "soup.html", recipeDoc("Chicken Soup"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(Config{SourceDir: src, OutputDir: out}, &testReporter{}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "Chicken_Soup.html")); err == nil {
		t.Error("cancelled run should not have extracted records")
	}
	if _, err := os.Stat(filepath.Join(out, ContentsFilename)); err != nil {
		t.Errorf("table of contents still written on cancel: %v", err)
	}
}

func TestRunWritesPDFIndex(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "notes")
	writeSource(t, src, "soup.html", recipeDoc("Chicken Soup"))

	cfg := Config{SourceDir: src, OutputDir: out, EnablePDF: true}
	if err := New(cfg, &testReporter{}).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(out, IndexPDFFilename))
	if err != nil {
		t.Fatalf("missing PDF index: %v", err)
	}
	if !strings.HasPrefix(string(b), "%PDF") {
		t.Error("index file is not a PDF document")
	}
}
