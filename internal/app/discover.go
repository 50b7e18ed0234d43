package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrSourceMissing is returned when the source directory does not exist.
// It is the only fatal error in the pipeline.
var ErrSourceMissing = errors.New("source directory does not exist")

// Discover walks root recursively and returns every file with a ".html"
// extension, skipping any file literally named "index.html" regardless of
// case. The walk order is lexical, so discovery order is deterministic.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, root)
	}
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ".html") {
			return nil
		}
		if strings.EqualFold(name, "index.html") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}
