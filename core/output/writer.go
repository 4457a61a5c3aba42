// Package output handles the deterministic directory layout and file
// writing for coursepack. Each module document lands at
// <output>/<NN>-<path-slug>/<NN>-<module-slug><ext>, where NN is the
// 1-based, zero-padded catalog position.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// maxSlugLen caps slug length so titles cannot overflow path limits.
const maxSlugLen = 60

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data at relPath (plus extension) under the output directory,
// creating parent directories as needed. Returns the written path.
func (w *Writer) Write(relPath string, data []byte, ext string) (string, error) {
	fullPath := filepath.Join(w.OutputDir, filepath.FromSlash(relPath)+ext)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", fullPath, err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// ModulePath builds the relative output path for one module from the
// 1-based learning-path and module positions and their titles. Positions
// come from catalog order, so paths are collision-free within a course.
func ModulePath(pathIndex int, pathTitle string, moduleIndex int, moduleTitle string) string {
	return fmt.Sprintf("%02d-%s/%02d-%s",
		pathIndex, Slugify(pathTitle),
		moduleIndex, Slugify(moduleTitle))
}

// Slugify turns a title into a filesystem-safe slug: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, trimmed, length-capped.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if runes := []rune(slug); len(runes) > maxSlugLen {
		slug = strings.Trim(string(runes[:maxSlugLen]), "-")
	}
	if slug == "" {
		return "untitled"
	}
	return slug
}
