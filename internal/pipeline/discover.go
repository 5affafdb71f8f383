package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rostersrt/internal/roster"
)

// Discover returns the supported roster collections in dir, sorted by name.
// Hidden files and subdirectories are ignored.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("discover inputs in %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if _, err := roster.FormatForPath(name); err != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// OutputPath is the artifact path for input: its base name without extension
// plus suffix, inside outputDir.
func OutputPath(outputDir, input, suffix string) string {
	return filepath.Join(outputDir, baseName(input)+suffix)
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
