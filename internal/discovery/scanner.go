package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clay/internal/domain"
)

// SuiteSeparator joins path components into an internal suite name
const SuiteSeparator = "_"

// Scanner finds test source files under a root directory
type Scanner struct {
	extension string
	filter    *Filter
	reserved  map[string]bool
}

// NewScanner creates a new Scanner for files with the given extension.
// Reserved names are files at the top of the root that are never treated as
// test sources, such as the generator's own output.
func NewScanner(extension string, filter *Filter, reserved ...string) *Scanner {
	reservedMap := make(map[string]bool)
	for _, name := range reserved {
		reservedMap[name] = true
	}
	return &Scanner{
		extension: extension,
		filter:    filter,
		reserved:  reservedMap,
	}
}

// Scan finds all test source files in the given root directory.
//
// Files are returned depth first in lexical order, so the result is stable
// for an unchanged tree.
func (s *Scanner) Scan(root string) ([]domain.SourceFile, error) {
	var files []domain.SourceFile

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.filter.Excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), s.extension) {
			return nil
		}
		if s.reserved[rel] || s.filter.Excluded(rel) {
			return nil
		}

		files = append(files, domain.SourceFile{
			Path:      path,
			RelPath:   rel,
			SuiteName: SuiteName(rel, s.extension),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return files, nil
}

// SuiteName derives the internal suite name of a slash separated path
// relative to the scanned root: "core/vector.c" becomes "core_vector".
func SuiteName(relPath, extension string) string {
	parts := strings.Split(strings.TrimSuffix(relPath, extension), "/")
	return strings.Join(parts, SuiteSeparator)
}
