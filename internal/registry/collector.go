package registry

import (
	"fmt"
	"os"

	"clay/internal/discovery"
	"clay/internal/domain"
)

// Observer is notified while a root is collected
type Observer interface {
	// FilesFound is called once with the number of candidate source files
	FilesFound(root string, count int)
	// FileDone is called after each file; suite is nil if the file was dropped
	FileDone(file domain.SourceFile, suite *domain.Suite)
}

// Collector walks a root directory and builds its Model
type Collector struct {
	scanner  *discovery.Scanner
	matcher  *discovery.Matcher
	observer Observer
}

// NewCollector creates a new Collector. observer may be nil.
func NewCollector(scanner *discovery.Scanner, matcher *discovery.Matcher, observer Observer) *Collector {
	return &Collector{
		scanner:  scanner,
		matcher:  matcher,
		observer: observer,
	}
}

// Collect scans root, matches every source file and freezes the result.
// Any unreadable file aborts the collection.
func (c *Collector) Collect(root string) (*Model, error) {
	files, err := c.scanner.Scan(root)
	if err != nil {
		return nil, err
	}
	if c.observer != nil {
		c.observer.FilesFound(root, len(files))
	}

	builder := NewBuilder(root)
	for _, file := range files {
		content, err := os.ReadFile(file.Path)
		if err != nil {
			return nil, fmt.Errorf("error reading file %s: %w", file.Path, err)
		}

		suite, ok := builder.Add(file.SuiteName, c.matcher.Match(file.SuiteName, string(content)))
		if c.observer != nil {
			if ok {
				c.observer.FileDone(file, &suite)
			} else {
				c.observer.FileDone(file, nil)
			}
		}
	}

	return builder.Freeze()
}
