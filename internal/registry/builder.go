package registry

import (
	"errors"
	"fmt"
	"iter"

	"clay/internal/domain"
)

// ErrNoTests is returned when a scanned root does not define any suite
var ErrNoTests = errors.New("no tests found")

// Builder accumulates suites while a root is walked. It is owned by a single
// walk and turned into a read-only Model by Freeze.
type Builder struct {
	root         string
	suites       []domain.Suite
	callbacks    []domain.CallbackEntry
	declarations []string
	names        []string
}

// NewBuilder creates an empty Builder for the given root
func NewBuilder(root string) *Builder {
	return &Builder{root: root}
}

// Add classifies the test functions of one file and registers the resulting
// suite. It returns the registered suite, or false if the file was dropped.
func (b *Builder) Add(suiteName string, functions iter.Seq[domain.TestFunction]) (domain.Suite, bool) {
	plan, ok := BuildSuite(suiteName, len(b.suites), functions)
	if !ok {
		return domain.Suite{}, false
	}

	plan.Suite.Offset = len(b.callbacks)

	b.callbacks = append(b.callbacks, plan.Callbacks...)
	b.declarations = append(b.declarations, plan.Declarations...)
	b.suites = append(b.suites, plan.Suite)
	b.names = append(b.names, plan.Suite.CleanName)

	suite := plan.Suite
	suite.Initialize = cloneEntry(suite.Initialize)
	suite.Cleanup = cloneEntry(suite.Cleanup)
	return suite, true
}

// Len returns the number of suites registered so far
func (b *Builder) Len() int {
	return len(b.suites)
}

// Freeze finishes the walk. It fails with ErrNoTests if no suite was added.
func (b *Builder) Freeze() (*Model, error) {
	if len(b.suites) == 0 {
		return nil, fmt.Errorf("%w under %q", ErrNoTests, b.root)
	}
	return &Model{
		root:         b.root,
		suites:       b.suites,
		callbacks:    b.callbacks,
		declarations: b.declarations,
		names:        b.names,
	}, nil
}
