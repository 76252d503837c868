package registry

import (
	"slices"

	"clay/internal/domain"
)

// Model is the registry discovered under one root. It is immutable; the
// accessors return copies.
type Model struct {
	root         string
	suites       []domain.Suite
	callbacks    []domain.CallbackEntry
	declarations []string
	names        []string
}

// Root returns the scanned directory
func (m *Model) Root() string {
	return m.root
}

// Suites returns the suites in discovery order. Hooks are copied too.
func (m *Model) Suites() []domain.Suite {
	suites := slices.Clone(m.suites)
	for i := range suites {
		suites[i].Initialize = cloneEntry(suites[i].Initialize)
		suites[i].Cleanup = cloneEntry(suites[i].Cleanup)
	}
	return suites
}

func cloneEntry(entry *domain.CallbackEntry) *domain.CallbackEntry {
	if entry == nil {
		return nil
	}
	clone := *entry
	return &clone
}

// Callbacks returns the global callback table
func (m *Model) Callbacks() []domain.CallbackEntry {
	return slices.Clone(m.callbacks)
}

// Declarations returns one extern declaration per matched function,
// hooks included
func (m *Model) Declarations() []string {
	return slices.Clone(m.declarations)
}

// SuiteNames returns the display names of all suites
func (m *Model) SuiteNames() []string {
	return slices.Clone(m.names)
}

// SuiteCallbacks returns the ordinary tests of the suite at index i
func (m *Model) SuiteCallbacks(i int) []domain.CallbackEntry {
	s := m.suites[i]
	return slices.Clone(m.callbacks[s.Offset : s.Offset+s.Count])
}

// TestCount returns the number of ordinary tests across all suites
func (m *Model) TestCount() int {
	return len(m.callbacks)
}
