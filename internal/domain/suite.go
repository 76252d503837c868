package domain

// Suite describes one registered test suite.
//
// Initialize and Cleanup are nil when the source file does not define the
// corresponding hook. Offset and Count locate the suite's ordinary tests in
// the global callback table.
type Suite struct {
	Name       string         `json:"-" yaml:"-"`
	CleanName  string         `json:"name" yaml:"name"`
	Initialize *CallbackEntry `json:"initialize,omitempty" yaml:"initialize,omitempty"`
	Cleanup    *CallbackEntry `json:"cleanup,omitempty" yaml:"cleanup,omitempty"`
	Offset     int            `json:"offset" yaml:"offset"`
	Count      int            `json:"count" yaml:"count"`
}

// HasInitialize reports whether the suite defines an initialize hook
func (s Suite) HasInitialize() bool {
	return s.Initialize != nil
}

// HasCleanup reports whether the suite defines a cleanup hook
func (s Suite) HasCleanup() bool {
	return s.Cleanup != nil
}
