package domain

// TestFunction represents one test entry point matched in a source file
type TestFunction struct {
	Declaration string // Full declaration, e.g. "void test_core_vector__grow(void)"
	Symbol      string // Full symbol name, e.g. "test_core_vector__grow"
	ShortName   string // Name local to the suite, e.g. "grow"
}

// CallbackEntry is a single slot of the generated callback table
type CallbackEntry struct {
	ShortName  string `json:"name" yaml:"name"`
	Symbol     string `json:"symbol" yaml:"symbol"`
	SuiteIndex int    `json:"suite_index" yaml:"suite_index"`
}

// SourceFile is a test source discovered under the scanned root
type SourceFile struct {
	Path      string // Full path to the file
	RelPath   string // Path relative to the scanned root, slash separated
	SuiteName string // Internal suite base name derived from RelPath
}
