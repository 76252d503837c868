package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"clay/internal/domain"
	"clay/internal/registry"
)

// Formatter formats and displays output
type Formatter struct {
	out   io.Writer
	quiet bool
}

// NewFormatterWithWriter creates a Formatter writing to out
func NewFormatterWithWriter(out io.Writer, quiet bool) *Formatter {
	return &Formatter{
		out:   out,
		quiet: quiet,
	}
}

// Loading announces the start of a scan
func (f *Formatter) Loading(root string) {
	if f.quiet {
		return
	}
	fmt.Fprintln(f.out, "Loading test suites...")
}

// SuiteLoaded reports one registered suite
func (f *Formatter) SuiteLoaded(suite domain.Suite) {
	if f.quiet {
		return
	}
	fmt.Fprintf(f.out, "  %s (%d tests)\n", suite.CleanName, suite.Count)
}

// Written reports the generated files of a root
func (f *Formatter) Written(root string) {
	if f.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(f.out, "Written Clay suite to \"%s\"\n", root)
}

// PrintSuiteTree prints the suites of a model, optionally with their tests
// and hooks
func (f *Formatter) PrintSuiteTree(model *registry.Model, showTests bool) {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	gray := color.New(color.FgHiBlack)

	suites := model.Suites()
	color.New(color.FgGreen).Fprintf(f.out, "Found %d suite(s) with %d test(s) in %s:\n\n", len(suites), model.TestCount(), model.Root())

	for i, suite := range suites {
		isLastSuite := i == len(suites)-1

		connector := "├── "
		childPrefix := "│   "
		if isLastSuite {
			connector = "└── "
			childPrefix = "    "
		}
		cyan.Fprintf(f.out, "%s%s", connector, suite.CleanName)
		fmt.Fprintf(f.out, " (%d tests)\n", suite.Count)

		if !showTests {
			continue
		}

		var lines []string
		if suite.HasInitialize() {
			lines = append(lines, gray.Sprint("[initialize] "+suite.Initialize.Symbol))
		}
		for _, cb := range model.SuiteCallbacks(i) {
			lines = append(lines, yellow.Sprint(cb.ShortName))
		}
		if suite.HasCleanup() {
			lines = append(lines, gray.Sprint("[cleanup] "+suite.Cleanup.Symbol))
		}

		for j, line := range lines {
			prefix := "├── "
			if j == len(lines)-1 {
				prefix = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", childPrefix, prefix, line)
		}
	}
}

// Reporter reports collection progress, either suite by suite or with a
// progress bar
type Reporter struct {
	formatter *Formatter
	progress  bool

	bar    *ProgressBar
	total  int
	files  int
	suites int
	tests  int
}

// NewReporter creates a new Reporter. With progress set, a progress bar is
// shown instead of one line per suite.
func NewReporter(formatter *Formatter, progress bool) *Reporter {
	return &Reporter{
		formatter: formatter,
		progress:  progress,
	}
}

// FilesFound implements registry.Observer
func (r *Reporter) FilesFound(root string, count int) {
	r.formatter.Loading(root)

	r.bar = nil
	r.total = count
	r.files, r.suites, r.tests = 0, 0, 0
	if r.progress && count > 0 {
		r.bar = NewProgressBar(count)
	}
}

// FileDone implements registry.Observer
func (r *Reporter) FileDone(file domain.SourceFile, suite *domain.Suite) {
	r.files++
	if suite != nil {
		r.suites++
		r.tests += suite.Count
	}

	if r.bar == nil {
		if suite != nil {
			r.formatter.SuiteLoaded(*suite)
		}
		return
	}

	r.bar.Update(r.files, r.suites, r.tests)
	if r.files == r.total {
		r.bar.Finish()
	}
}
