package registry

import (
	"fmt"
	"iter"
	"strings"

	"clay/internal/discovery"
	"clay/internal/domain"
)

const (
	// InitializeHook is the local name of a suite's setup function
	InitializeHook = "initialize"
	// CleanupHook is the local name of a suite's teardown function
	CleanupHook = "cleanup"
	// DisplaySeparator replaces the internal separator in suite display names
	DisplaySeparator = "::"
)

// SuitePlan is the result of classifying one file's test functions
type SuitePlan struct {
	Suite        domain.Suite
	Callbacks    []domain.CallbackEntry
	Declarations []string
}

// BuildSuite classifies the test functions of one source file.
//
// index is the position the suite will take in the suite table. It returns
// false when the file has no ordinary test, in which case nothing from the
// file is registered even if hooks were found.
func BuildSuite(suiteName string, index int, functions iter.Seq[domain.TestFunction]) (SuitePlan, bool) {
	plan := SuitePlan{
		Suite: domain.Suite{
			Name:      suiteName,
			CleanName: DisplayName(suiteName),
		},
	}

	for fn := range functions {
		plan.Declarations = append(plan.Declarations, fmt.Sprintf("extern %s;", fn.Declaration))

		entry := domain.CallbackEntry{
			ShortName:  fn.ShortName,
			Symbol:     fn.Symbol,
			SuiteIndex: index,
		}

		switch fn.ShortName {
		case InitializeHook:
			plan.Suite.Initialize = &entry
		case CleanupHook:
			plan.Suite.Cleanup = &entry
		default:
			plan.Callbacks = append(plan.Callbacks, entry)
		}
	}

	if len(plan.Callbacks) == 0 {
		return SuitePlan{}, false
	}

	plan.Suite.Count = len(plan.Callbacks)
	return plan, true
}

// DisplayName renders an internal suite name for humans: "core_vector"
// becomes "core::vector".
func DisplayName(suiteName string) string {
	return strings.ReplaceAll(suiteName, discovery.SuiteSeparator, DisplaySeparator)
}
