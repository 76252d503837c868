package render

import (
	"fmt"
	"strings"

	"clay/internal/domain"
)

// CallbackTable is the name of the generated callback array
const CallbackTable = "_all_callbacks"

// NullCallback is rendered for a suite hook that is not defined
const NullCallback = "{NULL, NULL, 0}"

// CallbackLiteral renders one callback table entry. A nil entry renders as
// NullCallback.
func CallbackLiteral(entry *domain.CallbackEntry) string {
	if entry == nil {
		return NullCallback
	}
	return fmt.Sprintf("{%q, &%s, %d}", entry.ShortName, entry.Symbol, entry.SuiteIndex)
}

// SuiteLiteral renders one suite table entry
func SuiteLiteral(suite domain.Suite) string {
	return fmt.Sprintf("{\n\t\t%q,\n\t\t%s,\n\t\t%s,\n\t\t&%s[%d], %d\n\t}",
		suite.CleanName,
		CallbackLiteral(suite.Initialize),
		CallbackLiteral(suite.Cleanup),
		CallbackTable, suite.Offset,
		suite.Count,
	)
}

func callbackTable(callbacks []domain.CallbackEntry) string {
	literals := make([]string, len(callbacks))
	for i := range callbacks {
		literals[i] = CallbackLiteral(&callbacks[i])
	}
	return strings.Join(literals, ",\n\t")
}

func suiteTable(suites []domain.Suite) string {
	literals := make([]string, len(suites))
	for i, suite := range suites {
		literals[i] = SuiteLiteral(suite)
	}
	return strings.Join(literals, ",\n\t")
}
