package discovery

import (
	"fmt"
	"iter"
	"regexp"

	"clay/internal/domain"
)

// testFuncPattern matches a suite test entry point such as
//
//	void test_core_vector__grow(void)
//	{
//
// The %s verb is replaced by the quoted suite name. Capture groups are the
// full declaration, the symbol and the name local to the suite.
const testFuncPattern = `(?m)^(void\s+(test_%s__(\w+))\(\s*(void)?\s*\))\s*\{`

// Matcher extracts test functions from C source text
type Matcher struct{}

// NewMatcher creates a new Matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Pattern compiles the test function pattern for the given suite name
func (m *Matcher) Pattern(suiteName string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(testFuncPattern, regexp.QuoteMeta(suiteName)))
}

// Match returns the test functions of suiteName declared in content, in the
// order they appear. Functions that do not follow the naming convention or
// take parameters are not reported.
func (m *Matcher) Match(suiteName, content string) iter.Seq[domain.TestFunction] {
	pattern := m.Pattern(suiteName)

	return func(yield func(domain.TestFunction) bool) {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			fn := domain.TestFunction{
				Declaration: match[1],
				Symbol:      match[2],
				ShortName:   match[3],
			}
			if !yield(fn) {
				return
			}
		}
	}
}
