package discovery

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"clay/internal/domain"
)

func TestMatcher_Match(t *testing.T) {
	matcher := NewMatcher()

	tests := []struct {
		name     string
		suite    string
		content  string
		expected []domain.TestFunction
	}{
		{
			name:  "void parameter list",
			suite: "core_vector",
			content: `#include "clay_libgit2.h"

void test_core_vector__grow(void)
{
	cl_assert(1);
}
`,
			expected: []domain.TestFunction{
				{Declaration: "void test_core_vector__grow(void)", Symbol: "test_core_vector__grow", ShortName: "grow"},
			},
		},
		{
			name:  "empty parameter list and brace on same line",
			suite: "b",
			content: `void test_b__baz() {
}
`,
			expected: []domain.TestFunction{
				{Declaration: "void test_b__baz()", Symbol: "test_b__baz", ShortName: "baz"},
			},
		},
		{
			name:    "extra whitespace",
			suite:   "b",
			content: "void   test_b__spaced(  void  )\n\n\t{\n}\n",
			expected: []domain.TestFunction{
				{Declaration: "void   test_b__spaced(  void  )", Symbol: "test_b__spaced", ShortName: "spaced"},
			},
		},
		{
			name:    "crlf line endings",
			suite:   "b",
			content: "void test_b__dos(void)\r\n{\r\n}\r\n",
			expected: []domain.TestFunction{
				{Declaration: "void test_b__dos(void)", Symbol: "test_b__dos", ShortName: "dos"},
			},
		},
		{
			name:  "hooks and tests keep file order",
			suite: "a_foo",
			content: `void test_a_foo__initialize(void)
{
}

void test_a_foo__bar(void)
{
}

void test_a_foo__cleanup(void)
{
}
`,
			expected: []domain.TestFunction{
				{Declaration: "void test_a_foo__initialize(void)", Symbol: "test_a_foo__initialize", ShortName: "initialize"},
				{Declaration: "void test_a_foo__bar(void)", Symbol: "test_a_foo__bar", ShortName: "bar"},
				{Declaration: "void test_a_foo__cleanup(void)", Symbol: "test_a_foo__cleanup", ShortName: "cleanup"},
			},
		},
		{
			name:  "ignores other suites, prototypes and parameters",
			suite: "b",
			content: `void test_c__other(void)
{
}

void test_b__proto(void);

static void test_b__static(void)
{
}

void test_b__args(int x)
{
}

int test_b__int(void)
{
}

  void test_b__indented(void)
{
}
`,
			expected: nil,
		},
		{
			name:  "suite name is not a prefix match",
			suite: "a",
			content: `void test_a_foo__bar(void)
{
}
`,
			expected: nil,
		},
		{
			name:     "empty file",
			suite:    "b",
			content:  "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(matcher.Match(tt.suite, tt.content))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Match() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatcher_MatchStopsEarly(t *testing.T) {
	matcher := NewMatcher()
	content := "void test_b__one(void)\n{\n}\nvoid test_b__two(void)\n{\n}\n"

	var seen []string
	for fn := range matcher.Match("b", content) {
		seen = append(seen, fn.ShortName)
		break
	}

	if diff := cmp.Diff([]string{"one"}, seen); diff != "" {
		t.Errorf("unexpected iteration (-want +got):\n%s", diff)
	}
}

func TestMatcher_PatternQuotesSuiteName(t *testing.T) {
	matcher := NewMatcher()
	pattern := matcher.Pattern("a.b")

	if pattern.MatchString("void test_aXb__c(void)\n{") {
		t.Error("suite name must be matched literally")
	}
	if !pattern.MatchString("void test_a.b__c(void)\n{") {
		t.Error("expected literal suite name to match")
	}
}
