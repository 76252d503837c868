package registry

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"clay/internal/domain"
)

func functions(suite string, names ...string) []domain.TestFunction {
	var fns []domain.TestFunction
	for _, name := range names {
		symbol := "test_" + suite + "__" + name
		fns = append(fns, domain.TestFunction{
			Declaration: "void " + symbol + "(void)",
			Symbol:      symbol,
			ShortName:   name,
		})
	}
	return fns
}

func TestBuildSuite(t *testing.T) {
	t.Run("ordinary tests without hooks", func(t *testing.T) {
		plan, ok := BuildSuite("core_vector", 3, slices.Values(functions("core_vector", "grow", "shrink", "clear")))
		if !ok {
			t.Fatal("expected suite to be built")
		}

		if plan.Suite.Count != 3 {
			t.Errorf("expected 3 callbacks, got %d", plan.Suite.Count)
		}
		if plan.Suite.HasInitialize() || plan.Suite.HasCleanup() {
			t.Error("expected both hooks to be absent")
		}
		if plan.Suite.CleanName != "core::vector" {
			t.Errorf("expected display name core::vector, got %s", plan.Suite.CleanName)
		}

		expected := []domain.CallbackEntry{
			{ShortName: "grow", Symbol: "test_core_vector__grow", SuiteIndex: 3},
			{ShortName: "shrink", Symbol: "test_core_vector__shrink", SuiteIndex: 3},
			{ShortName: "clear", Symbol: "test_core_vector__clear", SuiteIndex: 3},
		}
		if diff := cmp.Diff(expected, plan.Callbacks); diff != "" {
			t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hooks are not counted", func(t *testing.T) {
		plan, ok := BuildSuite("a_foo", 0, slices.Values(functions("a_foo", "cleanup", "bar", "initialize")))
		if !ok {
			t.Fatal("expected suite to be built")
		}

		if plan.Suite.Count != 1 {
			t.Errorf("expected 1 callback, got %d", plan.Suite.Count)
		}

		expectedInit := &domain.CallbackEntry{ShortName: "initialize", Symbol: "test_a_foo__initialize", SuiteIndex: 0}
		if diff := cmp.Diff(expectedInit, plan.Suite.Initialize); diff != "" {
			t.Errorf("initialize mismatch (-want +got):\n%s", diff)
		}
		expectedCleanup := &domain.CallbackEntry{ShortName: "cleanup", Symbol: "test_a_foo__cleanup", SuiteIndex: 0}
		if diff := cmp.Diff(expectedCleanup, plan.Suite.Cleanup); diff != "" {
			t.Errorf("cleanup mismatch (-want +got):\n%s", diff)
		}
		for _, cb := range plan.Callbacks {
			if cb.ShortName == InitializeHook || cb.ShortName == CleanupHook {
				t.Errorf("hook %s counted as ordinary callback", cb.ShortName)
			}
		}
	})

	t.Run("declarations include hooks in file order", func(t *testing.T) {
		plan, _ := BuildSuite("b", 0, slices.Values(functions("b", "initialize", "baz")))

		expected := []string{
			"extern void test_b__initialize(void);",
			"extern void test_b__baz(void);",
		}
		if diff := cmp.Diff(expected, plan.Declarations); diff != "" {
			t.Errorf("declarations mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hooks only yields no suite", func(t *testing.T) {
		if _, ok := BuildSuite("b", 0, slices.Values(functions("b", "initialize", "cleanup"))); ok {
			t.Error("expected no suite for a file with only hooks")
		}
	})

	t.Run("no functions yields no suite", func(t *testing.T) {
		if _, ok := BuildSuite("b", 0, slices.Values([]domain.TestFunction(nil))); ok {
			t.Error("expected no suite for a file without tests")
		}
	})
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "b", expected: "b"},
		{name: "a_foo", expected: "a::foo"},
		{name: "core_sub_vector", expected: "core::sub::vector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.name); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
