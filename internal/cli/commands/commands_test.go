package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clay/internal/cli"
	"clay/internal/config"
	"clay/internal/export"
	"clay/internal/registry"
)

func newRootCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	rootCmd := &cobra.Command{Use: "clay", Version: "test"}
	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	return rootCmd, &out
}

func writeSuites(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a/foo.c": "#include \"clay.h\"\n\nvoid test_a_foo__bar(void)\n{\n}\n\nvoid test_a_foo__initialize(void) {\n}\n",
		"b.c":     "void test_b__baz(void) {\n}\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate(t *testing.T) {
	for _, args := range [][]string{{}, {"generate"}} {
		t.Run(strings.Join(append([]string{"clay"}, args...), " "), func(t *testing.T) {
			rootCmd, out := newRootCmd(t)
			root := writeSuites(t)
			rootCmd.SetArgs(append(args, root))

			require.NoError(t, rootCmd.Execute())

			mainText := readFile(t, filepath.Join(root, config.DefaultMainFile))
			assert.Contains(t, mainText, `{"bar", &test_a_foo__bar, 0}`)
			assert.Contains(t, mainText, `{"baz", &test_b__baz, 1}`)
			assert.Contains(t, mainText, `{"initialize", &test_a_foo__initialize, 0}`)
			assert.Contains(t, mainText, "_clay_suite_count = 2;")
			assert.Contains(t, mainText, "_clay_callback_count = 2;")
			assert.Contains(t, mainText, `"a::foo, b"`)
			assert.Contains(t, mainText, "#define clay_print(...) printf(__VA_ARGS__)")

			header := readFile(t, filepath.Join(root, config.DefaultHeaderFile))
			assert.Contains(t, header, "extern void test_a_foo__bar(void);\nextern void test_a_foo__initialize(void);\nextern void test_b__baz(void);")

			assert.Contains(t, out.String(), "Loading test suites...")
			assert.Contains(t, out.String(), "  a::foo (1 tests)")
			assert.Contains(t, out.String(), "  b (1 tests)")
			assert.Contains(t, out.String(), "Written Clay suite to \""+root+"\"")
		})
	}
}

func TestGenerate_Rerun(t *testing.T) {
	rootCmd, _ := newRootCmd(t)
	root := writeSuites(t)

	rootCmd.SetArgs([]string{"-q", root})
	require.NoError(t, rootCmd.Execute())
	first := readFile(t, filepath.Join(root, config.DefaultMainFile))

	// The generated files sit in the root and must not be picked up again
	rootCmd.SetArgs([]string{"-q", root})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, first, readFile(t, filepath.Join(root, config.DefaultMainFile)))
}

func TestGenerate_Options(t *testing.T) {
	rootCmd, out := newRootCmd(t)
	root := writeSuites(t)
	rootCmd.SetArgs([]string{"generate", "--quiet", "--report-to", "silent", "--exclude", "a/*", root})

	require.NoError(t, rootCmd.Execute())

	mainText := readFile(t, filepath.Join(root, config.DefaultMainFile))
	assert.Contains(t, mainText, "#define clay_print(...) \n")
	assert.NotContains(t, mainText, "test_a_foo__bar")
	assert.Contains(t, mainText, "_clay_suite_count = 1;")
	assert.Empty(t, out.String())
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("no tests", func(t *testing.T) {
		rootCmd, _ := newRootCmd(t)
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "hooks.c"), []byte("void test_hooks__initialize(void) {}\n"), 0644))
		rootCmd.SetArgs([]string{root})

		err := rootCmd.Execute()
		require.Error(t, err)
		assert.True(t, errors.Is(err, registry.ErrNoTests))
		assert.NoFileExists(t, filepath.Join(root, config.DefaultMainFile))
		assert.NoFileExists(t, filepath.Join(root, config.DefaultHeaderFile))
	})

	t.Run("invalid report mode", func(t *testing.T) {
		rootCmd, _ := newRootCmd(t)
		root := writeSuites(t)
		rootCmd.SetArgs([]string{"-v", "syslog", root})

		err := rootCmd.Execute()
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidReportMode))
		assert.NoFileExists(t, filepath.Join(root, config.DefaultMainFile))
	})

	t.Run("missing directory", func(t *testing.T) {
		rootCmd, _ := newRootCmd(t)
		rootCmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing")})

		assert.Error(t, rootCmd.Execute())
	})

	t.Run("first failure aborts", func(t *testing.T) {
		rootCmd, _ := newRootCmd(t)
		good := writeSuites(t)
		rootCmd.SetArgs([]string{t.TempDir(), good})

		require.Error(t, rootCmd.Execute())
		assert.NoFileExists(t, filepath.Join(good, config.DefaultMainFile))
	})

	t.Run("no arguments", func(t *testing.T) {
		rootCmd, _ := newRootCmd(t)
		rootCmd.SetArgs([]string{})

		assert.Error(t, rootCmd.Execute())
	})
}

func TestGenerate_ConfigFile(t *testing.T) {
	rootCmd, _ := newRootCmd(t)
	root := writeSuites(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".clay.yaml"), []byte("report_to: stderr\nmain_file: harness.c\nquiet: true\n"), 0644))

	rootCmd.SetArgs([]string{root})
	require.NoError(t, rootCmd.Execute())

	mainText := readFile(t, filepath.Join(root, "harness.c"))
	assert.Contains(t, mainText, "#define clay_print(...) fprintf(stderr, __VA_ARGS__)")
	assert.NoFileExists(t, filepath.Join(root, config.DefaultMainFile))
}

func TestGenerate_FlagOverridesInvalidConfig(t *testing.T) {
	rootCmd, _ := newRootCmd(t)
	root := writeSuites(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".clay.yaml"), []byte("report_to: bogus\n"), 0644))

	rootCmd.SetArgs([]string{"-q", "-v", "stdout", root})
	require.NoError(t, rootCmd.Execute())

	mainText := readFile(t, filepath.Join(root, config.DefaultMainFile))
	assert.Contains(t, mainText, "#define clay_print(...) printf(__VA_ARGS__)")
}

func TestList(t *testing.T) {
	t.Run("tree", func(t *testing.T) {
		rootCmd, out := newRootCmd(t)
		root := writeSuites(t)
		rootCmd.SetArgs([]string{"list", "--tests", root})

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "Found 2 suite(s) with 2 test(s)")
		assert.Contains(t, out.String(), "a::foo")
		assert.Contains(t, out.String(), "[initialize] test_a_foo__initialize")
		assert.NoFileExists(t, filepath.Join(root, config.DefaultMainFile))
	})

	t.Run("json", func(t *testing.T) {
		rootCmd, out := newRootCmd(t)
		root := writeSuites(t)
		rootCmd.SetArgs([]string{"list", "--format", "json", root})

		require.NoError(t, rootCmd.Execute())

		var doc export.Document
		require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
		assert.Equal(t, root, doc.Root)
		assert.Equal(t, 2, doc.SuiteCount)
		assert.Equal(t, 2, doc.TestCount)
		require.Len(t, doc.Suites, 2)
		assert.Equal(t, "a::foo", doc.Suites[0].Name)
		assert.Equal(t, 1, doc.Suites[1].Offset)
	})

	t.Run("unknown format", func(t *testing.T) {
		rootCmd, _ := newRootCmd(t)
		rootCmd.SetArgs([]string{"list", "--format", "xml", writeSuites(t)})

		assert.Error(t, rootCmd.Execute())
	})

	t.Run("empty directory", func(t *testing.T) {
		rootCmd, out := newRootCmd(t)
		root := t.TempDir()
		rootCmd.SetArgs([]string{"list", root})

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "No tests found in "+root)
	})
}
