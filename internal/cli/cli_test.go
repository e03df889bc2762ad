package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	e "github.com/STBoyden/gobag/error"
	"github.com/STBoyden/gobag/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps ambient config files and BAGS_* variables out of a test.
func isolate(t *testing.T) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(report.EnvDebug, "")
	require.NoError(t, os.Unsetenv(report.EnvDebug))
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, envPrefix+"_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bagdemo v0.1.0")
	assert.Contains(t, out, modulePath)
}

func TestDemo(t *testing.T) {
	isolate(t)

	t.Run("array", func(t *testing.T) {
		out, _, err := run(t, "demo")
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"bag 1 = [0, 1, 2, 3, 4]",
			"bag 2 = [3, 4, 5, 6, 7, 8, 9]",
			"union = [0, 1, 2, 3, 4, 3, 4, 5, 6, 7, 8, 9]",
			"intersection = [3, 4]",
			"difference = [0, 1, 2]",
			"",
		}, "\n"), out)
	})

	t.Run("chain", func(t *testing.T) {
		out, _, err := run(t, "demo", "--variant", "chain")
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"bag 1 = [4, 3, 2, 1, 0]",
			"bag 2 = [9, 8, 7, 6, 5, 4, 3]",
			"union = [3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4]",
			"intersection = [3, 4]",
			"difference = [0, 1, 2]",
			"",
		}, "\n"), out)
	})

	t.Run("capacity one still grows", func(t *testing.T) {
		out, _, err := run(t, "demo", "--capacity", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "union = [0, 1, 2, 3, 4, 3, 4, 5, 6, 7, 8, 9]")
	})

	t.Run("union above the maximum capacity", func(t *testing.T) {
		_, _, err := run(t, "demo", "--capacity", "1", "--max-capacity", "8")
		require.Error(t, err)
		assert.True(t, errors.Is(err, e.ErrCapacityExceeded))
		assert.Contains(t, err.Error(), "union")
	})

	t.Run("default capacity follows a smaller maximum", func(t *testing.T) {
		out, _, err := run(t, "demo", "--max-capacity", "20")
		require.NoError(t, err)
		assert.Contains(t, out, "union = [0, 1, 2, 3, 4, 3, 4, 5, 6, 7, 8, 9]")
	})

	t.Run("initial capacity above the maximum", func(t *testing.T) {
		_, _, err := run(t, "demo", "--capacity", "20", "--max-capacity", "10")
		require.Error(t, err)
		assert.True(t, errors.Is(err, e.ErrCapacityExceeded))
	})
}

func TestCombine(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"union", []string{"combine", "union", "--left", "a,b", "--right", "b"}, "union = [a, b, b]\n"},
		{"intersection", []string{"combine", "intersection", "--left", "a,a,b,a", "--right", "a,c,a"}, "intersection = [a, a]\n"},
		{"difference", []string{"combine", "difference", "--left", "a,a,b", "--right", "a,a,a"}, "difference = [b]\n"},
		{"empty operands", []string{"combine", "difference"}, "difference = []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("rejects unknown operation", func(t *testing.T) {
		_, _, err := run(t, "combine", "xor")
		assert.Error(t, err)
	})
}

func TestFreq(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "freq", "--items", "b,a,b,c,b", "--variant", "chain")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: 3\nc: 1\ntotal: 5\n", out)
}

func TestConfig(t *testing.T) {
	isolate(t)

	t.Run("config file selects the variant", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bagdemo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("variant: chain\n"), 0o644))

		out, _, err := run(t, "--config", path, "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "bag 1 = [4, 3, 2, 1, 0]")
	})

	t.Run("flag overrides config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bagdemo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("variant: chain\n"), 0o644))

		out, _, err := run(t, "--config", path, "--variant", "array", "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "bag 1 = [0, 1, 2, 3, 4]")
	})

	t.Run("environment selects the variant", func(t *testing.T) {
		t.Setenv("BAGS_VARIANT", "chain")

		out, _, err := run(t, "freq", "--items", "x")
		require.NoError(t, err)
		assert.Equal(t, "x: 1\ntotal: 1\n", out)

		out, _, err = run(t, "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "bag 1 = [4, 3, 2, 1, 0]")
	})

	t.Run("config dir is searched", func(t *testing.T) {
		dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "gobag")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bagdemo.yaml"), []byte("variant: chain\n"), 0o644))
		t.Cleanup(func() { os.RemoveAll(dir) })

		out, _, err := run(t, "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "bag 1 = [4, 3, 2, 1, 0]")
	})

	t.Run("config file maximum caps the default capacity", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bagdemo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_capacity: 20\n"), 0o644))

		out, _, err := run(t, "--config", path, "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "difference = [0, 1, 2]")
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, _, err := run(t, "demo", "--variant", "tree")
		require.Error(t, err)
		assert.True(t, errors.Is(err, e.ErrConfig))
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "demo")
		assert.Error(t, err)
	})
}

func TestCodectrlFailureIsLogged(t *testing.T) {
	isolate(t)

	out, stderr, err := run(t, "combine", "union", "--left", "a", "--codectrl", "--codectrl-port", "1")
	require.NoError(t, err)
	assert.Equal(t, "union = [a]\n", out)
	assert.Contains(t, stderr, "codectrl report failed")
}

func TestCodectrlEnabledByEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(report.EnvDebug, "1")

	out, stderr, err := run(t, "combine", "union", "--left", "a", "--codectrl-port", "1")
	require.NoError(t, err)
	assert.Equal(t, "union = [a]\n", out)
	assert.Contains(t, stderr, "codectrl report failed")
}

func TestCodectrlDisabledByDefault(t *testing.T) {
	isolate(t)

	out, stderr, err := run(t, "combine", "union", "--left", "a", "--codectrl-port", "1")
	require.NoError(t, err)
	assert.Equal(t, "union = [a]\n", out)
	assert.NotContains(t, stderr, "codectrl report failed")
}
