package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with a config file in a temp dir and
// returns stdout and stderr.
func execute(t *testing.T, configContent string, args ...string) (string, string, error) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "pbar.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("has --config flag", func(t *testing.T) {
		cmd := NewRootCmd()
		flag := cmd.PersistentFlags().Lookup("config")
		require.NotNil(t, flag, "expected --config flag to exist")
		assert.Equal(t, "", flag.DefValue)
	})

	t.Run("has --verbose flag", func(t *testing.T) {
		cmd := NewRootCmd()
		flag := cmd.PersistentFlags().ShorthandLookup("v")
		require.NotNil(t, flag)
		assert.Equal(t, "verbose", flag.Name)
	})

	t.Run("help shows all subcommands", func(t *testing.T) {
		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--help"})
		err := cmd.Execute()
		require.NoError(t, err)

		output := buf.String()
		for _, name := range []string{"run", "copy", "batch", "version"} {
			assert.Contains(t, output, name)
		}
	})

	t.Run("invalid config is reported", func(t *testing.T) {
		_, _, err := execute(t, "bar:\n  mark: \"ab\"\n", "run", "--total", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid bar config")
	})

	t.Run("unreadable config is reported", func(t *testing.T) {
		_, _, err := execute(t, "bar: [invalid\n", "run", "--total", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}

func TestSetupLogger(t *testing.T) {
	oldVerbose := verbose
	defer func() { verbose = oldVerbose }()

	var buf bytes.Buffer

	verbose = false
	setupLogger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	verbose = true
	setupLogger(&buf).Debug("shown", "key", "value")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pbar dev\n", stdout)
}
