package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	t.Run("command exists and has correct structure", func(t *testing.T) {
		cmd := newRunCmd()
		assert.Equal(t, "run", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		for _, name := range []string{"title", "total", "delay", "reverse"} {
			assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s", name)
		}
	})

	t.Run("draws a finished bar", func(t *testing.T) {
		_, stderr, err := execute(t, "", "run", "--title", "demo", "--total", "4", "--delay", "0s")
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(stderr, "\n"))
		assert.Contains(t, stderr, "demo:")
		assert.Contains(t, stderr, " 25% ")
		assert.Contains(t, stderr, "100% |oooo")
		assert.Contains(t, stderr, "Time: 00:00:00")
	})

	t.Run("uses config defaults", func(t *testing.T) {
		config := "bar:\n  mark: \"#\"\ndemo:\n  total: 2\n  delay: 0s\n"
		_, stderr, err := execute(t, config, "run")
		require.NoError(t, err)

		assert.Contains(t, stderr, "run:")
		assert.Contains(t, stderr, " 50% ")
		assert.Contains(t, stderr, "100% |###")
	})

	t.Run("reverse empties the bar", func(t *testing.T) {
		_, stderr, err := execute(t, "", "run", "--total", "2", "--delay", "0s", "--reverse")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(stderr, "\n"), "\r")
		last := lines[len(lines)-1]
		assert.Contains(t, last, "100% |    ")
		assert.NotContains(t, last, "o")
	})

	t.Run("rejects negative total", func(t *testing.T) {
		_, _, err := execute(t, "", "run", "--total", "-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, _, err := execute(t, "", "run", "extra")
		require.Error(t, err)
	})
}
