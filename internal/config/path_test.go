package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEnv serves getEnv from env and restores the real lookup afterwards.
func stubEnv(t *testing.T, env map[string]string) {
	t.Helper()
	original := getEnv
	t.Cleanup(func() { getEnv = original })
	getEnv = func(key string) string { return env[key] }
}

func stubHome(t *testing.T, dir string, err error) {
	t.Helper()
	original := userHomeDir
	t.Cleanup(func() { userHomeDir = original })
	userHomeDir = func() (string, error) { return dir, err }
}

func TestGlobalConfigPath(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "explicit file wins",
			env:  map[string]string{ConfigPathEnv: "/etc/pbar.yaml", xdgConfigEnv: "/tmp/xdg"},
			want: "/etc/pbar.yaml",
		},
		{
			name: "xdg config home",
			env:  map[string]string{xdgConfigEnv: "/tmp/xdg"},
			want: filepath.Join("/tmp/xdg", "pbar", "config.yaml"),
		},
		{
			name: "home directory",
			env:  map[string]string{},
			want: filepath.Join("/home/user", ".config", "pbar", "config.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubEnv(t, tt.env)
			stubHome(t, "/home/user", nil)

			path, err := GlobalConfigPath()
			require.NoError(t, err)
			assert.Equal(t, tt.want, path)
		})
	}
}

func TestGlobalConfigPath_HomeDirError(t *testing.T) {
	stubEnv(t, nil)
	sentinelErr := errors.New("home dir unavailable")
	stubHome(t, "", sentinelErr)

	_, err := GlobalConfigPath()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinelErr)
}

func TestLoadConfig_GlobalFileFromConfigPathEnv(t *testing.T) {
	global := filepath.Join(t.TempDir(), "bars.yaml")
	require.NoError(t, os.WriteFile(global, []byte("bar:\n  mark: \"=\"\n  min_title_width: 30\n"), 0644))
	stubEnv(t, map[string]string{ConfigPathEnv: global})

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "=", cfg.Bar.Mark)
	assert.Equal(t, 30, cfg.Bar.MinTitleWidth)
	assert.Equal(t, DefaultRedrawInterval, cfg.Bar.RedrawInterval)
}

func TestLoadConfig_LocalFileShadowsGlobal(t *testing.T) {
	global := filepath.Join(t.TempDir(), "bars.yaml")
	require.NoError(t, os.WriteFile(global, []byte("bar:\n  mark: \"=\"\n"), 0644))
	stubEnv(t, map[string]string{ConfigPathEnv: global})

	local := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(local, DefaultConfigName), []byte("bar:\n  mark: \"#\"\n"), 0644))

	cfg, err := LoadConfig(local)
	require.NoError(t, err)
	assert.Equal(t, "#", cfg.Bar.Mark)
}

func TestLoadConfig_UnreadableHomeUsesDefaults(t *testing.T) {
	stubEnv(t, nil)
	stubHome(t, "", errors.New("no home"))

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultBarMark, cfg.Bar.Mark)
}
