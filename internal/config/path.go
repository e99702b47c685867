package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment consulted when locating the global settings file.
const (
	ConfigPathEnv    = "PBAR_CONFIG"
	xdgConfigEnv     = "XDG_CONFIG_HOME"
	globalConfigDir  = "pbar"
	globalConfigFile = "config.yaml"
)

var (
	getEnv      = os.Getenv
	userHomeDir = os.UserHomeDir
)

// GlobalConfigPath returns the settings file used when the working
// directory has no pbar.yaml. PBAR_CONFIG names the file directly;
// otherwise it lives under $XDG_CONFIG_HOME/pbar or ~/.config/pbar.
func GlobalConfigPath() (string, error) {
	if explicit := getEnv(ConfigPathEnv); explicit != "" {
		return explicit, nil
	}

	base := getEnv(xdgConfigEnv)
	if base == "" {
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate global config: %w", err)
		}
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, globalConfigDir, globalConfigFile), nil
}
