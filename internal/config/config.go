// Package config resolves where warpcookie keeps its files.
package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// ConfigDirEnv overrides the configuration directory.
	ConfigDirEnv = "WARPCOOKIE_CONFIG_DIR"
	// KeyEnv holds a hex-encoded 32-byte key that seals jars instead of the
	// key kept in the system keyring.
	KeyEnv = "WARPCOOKIE_KEY"

	// DefaultJarName is the cookie file used when no --jar is given.
	DefaultJarName = "cookies.txt"

	appDirName = "warpcookie"
)

var (
	userConfigDir = os.UserConfigDir
	mkdirAll      = os.MkdirAll
)

// ConfigDir returns the absolute configuration directory, creating it if
// needed. ConfigDirEnv wins over the user config directory.
func ConfigDir() (string, error) {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		base, err := userConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, appDirName)
	}
	return ensureDir(dir)
}

func ensureDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("config dir is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := mkdirAll(abs, 0755); err != nil {
		return "", err
	}
	return abs, nil
}

// JarPath returns flagValue when set, else the default jar in ConfigDir.
func JarPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultJarName), nil
}
