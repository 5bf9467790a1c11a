package cli

import (
	"os"
	"path/filepath"
)

// appName names the configuration directory and the default log service.
const appName = "ameliaview"

// configFile is the base name of the YAML configuration file.
const configFile = "config.yaml"

// configDir returns the configuration directory path, falling back to
// ~/.config and then the working directory.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, err = os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(dir, ".config")
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}
	return filepath.Join(dir, appName)
}

// configPath returns the path of the configuration file. The file does not
// have to exist.
func configPath() string {
	return filepath.Join(configDir(), configFile)
}
